package preprocessing

import (
	"fmt"
	"sort"

	"github.com/edakit/edakit/pkg/errors"
)

// LabelEncoder はカテゴリ値を整数コードに変換する変換器。
// クラスは辞書順に並べられ、0から連番のコードが割り当てられる。
type LabelEncoder struct {
	baseTransformer

	// Classes は学習されたクラスの一覧（辞書順）
	Classes []string

	index map[string]int
}

// NewLabelEncoder は新しいLabelEncoderを作成する
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit は値の集合からクラス一覧を学習する
func (e *LabelEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LabelEncoder.Fit")
	}
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}
	e.Classes = make([]string, 0, len(seen))
	for v := range seen {
		e.Classes = append(e.Classes, v)
	}
	sort.Strings(e.Classes)

	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
	e.setFitted()
	return nil
}

// Transform は値を整数コードに変換する。
// 未知のクラスはエラーになる。
func (e *LabelEncoder) Transform(values []string) ([]int, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}
	out := make([]int, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform",
				fmt.Sprintf("unseen label %q", v))
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (e *LabelEncoder) FitTransform(values []string) ([]int, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseTransform は整数コードを元のクラス値に戻す
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}
	out := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.Classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("code %d out of range [0, %d)", code, len(e.Classes)))
		}
		out[i] = e.Classes[code]
	}
	return out, nil
}

// OneHotEncoder はカテゴリ値をワンホットベクトルに変換する変換器
type OneHotEncoder struct {
	baseTransformer

	// Classes は学習されたクラスの一覧（辞書順）
	Classes []string

	index map[string]int
}

// NewOneHotEncoder は新しいOneHotEncoderを作成する
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// Fit は値の集合からクラス一覧を学習する
func (e *OneHotEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "OneHotEncoder.Fit")
	}
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}
	e.Classes = make([]string, 0, len(seen))
	for v := range seen {
		e.Classes = append(e.Classes, v)
	}
	sort.Strings(e.Classes)

	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
	e.setFitted()
	return nil
}

// Transform は値をワンホット行列（n_samples × n_classes）に変換する
func (e *OneHotEncoder) Transform(values []string) ([][]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	out := make([][]float64, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("OneHotEncoder.Transform",
				fmt.Sprintf("unseen label %q", v))
		}
		row := make([]float64, len(e.Classes))
		row[code] = 1
		out[i] = row
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (e *OneHotEncoder) FitTransform(values []string) ([][]float64, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// FeatureNames は生成される列の名前を返す（例: "Embarked=S"）
func (e *OneHotEncoder) FeatureNames(column string) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "FeatureNames")
	}
	names := make([]string, len(e.Classes))
	for i, c := range e.Classes {
		names[i] = fmt.Sprintf("%s=%s", column, c)
	}
	return names, nil
}
