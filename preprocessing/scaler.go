package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/edakit/edakit/pkg/errors"
)

// Scaler は数値列のスケーリング変換器の共通インタフェース
type Scaler interface {
	Fit(values []float64) error
	Transform(values []float64) ([]float64, error)
	FitTransform(values []float64) ([]float64, error)
}

// StandardScaler はscikit-learn互換の標準化スケーラー
// データを平均0、標準偏差1に変換する。欠損値（NaN）は学習から除外され、
// 変換後もNaNのまま保持される。
type StandardScaler struct {
	baseTransformer

	// Mean は学習された平均値
	Mean float64

	// Scale は学習された標準偏差（母標準偏差）
	Scale float64
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler()
//	scaled, err := scaler.FitTransform(values)
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit は非欠損値から平均と標準偏差を計算する
func (s *StandardScaler) Fit(values []float64) error {
	observed := dropNaN(values)
	if len(observed) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "StandardScaler.Fit")
	}

	s.Mean = stat.Mean(observed, nil)
	variance := stat.PopVariance(observed, nil)
	s.Scale = math.Sqrt(variance)

	// 標準偏差が0に近い場合は1に設定（ゼロ除算を避ける）
	if s.Scale < 1e-8 {
		errors.Warn(errors.NewConstantColumnWarning("", s.Mean))
		s.Scale = 1.0
	}

	s.setFitted()
	return nil
}

// Transform は学習済みの統計量でデータを標準化する
func (s *StandardScaler) Transform(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		out[i] = (v - s.Mean) / s.Scale
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (s *StandardScaler) FitTransform(values []float64) ([]float64, error) {
	if err := s.Fit(values); err != nil {
		return nil, err
	}
	return s.Transform(values)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		out[i] = v*s.Scale + s.Mean
	}
	return out, nil
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler()"
	}
	return fmt.Sprintf("StandardScaler(mean=%.4f, scale=%.4f)", s.Mean, s.Scale)
}

// MinMaxScaler はscikit-learn互換のMin-Maxスケーラー
// データを指定した範囲（デフォルト[0,1]）にスケーリングする
type MinMaxScaler struct {
	baseTransformer

	// DataMin は学習データの最小値
	DataMin float64

	// DataMax は学習データの最大値
	DataMax float64

	// FeatureRange はスケーリング後の範囲 [min, max]
	FeatureRange [2]float64

	scale float64
}

// NewMinMaxScaler は[0,1]範囲にスケーリングするMinMaxScalerを作成する
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{FeatureRange: [2]float64{0, 1}}
}

// NewMinMaxScalerRange はスケーリング後の範囲を指定してMinMaxScalerを作成する
func NewMinMaxScalerRange(minValue, maxValue float64) *MinMaxScaler {
	return &MinMaxScaler{FeatureRange: [2]float64{minValue, maxValue}}
}

// Fit は非欠損値から最小値・最大値を計算する
func (m *MinMaxScaler) Fit(values []float64) error {
	if m.FeatureRange[1] <= m.FeatureRange[0] {
		return errors.NewValidationError("feature_range", "max must be greater than min", m.FeatureRange)
	}
	observed := dropNaN(values)
	if len(observed) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "MinMaxScaler.Fit")
	}

	m.DataMin = observed[0]
	m.DataMax = observed[0]
	for _, v := range observed[1:] {
		if v < m.DataMin {
			m.DataMin = v
		}
		if v > m.DataMax {
			m.DataMax = v
		}
	}

	// 定数列の場合、スケールを1に設定
	m.scale = m.DataMax - m.DataMin
	if m.scale < 1e-8 {
		errors.Warn(errors.NewConstantColumnWarning("", m.DataMin))
		m.scale = 1.0
	}

	m.setFitted()
	return nil
}

// Transform は学習済みの統計量でデータをスケーリングする
func (m *MinMaxScaler) Transform(values []float64) ([]float64, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}
	span := m.FeatureRange[1] - m.FeatureRange[0]
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		out[i] = (v-m.DataMin)/m.scale*span + m.FeatureRange[0]
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (m *MinMaxScaler) FitTransform(values []float64) ([]float64, error) {
	if err := m.Fit(values); err != nil {
		return nil, err
	}
	return m.Transform(values)
}

// String はスケーラーの文字列表現を返す
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return fmt.Sprintf("MinMaxScaler(feature_range=[%.1f, %.1f])",
			m.FeatureRange[0], m.FeatureRange[1])
	}
	return fmt.Sprintf("MinMaxScaler(feature_range=[%.1f, %.1f], data_range=[%.4f, %.4f])",
		m.FeatureRange[0], m.FeatureRange[1], m.DataMin, m.DataMax)
}
