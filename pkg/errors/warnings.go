package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("edakit-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、MissingDataWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	pandas互換の警告型
//
// ===========================================================================

// MissingDataWarning は欠損値を含む列が数値演算に渡された場合に発生する警告です。
// 欠損行は計算から除外されます。
type MissingDataWarning struct {
	Column string
	Count  int
	Ratio  float64
}

func (w *MissingDataWarning) Error() string {
	return fmt.Sprintf("column %q contains %d missing values (%.1f%%). Missing rows are excluded from the computation.",
		w.Column, w.Count, w.Ratio*100)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *MissingDataWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Int("missing_count", w.Count).
		Float64("missing_ratio", w.Ratio).
		Str("type", "MissingDataWarning")
}

// NewMissingDataWarning は新しいMissingDataWarningを作成します。
func NewMissingDataWarning(column string, count int, ratio float64) *MissingDataWarning {
	return &MissingDataWarning{Column: column, Count: count, Ratio: ratio}
}

// ConstantColumnWarning は分散が0の列に対してスケーリングや相関を計算した場合の警告です。
type ConstantColumnWarning struct {
	Column string
	Value  float64
}

func (w *ConstantColumnWarning) Error() string {
	return fmt.Sprintf("column %q is constant (value=%g); scale is set to 1 and correlations are undefined.",
		w.Column, w.Value)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ConstantColumnWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Float64("value", w.Value).
		Str("type", "ConstantColumnWarning")
}

// NewConstantColumnWarning は新しいConstantColumnWarningを作成します。
func NewConstantColumnWarning(column string, value float64) *ConstantColumnWarning {
	return &ConstantColumnWarning{Column: column, Value: value}
}

// SmallSampleWarning は検定の近似が成立しない可能性がある場合の警告です。
// 例えば、カイ二乗検定で期待度数が5未満のセルが存在する場合など。
type SmallSampleWarning struct {
	Test      string
	Condition string
}

func (w *SmallSampleWarning) Error() string {
	return fmt.Sprintf("'%s' approximation may be inaccurate: %s", w.Test, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *SmallSampleWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("test", w.Test).
		Str("condition", w.Condition).
		Str("type", "SmallSampleWarning")
}

// NewSmallSampleWarning は新しいSmallSampleWarningを作成します。
func NewSmallSampleWarning(test, condition string) *SmallSampleWarning {
	return &SmallSampleWarning{Test: test, Condition: condition}
}

// DataConversionWarning はデータの型が暗黙的に変換された場合に発生する警告です。
type DataConversionWarning struct {
	Column   string
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("column %q converted from %s to %s. Reason: %s",
		w.Column, w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning は新しいDataConversionWarningを作成します。
func NewDataConversionWarning(column, from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{Column: column, FromType: from, ToType: to, Reason: reason}
}
