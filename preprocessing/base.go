// Package preprocessing は欠損値補完・スケーリング・カテゴリ変数の
// エンコーディングを提供します。各変換器はscikit-learnの
// Fit / Transform / FitTransform 規約に従います。
package preprocessing

// fitState は変換器の学習状態を表す
type fitState int

const (
	// notFitted は変換器が未学習の状態
	notFitted fitState = iota
	// fitted は変換器が学習済みの状態
	fitted
)

// baseTransformer は全ての変換器の基底となる構造体
type baseTransformer struct {
	state fitState
}

// IsFitted は変換器が学習済みかどうかを返す
func (b *baseTransformer) IsFitted() bool {
	return b.state == fitted
}

// setFitted は変換器を学習済み状態に設定する
func (b *baseTransformer) setFitted() {
	b.state = fitted
}

// Reset は変換器を初期状態にリセットする
func (b *baseTransformer) Reset() {
	b.state = notFitted
}
