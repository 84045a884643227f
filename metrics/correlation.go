package metrics

import (
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Pearson はピアソンの積率相関係数を計算する
//
// どちらかの系列の分散が0の場合、係数は定義できないためNaNを返す（エラーにはしない）。
// NaN/Infを含む入力はNumericalInstabilityErrorになる。
func Pearson(x, y []float64) (float64, error) {
	// 入力検証
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("Pearson", len(x), len(y), 0)
	}
	if len(x) < 2 {
		return 0, errors.NewValueError("Pearson", "at least 2 samples are required")
	}
	if err := errors.CheckNumericalStability("Pearson.x", x); err != nil {
		return 0, err
	}
	if err := errors.CheckNumericalStability("Pearson.y", y); err != nil {
		return 0, err
	}

	// r = cov(x, y) / (σx σy)
	return stat.Correlation(x, y, nil), nil
}
