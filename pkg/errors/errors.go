// Package errors はlaptopfeat全体のエラーハンドリングと警告システムを提供します。
// パース失敗・次元不整合・パラメータ検証エラーを構造化された型として表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
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
		log.Printf("laptopfeat-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// MalformedValueWarningなどの警告の処理方法を制御できます。
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
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// MalformedValueWarning は寛容なパーサーが解釈できない値をゼロ値に落とした場合の警告です。
// 列単位で1回だけ発行されます。
type MalformedValueWarning struct {
	Field   string
	Count   int
	Total   int
	Example string // 最初に見つかった不正値
}

func (w *MalformedValueWarning) Error() string {
	return fmt.Sprintf("%d of %d %s values could not be parsed and were set to zero (first: %q)",
		w.Count, w.Total, w.Field, w.Example)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *MalformedValueWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("field", w.Field).
		Int("count", w.Count).
		Int("total", w.Total).
		Str("example", w.Example).
		Str("type", "MalformedValueWarning")
}

// NewMalformedValueWarning は新しいMalformedValueWarningを作成します。
func NewMalformedValueWarning(field string, count, total int, example string) *MalformedValueWarning {
	return &MalformedValueWarning{Field: field, Count: count, Total: total, Example: example}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidFormatError は厳格なパーサー（クロック周波数、解像度）が
// 期待する書式に一致しないテキストを受け取った場合のエラーです。
type InvalidFormatError struct {
	Field  string // "cpu", "resolution" など
	Value  string // 入力テキスト
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("laptopfeat: invalid %s format %q: %s", e.Field, e.Value, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidFormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Str("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "InvalidFormatError")
}

// NewInvalidFormatError は新しいInvalidFormatErrorを作成し、スタックトレースを付与します。
func NewInvalidFormatError(field, value, reason string) error {
	err := &InvalidFormatError{Field: field, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// DimensionError は列の長さが揃っていない場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("laptopfeat: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("laptopfeat: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切な場合に発生するエラーです。
// 例えば、相関係数を1サンプルから計算しようとした場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("laptopfeat: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// RowError は列抽出中に特定の行で発生したエラーを保持します。
type RowError struct {
	Column string
	Row    int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("laptopfeat: column %s, row %d: %v", e.Column, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError は新しいRowErrorを作成し、スタックトレースを付与します。
func NewRowError(column string, row int, err error) error {
	return errors.WithStack(&RowError{Column: column, Row: row, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrColumnNotFound は指定された列がテーブルに存在しない場合のエラーです。
	ErrColumnNotFound = New("column not found")
)
