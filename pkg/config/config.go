// Package config はlaptopfeatの設定をYAMLから読み込み、各コンポーネントのオプションに変換します。
package config

import (
	"bytes"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/laptopfeat/core/parallel"
	"github.com/YuminosukeSato/laptopfeat/extract"
	"github.com/YuminosukeSato/laptopfeat/parse"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
	"github.com/YuminosukeSato/laptopfeat/preprocessing"
	"github.com/YuminosukeSato/laptopfeat/selection"
)

// Config は設定ファイル全体を表します。
type Config struct {
	LogLevel          string          `yaml:"log_level"`
	ParallelThreshold int             `yaml:"parallel_threshold"`
	Memory            MemoryConfig    `yaml:"memory"`
	GPU               GPUConfig       `yaml:"gpu"`
	Ratio             RatioConfig     `yaml:"ratio"`
	Selection         SelectionConfig `yaml:"selection"`
}

// MemoryConfig はメモリパーサーの設定です。
type MemoryConfig struct {
	LabelPolicy string `yaml:"label_policy"` // preserve, collapse
}

// GPUConfig はGPUベンダー分類の設定です。
type GPUConfig struct {
	Vendors []string `yaml:"vendors"` // 先頭から順に照合
}

// RatioConfig は比率特徴量生成の設定です。
type RatioConfig struct {
	ReciprocalFallback bool `yaml:"reciprocal_fallback"`
}

// SelectionConfig は相関による特徴量選択の設定です。
type SelectionConfig struct {
	Label     string  `yaml:"label"`
	Threshold float64 `yaml:"threshold"`
}

// Default はデフォルト設定を返します。
func Default() *Config {
	vendors := parse.DefaultVendorOrder()
	names := make([]string, len(vendors))
	for i, v := range vendors {
		names[i] = string(v)
	}
	return &Config{
		LogLevel:          "warn",
		ParallelThreshold: parallel.DefaultThreshold,
		Memory:            MemoryConfig{LabelPolicy: parse.PreserveLabel.String()},
		GPU:               GPUConfig{Vendors: names},
		Selection:         SelectionConfig{Label: "Price_euros", Threshold: 0.5},
	}
}

// Load はファイルから設定を読み込みます。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse はYAMLを読み込み、Defaultに上書きして検証します。
// 未知のキーはエラーになります。空の入力はデフォルト設定になります。
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証します。
func (c *Config) Validate() error {
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ParallelThreshold < 0 {
		return errors.NewValidationError("parallel_threshold", "must be non-negative", c.ParallelThreshold)
	}
	if _, err := parse.ParseLabelPolicy(c.Memory.LabelPolicy); err != nil {
		return err
	}
	if _, err := c.GpuClassifier(); err != nil {
		return err
	}
	if c.Selection.Threshold < 0 || math.IsNaN(c.Selection.Threshold) {
		return errors.NewValidationError("selection.threshold", "must be non-negative", c.Selection.Threshold)
	}
	return nil
}

// SetupLogging はlog_levelでグローバルロガーを初期化します。
func (c *Config) SetupLogging() error {
	return log.SetupLogger(c.LogLevel)
}

// MemoryOptions はメモリパーサーのオプションを返します。
func (c *Config) MemoryOptions() ([]parse.MemoryOption, error) {
	policy, err := parse.ParseLabelPolicy(c.Memory.LabelPolicy)
	if err != nil {
		return nil, err
	}
	return []parse.MemoryOption{parse.WithLabelPolicy(policy)}, nil
}

// GpuClassifier は設定されたベンダー順の分類器を返します。
// ベンダーが空の場合はデフォルト順になります。
func (c *Config) GpuClassifier() (*parse.GpuClassifier, error) {
	vendors := make([]parse.GpuVendor, len(c.GPU.Vendors))
	for i, v := range c.GPU.Vendors {
		vendors[i] = parse.GpuVendor(v)
	}
	return parse.NewGpuClassifier(vendors...)
}

// ExtractorOptions は列抽出器に共通のオプションを返します。
func (c *Config) ExtractorOptions() []extract.Option {
	return []extract.Option{extract.WithParallelThreshold(c.ParallelThreshold)}
}

// RatioOptions は比率生成器のオプションを返します。
func (c *Config) RatioOptions() []preprocessing.RatioOption {
	return []preprocessing.RatioOption{preprocessing.WithReciprocalFallback(c.Ratio.ReciprocalFallback)}
}

// LaptopExtractor は設定を反映したLaptopExtractorを組み立てます。
// numericはそのまま出力に追加する数値列（ラベルなど）です。
func (c *Config) LaptopExtractor(numeric ...string) (*extract.LaptopExtractor, error) {
	memOpts, err := c.MemoryOptions()
	if err != nil {
		return nil, err
	}
	classifier, err := c.GpuClassifier()
	if err != nil {
		return nil, err
	}

	opts := c.ExtractorOptions()
	return extract.NewLaptopExtractor(opts,
		extract.WithExtractor(extract.ColumnMemory, extract.NewMemoryExtractor(parse.NewMemoryParser(memOpts...), opts...)),
		extract.WithExtractor(extract.ColumnGPU, extract.NewGPUExtractor(classifier, opts...)),
		extract.WithNumeric(numeric...),
	), nil
}

// Selector は設定された閾値のCorrelationSelectorを返します。
func (c *Config) Selector() (*selection.CorrelationSelector, error) {
	return selection.NewCorrelationSelector(c.Selection.Threshold)
}
