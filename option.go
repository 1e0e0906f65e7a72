// option.go defines options for the checks.

package guard

import (
	"github.com/xaionaro-go/guard/normalize"
)

type Config struct {
	Normalizer normalize.Interface
}

func defaultConfig() Config {
	return Config{
		Normalizer: normalize.Default,
	}
}

type Option interface {
	apply(*Config)
}
type Options []Option

func (opts Options) apply(cfg *Config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

func (opts Options) config() Config {
	cfg := defaultConfig()
	opts.apply(&cfg)
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalize.Default
	}
	return cfg
}

type OptionNormalizerValue struct {
	normalize.Interface
}

func (o OptionNormalizerValue) apply(cfg *Config) {
	cfg.Normalizer = o.Interface
}

// OptionNormalizer replaces the text transform applied to the condition source.
func OptionNormalizer(normalizer normalize.Interface) OptionNormalizerValue {
	return OptionNormalizerValue{normalizer}
}
