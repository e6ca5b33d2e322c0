package oreenc

import (
	"fmt"
	"slices"

	"github.com/arloliu/oreenc/encoding"
	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/internal/options"
	"github.com/arloliu/oreenc/primitive"
	"github.com/arloliu/oreenc/primitive/aes128"
)

// Config holds the settings a Cipher is built from. The values are
// explicit so that new parameter sets or charsets can be enabled per
// cipher without touching package state.
type Config struct {
	engine          primitive.Engine
	charsets        []format.Charset
	supportedParams []format.Params
}

// NewConfig returns the default configuration: the AES-128 engine,
// UTF-8 and US-ASCII strings, and the {64, 8} parameter set.
func NewConfig() *Config {
	return &Config{
		engine:          aes128.Default,
		charsets:        slices.Clone(encoding.DefaultCharsets),
		supportedParams: []format.Params{format.DefaultParams},
	}
}

// Engine returns the configured ORE engine.
func (c *Config) Engine() primitive.Engine { return c.engine }

// Charsets returns the accepted string charsets.
func (c *Config) Charsets() []format.Charset { return slices.Clone(c.charsets) }

// SupportedParams returns the accepted parameter sets.
func (c *Config) SupportedParams() []format.Params { return slices.Clone(c.supportedParams) }

func (c *Config) setEngine(e primitive.Engine) error {
	if e == nil {
		return errs.ErrNilEngine
	}
	c.engine = e

	return nil
}

func (c *Config) setCharsets(charsets []format.Charset) error {
	if len(charsets) == 0 {
		return errs.ErrNoCharsets
	}
	c.charsets = slices.Clone(charsets)

	return nil
}

func (c *Config) setSupportedParams(params []format.Params) error {
	if len(params) == 0 {
		return errs.ErrNoSupportedParams
	}
	for _, p := range params {
		if p.Bits <= 0 || p.Blocks <= 0 || p.Bits > 64 || p.Bits%p.Blocks != 0 {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedParams, p)
		}
	}
	c.supportedParams = slices.Clone(params)

	return nil
}

// Option represents a functional option for configuring a Cipher.
type Option = options.Option[*Config]

// WithEngine sets the ORE engine. The default is aes128.Default.
func WithEngine(e primitive.Engine) Option {
	return options.New(func(c *Config) error {
		return c.setEngine(e)
	})
}

// WithCharsets sets the string charsets accepted by Encrypt.
// The default is UTF-8 and US-ASCII.
func WithCharsets(charsets ...format.Charset) Option {
	return options.New(func(c *Config) error {
		return c.setCharsets(charsets)
	})
}

// WithCharsetNames is WithCharsets for charset labels such as "UTF-8".
func WithCharsetNames(labels ...string) Option {
	return options.New(func(c *Config) error {
		charsets := make([]format.Charset, 0, len(labels))
		for _, label := range labels {
			cs, err := format.ParseCharset(label)
			if err != nil {
				return fmt.Errorf("%w: %w", errs.ErrInvalidCharsetName, err)
			}
			charsets = append(charsets, cs)
		}

		return c.setCharsets(charsets)
	})
}

// WithSupportedParams sets the parameter sets New and ParseCiphertext
// accept. Every set must split at most 64 bits into equal blocks.
// The default is {64, 8}.
func WithSupportedParams(params ...format.Params) Option {
	return options.New(func(c *Config) error {
		return c.setSupportedParams(params)
	})
}
