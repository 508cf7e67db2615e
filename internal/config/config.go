// Package config loads the optional HCL configuration file and exposes it to
// kong as flag defaults.
package config

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded configuration file. Every field is optional; a nil
// pointer means the file does not set it.
type File struct {
	LogLevel *string      `hcl:"log_level,optional"`
	LogFile  *string      `hcl:"log_file,optional"`
	NoColor  *bool        `hcl:"no_color,optional"`
	Random   *RandomBlock `hcl:"random,block"`
	Manual   *ManualBlock `hcl:"manual,block"`
}

// RandomBlock holds defaults for the random command.
type RandomBlock struct {
	MinLength       *int   `hcl:"min_length,optional"`
	MaxLength       *int   `hcl:"max_length,optional"`
	MinScore        *int   `hcl:"min_score,optional"`
	MaxScore        *int   `hcl:"max_score,optional"`
	MaxWrongGuesses *int   `hcl:"max_wrong_guesses,optional"`
	Seed            *int64 `hcl:"seed,optional"`
}

// ManualBlock holds defaults for the manual command.
type ManualBlock struct {
	MaxWrongGuesses *int `hcl:"max_wrong_guesses,optional"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Read decodes a configuration file from r.
func Read(r io.Reader, filename string) (*File, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes and validates HCL source.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that kong would otherwise reject with a less
// helpful message.
func (f *File) Validate() error {
	if f.LogLevel != nil && !validLogLevels[*f.LogLevel] {
		return fmt.Errorf("invalid log level: %s", *f.LogLevel)
	}

	if f.Random != nil {
		for name, v := range map[string]*int{
			"random.min_length":        f.Random.MinLength,
			"random.max_length":        f.Random.MaxLength,
			"random.min_score":         f.Random.MinScore,
			"random.max_score":         f.Random.MaxScore,
			"random.max_wrong_guesses": f.Random.MaxWrongGuesses,
		} {
			if err := checkUint8(name, v); err != nil {
				return err
			}
		}
	}

	if f.Manual != nil {
		if err := checkUint8("manual.max_wrong_guesses", f.Manual.MaxWrongGuesses); err != nil {
			return err
		}
	}

	return nil
}

func checkUint8(name string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > math.MaxUint8 {
		return fmt.Errorf("%s must be between 0 and %d, got %d", name, math.MaxUint8, *v)
	}
	return nil
}
