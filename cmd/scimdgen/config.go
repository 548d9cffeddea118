// Copyright 2025 go-scimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var errInvalidConfig = errors.New("invalid backend config")

// RSqrt seed strategies.
const (
	// rsqrtNewton refines the float32 hardware estimate with one Newton step.
	rsqrtNewton = "newton"
	// rsqrtNarrow seeds the float64 series from a float32 estimate.
	rsqrtNarrow = "narrow"
	// rsqrtNative seeds the float64 series from the AVX-512 float64 estimate.
	rsqrtNative = "native"
)

// Config is the contents of backends.yaml.
type Config struct {
	Package   string     `yaml:"package"`
	Build     string     `yaml:"build"`
	Registers []Register `yaml:"registers"`
}

// Register describes one archsimd-backed register type.
type Register struct {
	Type  string `yaml:"type"`
	Elem  string `yaml:"elem"`
	Lanes int    `yaml:"lanes"`
	Bits  int    `yaml:"bits"`
	RSqrt string `yaml:"rsqrt"`
}

// LoadConfig reads and validates a backend table.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a backend table.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding backend config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every register is consistent with the archsimd
// naming scheme and that the rsqrt strategy suits its element type.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("%w: package is empty", errInvalidConfig)
	}
	if len(c.Registers) == 0 {
		return fmt.Errorf("%w: no registers", errInvalidConfig)
	}
	if dups := lo.FindDuplicates(lo.Map(c.Registers, func(r Register, _ int) string { return r.Type })); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate register %s", errInvalidConfig, strings.Join(dups, ", "))
	}
	for _, r := range c.Registers {
		if err := r.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r Register) validate() error {
	elemBits := r.elemBits()
	if elemBits == 0 {
		return fmt.Errorf("%w: %s: elem %q is not float32 or float64", errInvalidConfig, r.Type, r.Elem)
	}
	if !lo.Contains([]int{128, 256, 512}, r.Bits) {
		return fmt.Errorf("%w: %s: bits %d is not 128, 256 or 512", errInvalidConfig, r.Type, r.Bits)
	}
	if r.Lanes*elemBits != r.Bits {
		return fmt.Errorf("%w: %s: %d lanes of %s do not fill %d bits", errInvalidConfig, r.Type, r.Lanes, r.Elem, r.Bits)
	}
	if want := fmt.Sprintf("%sx%d", title(r.Elem), r.Lanes); r.Type != want {
		return fmt.Errorf("%w: %s: type must be named %s", errInvalidConfig, r.Type, want)
	}
	switch r.RSqrt {
	case rsqrtNewton:
		if r.Elem != "float32" {
			return fmt.Errorf("%w: %s: rsqrt %q needs float32 lanes", errInvalidConfig, r.Type, r.RSqrt)
		}
	case rsqrtNarrow:
		if r.Elem != "float64" || r.Lanes > 4 {
			return fmt.Errorf("%w: %s: rsqrt %q needs at most 4 float64 lanes", errInvalidConfig, r.Type, r.RSqrt)
		}
	case rsqrtNative:
		if r.Elem != "float64" || r.Bits != 512 {
			return fmt.Errorf("%w: %s: rsqrt %q needs a 512-bit float64 register", errInvalidConfig, r.Type, r.RSqrt)
		}
	default:
		return fmt.Errorf("%w: %s: unknown rsqrt %q", errInvalidConfig, r.Type, r.RSqrt)
	}
	return nil
}

func (r Register) elemBits() int {
	switch r.Elem {
	case "float32":
		return 32
	case "float64":
		return 64
	}
	return 0
}

// title turns an element type into its archsimd spelling, float32 -> Float32.
func title(s string) string {
	return cases.Title(language.English).String(s)
}
