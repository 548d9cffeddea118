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
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed register.tmpl
var registerTemplate string

var registerTmpl = template.Must(template.New("register").Parse(registerTemplate))

// registerView is the template input for one register.
type registerView struct {
	Register
	Source  string
	Build   string
	Package string

	Suffix   string // "32x8"
	Int      string // "Int32x8"
	Mask     string // "Mask32x8"
	FullMask string // "0xff"
	SignBit  string // "math.MinInt32"

	Newton bool
	Narrow bool
	Native bool
	Pad    bool
}

// Generator renders one Go file per register of a Config.
type Generator struct {
	Config    *Config
	Source    string
	OutputDir string
}

func (g *Generator) view(r Register) registerView {
	bits := r.elemBits()
	suffix := fmt.Sprintf("%dx%d", bits, r.Lanes)
	return registerView{
		Register: r,
		Source:   g.Source,
		Build:    g.Config.Build,
		Package:  g.Config.Package,
		Suffix:   suffix,
		Int:      "Int" + suffix,
		Mask:     "Mask" + suffix,
		FullMask: fmt.Sprintf("%#x", uint64(1)<<r.Lanes-1),
		SignBit:  fmt.Sprintf("math.MinInt%d", bits),
		Newton:   r.RSqrt == rsqrtNewton,
		Narrow:   r.RSqrt == rsqrtNarrow,
		Native:   r.RSqrt == rsqrtNative,
		Pad:      r.RSqrt == rsqrtNarrow && r.Lanes < 4,
	}
}

// Render returns the formatted source for r.
func (g *Generator) Render(r Register) ([]byte, error) {
	var buf bytes.Buffer
	if err := registerTmpl.Execute(&buf, g.view(r)); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", r.Type, err)
	}
	out, err := imports.Process(FileName(r), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", r.Type, err)
	}
	return out, nil
}

// FileName is the generated file name of r, e.g. float32x8_gen.go.
func FileName(r Register) string {
	return strings.ToLower(r.Type) + "_gen.go"
}

// Run renders every register and writes the files to OutputDir.
func (g *Generator) Run() ([]string, error) {
	var written []string
	for _, r := range g.Config.Registers {
		src, err := g.Render(r)
		if err != nil {
			return written, err
		}
		path := filepath.Join(g.OutputDir, FileName(r))
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
