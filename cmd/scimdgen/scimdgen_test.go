package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const checkedInConfig = "../../internal/backend/x86/backends.yaml"

func TestParseConfigValidation(t *testing.T) {
	reg := func(typ, elem string, lanes, bits int, rsqrt string) string {
		return fmt.Sprintf("  - {type: %s, elem: %s, lanes: %d, bits: %d, rsqrt: %s}\n", typ, elem, lanes, bits, rsqrt)
	}
	head := "package: x86\nbuild: amd64\nregisters:\n"

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"Valid", head + reg("Float32x8", "float32", 8, 256, "newton"), ""},
		{"NoPackage", "registers:\n" + reg("Float32x8", "float32", 8, 256, "newton"), "package is empty"},
		{"NoRegisters", "package: x86\n", "no registers"},
		{"Duplicate", head + reg("Float32x8", "float32", 8, 256, "newton") + reg("Float32x8", "float32", 8, 256, "newton"), "duplicate register Float32x8"},
		{"BadElem", head + reg("Int32x8", "int32", 8, 256, "newton"), "not float32 or float64"},
		{"BadBits", head + reg("Float32x2", "float32", 2, 64, "newton"), "is not 128, 256 or 512"},
		{"LaneMismatch", head + reg("Float32x4", "float32", 4, 256, "newton"), "do not fill"},
		{"BadName", head + reg("F32x8", "float32", 8, 256, "newton"), "must be named Float32x8"},
		{"NewtonOnFloat64", head + reg("Float64x4", "float64", 4, 256, "newton"), "needs float32 lanes"},
		{"NarrowTooWide", head + reg("Float64x8", "float64", 8, 512, "narrow"), "at most 4 float64 lanes"},
		{"NativeTooNarrow", head + reg("Float64x4", "float64", 4, 256, "native"), "512-bit float64"},
		{"UnknownRSqrt", head + reg("Float32x8", "float32", 8, 256, "magic"), "unknown rsqrt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ParseConfig() error = %v", err)
				}
				return
			}
			if !errors.Is(err, errInvalidConfig) {
				t.Fatalf("ParseConfig() error = %v, want errInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseConfig() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("registers: [unterminated"))
	if err == nil || errors.Is(err, errInvalidConfig) {
		t.Errorf("ParseConfig(malformed) error = %v, want a decoding error", err)
	}
}

func TestCheckedInConfig(t *testing.T) {
	cfg, err := LoadConfig(checkedInConfig)
	if err != nil {
		t.Fatalf("LoadConfig(%s) error = %v", checkedInConfig, err)
	}

	want := &Config{
		Package: "x86",
		Build:   "amd64 && goexperiment.simd",
		Registers: []Register{
			{Type: "Float32x4", Elem: "float32", Lanes: 4, Bits: 128, RSqrt: "newton"},
			{Type: "Float64x2", Elem: "float64", Lanes: 2, Bits: 128, RSqrt: "narrow"},
			{Type: "Float32x8", Elem: "float32", Lanes: 8, Bits: 256, RSqrt: "newton"},
			{Type: "Float64x4", Elem: "float64", Lanes: 4, Bits: 256, RSqrt: "narrow"},
			{Type: "Float32x16", Elem: "float32", Lanes: 16, Bits: 512, RSqrt: "newton"},
			{Type: "Float64x8", Elem: "float64", Lanes: 8, Bits: 512, RSqrt: "native"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("backends.yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRegister(t *testing.T) {
	cfg, err := LoadConfig(checkedInConfig)
	if err != nil {
		t.Fatal(err)
	}
	g := &Generator{Config: cfg, Source: "backends.yaml"}

	for _, r := range cfg.Registers {
		t.Run(r.Type, func(t *testing.T) {
			src, err := g.Render(r)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			code := string(src)

			for _, want := range []string{
				"// Code generated by scimdgen from backends.yaml. DO NOT EDIT.",
				"//go:build amd64 && goexperiment.simd",
				"type " + r.Type + " struct",
				"archsimd." + r.Type,
			} {
				if !strings.Contains(code, want) {
					t.Errorf("rendered %s missing %q", r.Type, want)
				}
			}

			hasRefine := strings.Contains(code, "func refine")
			if wantRefine := r.RSqrt != rsqrtNewton; hasRefine != wantRefine {
				t.Errorf("rendered %s: refine present = %v, want %v", r.Type, hasRefine, wantRefine)
			}

			// The rendered file declares the same methods as the checked-in one.
			checkedIn := filepath.Join(filepath.Dir(checkedInConfig), FileName(r))
			onDisk, err := os.ReadFile(checkedIn)
			if err != nil {
				t.Fatalf("reading %s: %v", checkedIn, err)
			}
			got := methodsOf(t, src, r.Type)
			if diff := cmp.Diff(methodsOf(t, onDisk, r.Type), got); diff != "" {
				t.Errorf("%s is stale, run go generate (-checked-in +rendered):\n%s", checkedIn, diff)
			}
			if len(got) < 30 {
				t.Errorf("rendered %s has %d methods, want the full register method set", r.Type, len(got))
			}
		})
	}
}

func methodsOf(t *testing.T, src []byte, typ string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	if err != nil {
		t.Fatalf("parsing generated code: %v", err)
	}
	var names []string
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		if id, ok := fn.Recv.List[0].Type.(*ast.Ident); ok && id.Name == typ {
			names = append(names, fn.Name.Name)
		}
	}
	slices.Sort(names)
	return names
}

func TestRunWritesFiles(t *testing.T) {
	cfg, err := LoadConfig(checkedInConfig)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	g := &Generator{Config: cfg, Source: "backends.yaml", OutputDir: dir}

	written, err := g.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(written) != len(cfg.Registers) {
		t.Fatalf("Run() wrote %d files, want %d", len(written), len(cfg.Registers))
	}
	for _, path := range written {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
	if got := filepath.Base(written[0]); got != "float32x4_gen.go" {
		t.Errorf("first file = %s, want float32x4_gen.go", got)
	}
}
