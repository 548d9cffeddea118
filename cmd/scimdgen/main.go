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

// Command scimdgen generates the archsimd register types of the x86 backend
// from a YAML table.
//
// Usage:
//
//	scimdgen -config backends.yaml -output .
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/scimdgen -config backends.yaml -output .
//
// Each entry of the table becomes one file, <type>_gen.go, holding a type
// that implements every primitive of scimd.Register for that register.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var (
	configFile = flag.String("config", "backends.yaml", "Backend table (YAML)")
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
)

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		Config:    cfg,
		Source:    filepath.Base(*configFile),
		OutputDir: *outputDir,
	}

	written, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d register files in %s\n", len(written), *outputDir)
}
