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

package scimd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCPU is returned by Verify when the running CPU lacks an
// instruction-set feature the compiled tier uses.
var ErrUnsupportedCPU = errors.New("scimd: cpu does not support compiled backend")

// Feature is one CPU capability as reported by golang.org/x/sys/cpu.
type Feature struct {
	// Name is the lower-case feature name, e.g. "avx2".
	Name string
	// Present reports whether the running CPU has the feature.
	Present bool
	// Required reports whether the compiled tier uses the feature.
	Required bool
}

// Features lists the CPU features relevant to this architecture, in order
// of increasing tier.
func Features() []Feature {
	return cpuFeatures(currentLevel)
}

// Verify checks that the running CPU can execute the compiled tier. The
// backend is fixed at build time, so a failure cannot be recovered by
// switching tiers; callers typically report it and exit, or rebuild with a
// narrower GOAMD64 or one of the scimd_no* tags.
func Verify() error {
	return verifyLevel(currentLevel)
}

func verifyLevel(l Level) error {
	log := Logger()
	var missing []string
	for _, f := range cpuFeatures(l) {
		if f.Required && !f.Present {
			missing = append(missing, f.Name)
		}
	}
	log.Debug("scimd backend", "level", l.String(), "width", l.Width(), "missing", len(missing))
	if len(missing) == 0 {
		return nil
	}
	log.Warn("scimd backend needs unavailable cpu features", "level", l.String(), "missing", missing)
	return fmt.Errorf("%w: %s needs %s", ErrUnsupportedCPU, l, strings.Join(missing, ", "))
}
