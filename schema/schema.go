// This file is part of TASHarness.
//
// TASHarness is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TASHarness is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TASHarness.  If not, see <https://www.gnu.org/licenses/>.

// Package schema validates persisted files against the JSON schemas embedded
// in the package. Validation happens before decoding so that a malformed file
// is reported with the location of the problem rather than as a decoding
// error.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"

	"github.com/jetsetilly/tasharness/curated"
)

// List of embedded schemas.
const (
	Run         = "run.schema.json"
	Checkpoints = "checkpoints.schema.json"
)

// Sentinal error patterns.
const (
	UnknownSchema   = "schema: unknown schema (%s)"
	CompileError    = "schema: compile %s: %v"
	ValidationError = "schema: %s: %v"
)

//go:embed *.schema.json
var files embed.FS

var (
	crit     sync.Mutex
	compiled = make(map[string]*jsonschema.Schema)
)

// get returns the compiled schema. schemas are compiled on first use.
func get(name string) (*jsonschema.Schema, error) {
	crit.Lock()
	defer crit.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	data, err := files.ReadFile(name)
	if err != nil {
		return nil, curated.Errorf(UnknownSchema, name)
	}

	compiler := jsonschema.NewCompiler()
	s, err := compiler.Compile(data)
	if err != nil {
		return nil, curated.Errorf(CompileError, name, err)
	}
	compiled[name] = s

	return s, nil
}

// Validate the JSON data against the named schema.
func Validate(name string, data []byte) error {
	s, err := get(name)
	if err != nil {
		return err
	}

	if !json.Valid(data) {
		return curated.Errorf(ValidationError, name, "not valid JSON")
	}

	result := s.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}

	return curated.Errorf(ValidationError, name, fmt.Sprintf("%v", result.Errors))
}
