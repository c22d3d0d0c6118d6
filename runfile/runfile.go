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

package runfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/fsx"
	"github.com/jetsetilly/tasharness/schema"
)

// Sentinal error patterns.
const (
	LoadError   = "runfile: load %s: %v"
	SaveError   = "runfile: save %s: %v"
	EncodeError = "runfile: encode: %v"
	DecodeError = "runfile: decode: %v"
)

// Run is a complete recording. The type parameter is the type of the
// subject's saved state.
type Run[S any] struct {
	InitialState S            `json:"initial_state"`
	Inputs       eventlog.Log `json:"inputs"`

	// the fixed delta time of the host when the run was recorded. zero if
	// unknown
	Step float64 `json:"fixed_delta_time,omitempty"`

	// digest of the subject state after the last frame of the log
	Digest string `json:"digest,omitempty"`
}

func (r Run[S]) String() string {
	return r.Inputs.String()
}

// Encode writes the run to w as indented JSON.
func Encode[S any](w io.Writer, run Run[S]) error {
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}

// Decode validates and decodes the run in data.
func Decode[S any](data []byte) (Run[S], error) {
	if err := schema.Validate(schema.Run, data); err != nil {
		return Run[S]{}, curated.Errorf(DecodeError, err)
	}
	var run Run[S]
	if err := json.Unmarshal(data, &run); err != nil {
		return Run[S]{}, curated.Errorf(DecodeError, err)
	}
	return run, nil
}

// Save the run to the file at path. The file is written atomically so a
// failed save never leaves a partial file.
func Save[S any](path string, run Run[S]) error {
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return curated.Errorf(SaveError, path, err)
	}
	b = append(b, '\n')
	if err := fsx.WriteFileAtomic(path, b, 0o644); err != nil {
		return curated.Errorf(SaveError, path, err)
	}
	return nil
}

// Load the run from the file at path. The run is fully decoded before it is
// returned so a failed load returns nothing usable.
func Load[S any](path string) (Run[S], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run[S]{}, curated.Errorf(LoadError, path, err)
	}
	run, err := Decode[S](data)
	if err != nil {
		return Run[S]{}, curated.Errorf(LoadError, path, err)
	}
	return run, nil
}

// Summary writes a short description of the run to w.
func Summary[S any](w io.Writer, run Run[S]) {
	fmt.Fprintf(w, "frames: %d\n", run.Inputs.Frames())
	fmt.Fprintf(w, "runs: %d\n", run.Inputs.Len())
	if run.Step > 0 {
		fmt.Fprintf(w, "fixed delta time: %gs (%.2fhz)\n", run.Step, 1/run.Step)
		fmt.Fprintf(w, "duration: %.3fs\n", float64(run.Inputs.Frames())*run.Step)
	} else {
		fmt.Fprintf(w, "fixed delta time: unknown\n")
	}
	if run.Digest != "" {
		fmt.Fprintf(w, "digest: %s\n", run.Digest)
	} else {
		fmt.Fprintf(w, "digest: none\n")
	}
}
