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

package regression

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/database"
	"github.com/jetsetilly/tasharness/runfile"
)

// Sentinal error patterns.
const (
	RegressionError = "regression: %v"
	InvalidKey      = "regression: invalid key (%s)"
	DigestMismatch  = "regression: replay digest %s does not match run digest %s"
	InputsMismatch  = "regression: inputs recorded during replay do not match the run"
)

// clear the current line of the terminal
const clearLine = "\r\033[K"

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(runEntryID, deserialiseRunEntry)
}

// regress replays the run in the entry. When adding, the results are stored
// in the entry. Otherwise they are compared with the stored results.
func regress[S any](reg *RunRegression, factory Factory[S], adding bool) (bool, string, error) {
	run, err := runfile.Decode[S](reg.Run)
	if err != nil {
		return false, "", err
	}

	res, err := Verify(run, factory)
	if err != nil {
		return false, "", err
	}

	if !res.Inputs {
		return false, "", curated.Errorf(InputsMismatch)
	}

	if adding {
		if run.Digest != "" && !res.Match(run.Digest) {
			return false, "", curated.Errorf(DigestMismatch, res.Digest, run.Digest)
		}
		reg.Frames = res.Frames
		reg.Digest = res.Digest
		reg.Trace = res.Trace
		reg.Added = time.Now().UTC()
		return true, "", nil
	}

	if res.Frames != reg.Frames {
		return false, fmt.Sprintf("replayed %d frames, expected %d", res.Frames, reg.Frames), nil
	}
	if res.Trace != reg.Trace {
		return false, "trace digest differs", nil
	}
	if !res.Match(reg.Digest) {
		return false, "final digest differs", nil
	}

	return true, "", nil
}

// RegressAdd replays the run in the entry and, if the replay succeeds, adds
// it to the database. The database is created if it does not exist.
func RegressAdd[S any](output io.Writer, dbPath string, reg *RunRegression, factory Factory[S]) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "adding: %s", reg.Name)

	_, _, err = regress(reg, factory, true)
	if err != nil {
		fmt.Fprint(output, clearLine)
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	key, err := db.Add(reg)
	if err != nil {
		fmt.Fprint(output, clearLine)
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "%sadded: %03d %s\n", clearLine, key, reg)

	if err := db.EndSession(true); err != nil {
		return curated.Errorf(RegressionError, err)
	}

	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the database. The user is asked to
// confirm the deletion by reading from the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm := make([]byte, 32)
	n, err := confirmation.Read(confirm)
	if err != nil && err != io.EOF {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if n == 0 || (confirm[0] != 'y' && confirm[0] != 'Y') {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return nil
}

// RegressRun runs the entries in the database. The filterKeys list specifies
// which entries to run. An empty list means that every entry is run.
//
// Returns true if every entry that was run succeeded.
func RegressRun[S any](output io.Writer, dbPath string, factory Factory[S], verbose bool, failOnError bool, filterKeys []string) (bool, error) {
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return false, curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}

	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0

	stop := errors.New("stop")

	_, err = db.SelectKeys(func(key int, ent database.Entry) error {
		reg, ok := ent.(*RunRegression)
		if !ok {
			return curated.Errorf(RegressionError, fmt.Sprintf("unexpected entry type (%T)", ent))
		}

		fmt.Fprintf(output, "running: %s", reg)
		ok, reason, err := regress(reg, factory, false)
		fmt.Fprint(output, clearLine)

		if err != nil {
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "         %v\n", err)
			}
			if failOnError {
				return stop
			}
		} else if !ok {
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "         %s\n", reason)
			}
		} else {
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return nil
	}, keys...)

	if err != nil && err != stop {
		return false, err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	return numFail == 0 && numError == 0, nil
}
