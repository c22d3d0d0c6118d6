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

package checkpoint

import (
	"errors"
	"io/fs"

	"github.com/jetsetilly/tasharness/logger"
)

// Store is an ordered list of checkpoints backed by a persistent Backend.
// Every mutation of the list is persisted immediately. The in-memory list is
// authoritative: a failure to persist does not undo the mutation.
type Store[S any] struct {
	backend Backend[S]
	list    []Checkpoint[S]
	perm    logger.Permission
}

// NewStore creates an empty store. Call Restore() to load the persisted list.
func NewStore[S any](backend Backend[S], perm logger.Permission) *Store[S] {
	return &Store[S]{
		backend: backend,
		perm:    perm,
	}
}

func (st *Store[S]) String() string {
	return st.backend.String()
}

// Restore replaces the list with the checkpoints in the backend. A missing
// file is not an error. A corrupt file results in an empty store and the
// error is returned for reporting.
func (st *Store[S]) Restore() error {
	st.list = st.list[:0]

	list, err := st.backend.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(st.perm, "checkpoint", "no checkpoints in %s", st.backend)
			return nil
		}
		logger.Log(st.perm, "checkpoint", err)
		return err
	}

	st.list = list
	logger.Logf(st.perm, "checkpoint", "restored %d checkpoints from %s", len(st.list), st.backend)

	return nil
}

func (st *Store[S]) persist() error {
	err := st.backend.Save(st.list)
	if err != nil {
		logger.Log(st.perm, "checkpoint", err)
	}
	return err
}

// Append a checkpoint to the end of the list and persist the list.
func (st *Store[S]) Append(cp Checkpoint[S]) error {
	st.list = append(st.list, cp)
	return st.persist()
}

// Get the checkpoint at index i. Returns false if the index is out of range.
func (st *Store[S]) Get(i int) (Checkpoint[S], bool) {
	if i < 0 || i >= len(st.list) {
		return Checkpoint[S]{}, false
	}
	return st.list[i], true
}

// Latest returns the most recently appended checkpoint.
func (st *Store[S]) Latest() (Checkpoint[S], bool) {
	return st.Get(len(st.list) - 1)
}

// Delete the checkpoint at index i and persist the list. Returns false if
// the index is out of range, in which case nothing is persisted.
func (st *Store[S]) Delete(i int) (bool, error) {
	if i < 0 || i >= len(st.list) {
		return false, nil
	}
	st.list = append(st.list[:i], st.list[i+1:]...)
	return true, st.persist()
}

// Len returns the number of checkpoints in the store.
func (st *Store[S]) Len() int {
	return len(st.list)
}

// List returns a copy of the list of checkpoints.
func (st *Store[S]) List() []Checkpoint[S] {
	l := make([]Checkpoint[S], len(st.list))
	copy(l, st.list)
	return l
}
