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

package userinput_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

func TestEventEquality(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyDown("A"), userinput.KeyDown("A"))
	test.ExpectInequality(t, userinput.KeyDown("A"), userinput.KeyUp("A"))
	test.ExpectInequality(t, userinput.KeyDown("A"), userinput.KeyDown("B"))
	test.ExpectEquality(t, userinput.MouseDown(userinput.MouseButtonLeft, 10, 20),
		userinput.Event{Kind: userinput.KindMouseDown, Button: userinput.MouseButtonLeft, X: 10, Y: 20})
}

func TestEventJSON(t *testing.T) {
	b, err := json.Marshal(userinput.KeyDown("A"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `{"kind":"KeyDown","key":"A"}`)

	b, err = json.Marshal(userinput.MouseUp(userinput.MouseButtonRight, 1, 2))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `{"kind":"MouseUp","button":"Right","x":1,"y":2}`)

	var ev userinput.Event
	test.DemandSuccess(t, json.Unmarshal([]byte(`{"kind":"Text","text":"hello"}`), &ev))
	test.ExpectEquality(t, ev, userinput.Text("hello"))

	err = json.Unmarshal([]byte(`{"kind":"Jump"}`), &ev)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(unwrapJSON(err), userinput.UnknownKind))

	// a kind of none cannot be written
	_, err = json.Marshal(userinput.Event{})
	test.ExpectFailure(t, err)
}

// the json package wraps errors returned by UnmarshalText
func unwrapJSON(err error) error {
	for err != nil {
		if curated.IsAny(err) {
			return err
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
	return err
}

func TestNormaliseKey(t *testing.T) {
	test.ExpectEquality(t, userinput.NormaliseKey("a"), userinput.Key("A"))
	test.ExpectEquality(t, userinput.NormaliseKey(" Left "), userinput.KeyLeft)
	test.ExpectEquality(t, userinput.NormaliseKey("LAlt"), userinput.KeyLAlt)
}

func TestHeld(t *testing.T) {
	h := userinput.NewHeld()

	test.ExpectSuccess(t, h.Apply(userinput.KeyDown("A")))
	test.ExpectSuccess(t, h.Apply(userinput.KeyDown("B")))
	test.ExpectSuccess(t, h.Apply(userinput.MouseDown(userinput.MouseButtonLeft, 0, 0)))
	test.ExpectFailure(t, h.Apply(userinput.MouseMove(5, 5)))
	test.ExpectEquality(t, h.String(), "keys [A+B] buttons [Left]")

	c := h.Clone()

	test.ExpectSuccess(t, h.Apply(userinput.KeyUp("A")))
	test.ExpectSuccess(t, h.Apply(userinput.MouseUp(userinput.MouseButtonLeft, 0, 0)))
	test.ExpectEquality(t, h.String(), "keys [B] buttons []")

	// clone is unaffected by changes to the original
	test.ExpectEquality(t, c.String(), "keys [A+B] buttons [Left]")
	test.ExpectFailure(t, c.Equal(h))

	h.Clear()
	test.ExpectSuccess(t, h.Equal(userinput.NewHeld()))

	// the zero value is usable with Apply()
	var z userinput.Held
	test.ExpectSuccess(t, z.Apply(userinput.KeyDown("Z")))
	test.ExpectSuccess(t, z.Keys.Has("Z"))
}

func TestSetJSON(t *testing.T) {
	keys := userinput.NewKeySet("Right", "A", "Space")
	b, err := json.Marshal(keys)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `["A","Right","Space"]`)

	var k userinput.KeySet
	test.DemandSuccess(t, json.Unmarshal(b, &k))
	require.Equal(t, keys, k)

	// nil and empty sets are both written as an empty array and are always
	// read as a non-nil empty set
	var nilKeys userinput.KeySet
	b, err = json.Marshal(nilKeys)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `[]`)
	test.DemandSuccess(t, json.Unmarshal(b, &k))
	require.NotNil(t, k)
	require.Empty(t, k)

	buttons := userinput.NewButtonSet(userinput.MouseButtonRight, userinput.MouseButtonLeft)
	b, err = json.Marshal(buttons)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `["Left","Right"]`)

	var bs userinput.ButtonSet
	test.DemandSuccess(t, json.Unmarshal(b, &bs))
	require.Equal(t, buttons, bs)
}

func TestKindValid(t *testing.T) {
	test.ExpectFailure(t, userinput.KindNone.Valid())
	test.ExpectFailure(t, userinput.Kind(99).Valid())
	test.ExpectFailure(t, userinput.Kind(-1).Valid())
	test.ExpectSuccess(t, userinput.KindKeyDown.Valid())
	test.ExpectSuccess(t, userinput.KindText.Valid())

	_, err := json.Marshal(userinput.Event{})
	test.ExpectFailure(t, err)
}
