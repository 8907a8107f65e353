/*
   Copyright 2026 The Mockleton Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package slot_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr0ggy/mockleton/config"
	"github.com/pr0ggy/mockleton/slot"
)

// Local consuming types.
type service struct{ id int }

type other struct{}

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (*french) Greet() string { return "bonjour" }

type argsRecorder struct{ args []any }

func newArgsRecorder(args ...any) (*argsRecorder, error) {
	return &argsRecorder{args: args}, nil
}

func newSlot[T any](ctor slot.Constructor[T]) *slot.Slot[T] {
	return slot.New(config.DefaultConfig(), ctor)
}

func TestInstance_EmptySlot(t *testing.T) {
	s := newSlot[*service](nil)

	v, err := s.Instance()
	require.ErrorIs(t, err, slot.ErrNotRegistered)
	assert.Nil(t, v)
	assert.False(t, s.Registered())
}

func TestRegister_ThenInstanceReturnsSameValue(t *testing.T) {
	s := newSlot[*service](nil)
	want := &service{id: 7}

	require.NoError(t, s.Register(want))

	got, err := s.Instance()
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.True(t, s.Registered())
}

func TestRegister_Twice_KeepsFirst(t *testing.T) {
	s := newSlot[*service](nil)
	first, second := &service{id: 1}, &service{id: 2}

	require.NoError(t, s.Register(first))
	require.ErrorIs(t, s.Register(second), slot.ErrAlreadyRegistered)

	got, err := s.Instance()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestRegister_OccupiedCheckedBeforeType(t *testing.T) {
	s := newSlot[*service](nil)
	require.NoError(t, s.Register(&service{}))

	// A mismatching value on a full slot reports the occupancy first.
	assert.ErrorIs(t, s.Register(&other{}), slot.ErrAlreadyRegistered)
}

func TestRegister_TypeMismatch(t *testing.T) {
	cases := []struct {
		name string
		v    any
	}{
		{"unrelated pointer", &other{}},
		{"value instead of pointer", service{}},
		{"nil", nil},
		{"nil pointer", (*service)(nil)},
		{"string", "service"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSlot[*service](nil)

			err := s.Register(tc.v)
			require.ErrorIs(t, err, slot.ErrTypeMismatch)
			assert.EqualError(t, err, "Attempting to register a singleton instance which is not of the same type")
			assert.False(t, s.Registered())
		})
	}
}

func TestRegister_NilPointerAllowedWhenConfigured(t *testing.T) {
	s := slot.New[*service](config.NewConfig(config.WithRejectNil(false)), nil)

	require.NoError(t, s.Register((*service)(nil)))

	got, err := s.Instance()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, s.Registered())
}

func TestRegister_InterfaceAcceptsImplementations(t *testing.T) {
	s := newSlot[greeter](nil)
	require.NoError(t, s.Register(english{}))
	assert.Equal(t, "hello", s.MustInstance().Greet())

	s.Unregister()
	fr := &french{}
	require.NoError(t, s.Register(fr))
	assert.Same(t, fr, s.MustInstance())

	s.Unregister()
	// french has a pointer receiver, so the value does not implement greeter.
	assert.ErrorIs(t, s.Register(french{}), slot.ErrTypeMismatch)
	assert.ErrorIs(t, s.Register(&other{}), slot.ErrTypeMismatch)
}

func TestCreateAndRegister_ForwardsArgsInOrder(t *testing.T) {
	s := newSlot(newArgsRecorder)

	require.NoError(t, s.CreateAndRegister("foo", "bar", true))

	got := s.MustInstance()
	assert.Equal(t, []any{"foo", "bar", true}, got.args)
}

func TestCreateAndRegister_Twice(t *testing.T) {
	calls := 0
	s := newSlot(func(args ...any) (*service, error) {
		calls++
		return &service{id: calls}, nil
	})

	require.NoError(t, s.CreateAndRegister())
	err := s.CreateAndRegister()
	require.ErrorIs(t, err, slot.ErrAlreadyRegistered)
	assert.EqualError(t, err, "Singleton instance already registered")

	assert.Equal(t, 1, calls, "constructor must not run on a full slot")
	assert.Equal(t, 1, s.MustInstance().id)
}

func TestCreateAndRegister_AfterRegister(t *testing.T) {
	s := newSlot(newArgsRecorder)
	require.NoError(t, s.Register(&argsRecorder{}))
	assert.ErrorIs(t, s.CreateAndRegister("x"), slot.ErrAlreadyRegistered)
}

func TestCreateAndRegister_ZeroConstruct(t *testing.T) {
	s := newSlot[*service](nil)

	require.NoError(t, s.CreateAndRegister())

	got := s.MustInstance()
	require.NotNil(t, got)
	assert.Equal(t, reflect.TypeFor[*service](), reflect.TypeOf(got))
	assert.Equal(t, 0, got.id)
}

func TestCreateAndRegister_NoConstructor(t *testing.T) {
	t.Run("args without constructor", func(t *testing.T) {
		s := newSlot[*service](nil)
		assert.ErrorIs(t, s.CreateAndRegister(1), slot.ErrNoConstructor)
		assert.False(t, s.Registered())
	})
	t.Run("zero construct disabled", func(t *testing.T) {
		s := slot.New[*service](config.NewConfig(config.WithZeroConstruct(false)), nil)
		assert.ErrorIs(t, s.CreateAndRegister(), slot.ErrNoConstructor)
	})
	t.Run("not a struct pointer", func(t *testing.T) {
		s := newSlot[greeter](nil)
		assert.ErrorIs(t, s.CreateAndRegister(), slot.ErrNoConstructor)
	})
}

func TestCreateAndRegister_ConstructorError(t *testing.T) {
	boom := errors.New("boom")
	s := newSlot(func(args ...any) (*service, error) {
		return nil, boom
	})

	err := s.CreateAndRegister()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mockleton.Slot[*slot_test.service]")
	assert.False(t, s.Registered())
}

func TestCreateAndRegister_ConstructorReturnsNil(t *testing.T) {
	s := newSlot(func(args ...any) (*service, error) {
		return nil, nil
	})
	assert.ErrorIs(t, s.CreateAndRegister(), slot.ErrTypeMismatch)
	assert.False(t, s.Registered())

	g := newSlot(func(args ...any) (greeter, error) {
		return nil, nil
	})
	assert.ErrorIs(t, g.CreateAndRegister(), slot.ErrTypeMismatch)
}

func TestCreateAndRegister_ConstructorMayReadSlot(t *testing.T) {
	var s *slot.Slot[*service]
	s = newSlot(func(args ...any) (*service, error) {
		// The slot is still empty while constructing.
		if _, err := s.Instance(); !errors.Is(err, slot.ErrNotRegistered) {
			return nil, err
		}
		return &service{id: 3}, nil
	})

	require.NoError(t, s.CreateAndRegister())
	assert.Equal(t, 3, s.MustInstance().id)
}

func TestCreateAndRegister_LosesRaceToRegister(t *testing.T) {
	var s *slot.Slot[*service]
	winner := &service{id: 1}
	s = newSlot(func(args ...any) (*service, error) {
		// Another registration lands while this constructor runs.
		require.NoError(t, s.Register(winner))
		return &service{id: 2}, nil
	})

	require.ErrorIs(t, s.CreateAndRegister(), slot.ErrAlreadyRegistered)
	assert.Same(t, winner, s.MustInstance())
}

func TestUnregister(t *testing.T) {
	s := newSlot(newArgsRecorder)

	// Empty slot: no-op.
	s.Unregister()
	assert.False(t, s.Registered())

	require.NoError(t, s.CreateAndRegister("a"))
	s.Unregister()

	_, err := s.Instance()
	require.ErrorIs(t, err, slot.ErrNotRegistered)
	assert.EqualError(t, err, "No singleton instance registered")

	// Fully reusable through both registration paths.
	require.NoError(t, s.CreateAndRegister("b"))
	assert.Equal(t, []any{"b"}, s.MustInstance().args)
	s.Unregister()
	r := &argsRecorder{}
	require.NoError(t, s.Register(r))
	assert.Same(t, r, s.MustInstance())
}

func TestMustInstance_Panics(t *testing.T) {
	s := newSlot[*service](nil)
	assert.PanicsWithError(t, "mockleton.Slot[*slot_test.service]: No singleton instance registered", func() {
		s.MustInstance()
	})
}

func TestDefine_RebindsConstructor(t *testing.T) {
	s := newSlot[*service](nil)
	s.Define(func(args ...any) (*service, error) {
		return &service{id: len(args)}, nil
	})

	require.NoError(t, s.CreateAndRegister(1, 2))
	assert.Equal(t, 2, s.MustInstance().id)

	s.Unregister()
	s.Define(nil)
	assert.ErrorIs(t, s.CreateAndRegister(1), slot.ErrNoConstructor)
}

func TestConfigure(t *testing.T) {
	s := newSlot[*service](nil)
	assert.Equal(t, config.DefaultConfig(), s.Config())

	cfg := config.NewConfig(config.WithRejectNil(false))
	s.Configure(cfg)
	assert.Equal(t, cfg, s.Config())
	assert.NoError(t, s.Register((*service)(nil)))
}

func TestReconfigure_KeepsOtherKnobs(t *testing.T) {
	s := slot.New[*service](config.NewConfig(config.WithZeroConstruct(false)), nil)

	s.Reconfigure(config.WithRejectNil(false))

	assert.Equal(t, config.NewConfig(config.WithZeroConstruct(false), config.WithRejectNil(false)), s.Config())
}

func TestTypeAndString(t *testing.T) {
	s := newSlot[*service](nil)
	assert.Equal(t, reflect.TypeFor[*service](), s.Type())
	assert.Equal(t, "mockleton.Slot[*slot_test.service]", s.String())

	g := newSlot[greeter](nil)
	assert.Equal(t, "mockleton.Slot[slot_test.greeter]", g.String())
}
