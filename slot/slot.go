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

package slot

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/pr0ggy/mockleton/apis"
	"github.com/pr0ggy/mockleton/config"
	uref "github.com/pr0ggy/mockleton/utils/reflect"
)

// Error messages are matched verbatim by existing callers.
var (
	// ErrAlreadyRegistered is returned by both registration paths when the
	// slot already holds an instance.
	ErrAlreadyRegistered = errors.New("Singleton instance already registered")
	// ErrTypeMismatch is returned when a value offered for registration is
	// not an instance of the consuming type.
	ErrTypeMismatch = errors.New("Attempting to register a singleton instance which is not of the same type")
	// ErrNotRegistered is returned when reading an empty slot.
	ErrNotRegistered = errors.New("No singleton instance registered")
	// ErrNoConstructor is returned by CreateAndRegister when the slot has no
	// constructor and cannot build a zero value.
	ErrNoConstructor = errors.New("No singleton constructor defined")
)

// Constructor builds a new instance of T from positional arguments.
type Constructor[T any] func(args ...any) (T, error)

// Slot holds at most one instance of the consuming type T.
//
// All methods are safe for concurrent use; operations on one slot are
// serialized by an internal mutex. A Slot must not be copied after first use.
type Slot[T any] struct {
	// t is the consuming type.
	t reflect.Type
	// mu guards every field below.
	mu sync.Mutex
	// cfg holds the behavior knobs.
	cfg apis.Config
	// ctor is the optional bound constructor.
	ctor Constructor[T]
	// held is the registered instance, valid only when ok is true.
	held T
	// ok reports whether the slot is occupied.
	ok bool
}

// Ensure Slot implements apis.Slot.
var _ apis.Slot = (*Slot[any])(nil)

// New constructs an empty slot for T. ctor may be nil.
func New[T any](cfg apis.Config, ctor Constructor[T]) *Slot[T] {
	return &Slot[T]{
		t:    reflect.TypeFor[T](),
		cfg:  cfg,
		ctor: ctor,
	}
}

// Register adopts instance as the singleton.
//
// The occupancy check runs first: a full slot yields ErrAlreadyRegistered
// whatever instance is. A value that is not a T (or, with RejectNil, is a nil
// T) yields ErrTypeMismatch and leaves the slot empty.
func (s *Slot[T]) Register(instance any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ok {
		return ErrAlreadyRegistered
	}
	v, err := check[T](instance, s.cfg)
	if err != nil {
		return err
	}
	s.held, s.ok = v, true
	return nil
}

// CreateAndRegister builds a new T from args and adopts it.
//
// args are forwarded verbatim and in order to the bound constructor. Without
// a constructor, an argument-less call allocates a zero value when T is a
// pointer to a struct and ZeroConstruct is enabled; anything else yields
// ErrNoConstructor. Constructor errors are returned wrapped.
func (s *Slot[T]) CreateAndRegister(args ...any) error {
	s.mu.Lock()
	if s.ok {
		s.mu.Unlock()
		return ErrAlreadyRegistered
	}
	ctor, cfg := s.ctor, s.cfg
	s.mu.Unlock()

	// Construct without holding the lock: constructors may consult the slot.
	v, err := s.construct(ctor, cfg, args)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock in case another registration won meanwhile.
	if s.ok {
		return ErrAlreadyRegistered
	}
	s.held, s.ok = v, true
	return nil
}

// Instance returns the registered instance.
// Pointer types are returned as-is, so callers share the held value.
func (s *Slot[T]) Instance() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ok {
		var zero T
		return zero, ErrNotRegistered
	}
	return s.held, nil
}

// MustInstance is like Instance but panics if the slot is empty.
func (s *Slot[T]) MustInstance() T {
	v, err := s.Instance()
	if err != nil {
		panic(fmt.Errorf("%s: %w", s, err))
	}
	return v
}

// Unregister empties the slot. It is a no-op on an empty slot.
func (s *Slot[T]) Unregister() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.held, s.ok = zero, false
}

// Registered reports whether the slot holds an instance.
func (s *Slot[T]) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ok
}

// Define binds ctor as the constructor used by CreateAndRegister.
// A nil ctor unbinds it. The held instance, if any, is not touched.
func (s *Slot[T]) Define(ctor Constructor[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctor = ctor
}

// Config returns the slot configuration.
func (s *Slot[T]) Config() apis.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Configure replaces the slot configuration. It only affects later
// registrations; the held instance, if any, is kept.
func (s *Slot[T]) Configure(cfg apis.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Reconfigure applies opts on top of the slot configuration in one step.
func (s *Slot[T]) Reconfigure(opts ...config.Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = config.Apply(s.cfg, opts...)
}

// Type returns the consuming type.
func (s *Slot[T]) Type() reflect.Type {
	return s.t
}

// String returns "mockleton.Slot[<type>]".
func (s *Slot[T]) String() string {
	return "mockleton.Slot[" + uref.Name(s.t) + "]"
}

// construct builds a T outside the lock using a snapshot of ctor and cfg.
func (s *Slot[T]) construct(ctor Constructor[T], cfg apis.Config, args []any) (T, error) {
	var zero T
	if ctor == nil {
		if len(args) > 0 || !cfg.ZeroConstruct {
			return zero, ErrNoConstructor
		}
		rv, ok := uref.NewZero(s.t)
		if !ok {
			return zero, ErrNoConstructor
		}
		return rv.Interface().(T), nil
	}

	v, err := ctor(args...)
	if err != nil {
		return zero, fmt.Errorf("%s: construct: %w", s, err)
	}
	return check[T](any(v), cfg)
}

// check asserts v to T and applies the nil policy.
func check[T any](v any, cfg apis.Config) (T, error) {
	var zero T
	t, ok := v.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	if cfg.RejectNil && uref.IsNil(v) {
		return zero, ErrTypeMismatch
	}
	return t, nil
}
