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

package mockleton

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/pr0ggy/mockleton/apis"
	"github.com/pr0ggy/mockleton/config"
	"github.com/pr0ggy/mockleton/registry"
	"github.com/pr0ggy/mockleton/slot"
)

// init initializes the global state.
func init() {
	st.Store(&state{cfg: config.DefaultConfig(), reg: registry.New()})
}

// Errors reported by slot operations. See package slot.
var (
	ErrAlreadyRegistered = slot.ErrAlreadyRegistered
	ErrTypeMismatch      = slot.ErrTypeMismatch
	ErrNotRegistered     = slot.ErrNotRegistered
	ErrNoConstructor     = slot.ErrNoConstructor
)

// Constructor builds a new instance of T from positional arguments.
type Constructor[T any] = slot.Constructor[T]

// For returns the slot of T, creating it on first use with the global
// configuration plus whatever Define bound for T.
func For[T any]() *slot.Slot[T] {
	t := reflect.TypeFor[T]()
	s := st.Load()

	if found, ok := s.reg.Lookup(t); ok {
		return cast[T](found)
	}
	ctor, opts := lookupDefinition[T](t)
	actual, _, err := s.reg.LoadOrStore(t, slot.New[T](config.Apply(s.cfg, opts...), ctor))
	if err != nil {
		panic(fmt.Errorf("mockleton: slot for %v: %w", t, err))
	}
	return cast[T](actual)
}

// Define binds ctor as the constructor of T. Options, if any, are applied on
// top of the slot configuration; options from earlier definitions are kept,
// the last ctor wins.
//
// The binding is kept outside the registry, so slots recreated after
// SetRegistry or Registry().Reset() get it too.
func Define[T any](ctor slot.Constructor[T], opts ...config.Option) Handle[T] {
	t := reflect.TypeFor[T]()
	s := For[T]()

	// Table and live slot change under one lock.
	defMu.Lock()
	defer defMu.Unlock()

	d := definitions[t]
	d.ctor = ctor
	d.opts = append(d.opts[:len(d.opts):len(d.opts)], opts...)
	definitions[t] = d

	s.Define(ctor)
	if len(opts) > 0 {
		s.Reconfigure(opts...)
	}
	return Handle[T]{}
}

// Undefine drops the definition of T and unbinds the constructor from its
// current slot. Options already applied to that slot are kept.
func Undefine[T any]() {
	s := For[T]()

	defMu.Lock()
	defer defMu.Unlock()

	delete(definitions, reflect.TypeFor[T]())
	s.Define(nil)
}

// Register adopts instance as the singleton of T.
func Register[T any](instance any) error {
	return For[T]().Register(instance)
}

// CreateAndRegister builds a T from args with T's constructor and adopts it.
func CreateAndRegister[T any](args ...any) error {
	return For[T]().CreateAndRegister(args...)
}

// Instance returns the singleton of T.
func Instance[T any]() (T, error) {
	return For[T]().Instance()
}

// MustInstance returns the singleton of T and panics if there is none.
func MustInstance[T any]() T {
	return For[T]().MustInstance()
}

// Registered reports whether T currently has a singleton.
func Registered[T any]() bool {
	return For[T]().Registered()
}

// Unregister clears the singleton of T. It is a no-op when there is none.
func Unregister[T any]() {
	For[T]().Unregister()
}

// UnregisterAll clears the singleton of every known type.
func UnregisterAll() {
	st.Load().reg.UnregisterAll()
}

// Config returns the configuration applied to newly created slots.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the configuration applied to slots created from now on.
// Existing slots keep their configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: old.reg})
}

// Registry returns the global slot registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global slot registry. A nil reg is ignored.
// Slots of the previous registry are not migrated.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: reg})
}

// NoCopy may be added to a consuming type as a blank field so that go vet's
// copylocks check reports copies of it:
//
//	type Clock struct {
//		_ mockleton.NoCopy
//	}
//
// Do not embed it: the Lock and Unlock methods would be promoted and the type
// would satisfy sync.Locker. A singleton must only be shared by pointer.
type NoCopy struct{}

// Lock is a no-op used by go vet.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by go vet.
func (*NoCopy) Unlock() {}

// cast converts a registry slot back to its typed form.
func cast[T any](s apis.Slot) *slot.Slot[T] {
	typed, ok := s.(*slot.Slot[T])
	if !ok {
		panic(fmt.Errorf("mockleton: registry holds %T for %v", s, reflect.TypeFor[T]()))
	}
	return typed
}

// lookupDefinition returns the constructor and options bound to t by Define.
func lookupDefinition[T any](t reflect.Type) (slot.Constructor[T], []config.Option) {
	defMu.Lock()
	defer defMu.Unlock()

	d, ok := definitions[t]
	if !ok {
		return nil, nil
	}
	ctor, _ := d.ctor.(slot.Constructor[T])
	return ctor, d.opts
}

// definition is what Define bound to a type.
type definition struct {
	// ctor is a slot.Constructor[T] for the keyed T, possibly nil.
	ctor any
	// opts are applied on top of the global config when the slot is created.
	opts []config.Option
}

// defMu guards definitions.
var defMu sync.Mutex

// definitions outlive registry swaps and resets.
var definitions = map[reflect.Type]definition{}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published; writers create a new state and swap it atomically.
type state struct {
	// cfg is the configuration for new slots.
	cfg apis.Config
	// reg is the slot registry.
	reg apis.Registry
}
