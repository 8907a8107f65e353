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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/pr0ggy/mockleton/apis"
	uref "github.com/pr0ggy/mockleton/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("mockleton(registry): nil reflect.Type provided")
	// ErrNilSlot is returned when a nil slot is provided.
	ErrNilSlot = errors.New("mockleton(registry): nil slot provided")
	// ErrSlotTypeMismatch indicates an attempt to store a slot under a type
	// other than its own consuming type.
	ErrSlotTypeMismatch = errors.New("mockleton(registry): slot type does not match key")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its slot.
	m sync.Map // map[reflect.Type]apis.Slot
	// count tracks the number of stored slots.
	count int
}

// LoadOrStore returns the slot already stored for t, or stores s.
func (r *registry) LoadOrStore(t reflect.Type, s apis.Slot) (apis.Slot, bool, error) {
	// Validate inputs early.
	if t == nil {
		return nil, false, ErrNilType
	}
	if s == nil {
		return nil, false, ErrNilSlot
	}
	if s.Type() != t {
		return nil, false, ErrSlotTypeMismatch
	}

	// Fast read path without locking.
	if old, ok := r.m.Load(t); ok {
		return old.(apis.Slot), true, nil
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		return old.(apis.Slot), true, nil
	}

	r.m.Store(t, s)
	r.count++
	return s, false, nil
}

// Lookup returns the slot for a type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Slot, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Slot), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		t := key.(reflect.Type)
		entries = append(entries, apis.Entry{
			Type:       t,
			Name:       uref.Name(t),
			Registered: value.(apis.Slot).Registered(),
		})
		return true
	})
	return entries
}

// Count returns the number of stored slots.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// UnregisterAll empties every stored slot.
func (r *registry) UnregisterAll() {
	r.m.Range(func(_, value any) bool {
		value.(apis.Slot).Unregister()
		return true
	})
}

// Reset drops all stored slots. Slots already handed out keep working but
// are no longer reachable through the registry.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
