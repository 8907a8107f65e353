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

package apis

import "reflect"

// Registry holds one Slot per consuming type.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// LoadOrStore returns the slot registered for t if present (loaded=true),
	// otherwise stores s and returns it. s.Type() must equal t.
	LoadOrStore(t reflect.Type, s Slot) (actual Slot, loaded bool, err error)
	// Lookup returns the slot for a type if present.
	Lookup(t reflect.Type) (Slot, bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
	// Count returns the number of known slots.
	Count() int
	// UnregisterAll empties every known slot. The slots themselves are kept.
	UnregisterAll()
	// Reset drops all slots.
	Reset()
}

// Entry is a single slot in a Registry snapshot.
type Entry struct {
	// Type is the consuming type.
	Type reflect.Type
	// Name is the diagnostic name of the consuming type.
	Name string
	// Registered reports whether the slot held an instance at snapshot time.
	Registered bool
}
