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

// Slot is the type-erased view of a singleton slot, as stored in a Registry.
// Typed access lives on the concrete implementation (see package slot).
type Slot interface {
	// Type returns the consuming type the slot belongs to.
	Type() reflect.Type
	// Registered reports whether the slot currently holds an instance.
	Registered() bool
	// Unregister clears the slot. Clearing an empty slot is a no-op.
	Unregister()
	// String returns a diagnostic name, e.g. "mockleton.Slot[*pkg.Type]".
	String() string
}
