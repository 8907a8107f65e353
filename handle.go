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
	"github.com/pr0ggy/mockleton/slot"
)

// Handle gives access to the slot of T through the current registry.
// It holds no state, so a Handle kept in a package variable keeps working
// after SetRegistry or Registry().Reset().
type Handle[T any] struct{}

// Slot returns the slot of T in the current registry.
func (Handle[T]) Slot() *slot.Slot[T] {
	return For[T]()
}

// Register adopts instance as the singleton of T.
func (Handle[T]) Register(instance any) error {
	return For[T]().Register(instance)
}

// CreateAndRegister builds a T from args with T's constructor and adopts it.
func (Handle[T]) CreateAndRegister(args ...any) error {
	return For[T]().CreateAndRegister(args...)
}

// Instance returns the singleton of T.
func (Handle[T]) Instance() (T, error) {
	return For[T]().Instance()
}

// MustInstance returns the singleton of T and panics if there is none.
func (Handle[T]) MustInstance() T {
	return For[T]().MustInstance()
}

// Registered reports whether T currently has a singleton.
func (Handle[T]) Registered() bool {
	return For[T]().Registered()
}

// Unregister clears the singleton of T.
func (Handle[T]) Unregister() {
	For[T]().Unregister()
}

// String returns the diagnostic name of T's slot.
func (Handle[T]) String() string {
	return For[T]().String()
}
