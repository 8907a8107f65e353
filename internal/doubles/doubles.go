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

// Package doubles holds small consuming types used to exercise mockleton.
package doubles

import (
	"reflect"
	"slices"

	"github.com/pr0ggy/mockleton"
	"github.com/pr0ggy/mockleton/slot"
)

// NullableSingleton is a singleton whose slot may be forcibly cleared.
type NullableSingleton struct {
	_ mockleton.NoCopy
	// Label distinguishes hand-built instances in tests.
	Label string
}

// NullableSingletonSlot returns the slot of NullableSingleton.
func NullableSingletonSlot() *slot.Slot[*NullableSingleton] {
	return mockleton.For[*NullableSingleton]()
}

// UnsetNullableSingleton clears the NullableSingleton slot.
func UnsetNullableSingleton() {
	NullableSingletonSlot().Unregister()
}

// ConstructorArgumentSpy records the arguments its constructor received.
// It is only constructed through its slot.
type ConstructorArgumentSpy struct {
	_ mockleton.NoCopy
	received []any
}

func newConstructorArgumentSpy(args ...any) (*ConstructorArgumentSpy, error) {
	return &ConstructorArgumentSpy{received: args}, nil
}

// Spies is the ConstructorArgumentSpy singleton.
var Spies = mockleton.Define(newConstructorArgumentSpy)

// ConstructorArgumentSpySlot returns the current slot of ConstructorArgumentSpy.
func ConstructorArgumentSpySlot() *slot.Slot[*ConstructorArgumentSpy] {
	return Spies.Slot()
}

// DidReceiveConstructionArgs reports whether the constructor received exactly
// args, positionally.
func (s *ConstructorArgumentSpy) DidReceiveConstructionArgs(args ...any) bool {
	return slices.EqualFunc(args, s.received, func(a, b any) bool {
		return reflect.DeepEqual(a, b)
	})
}
