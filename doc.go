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

// Package mockleton gives any Go type singleton semantics while staying
// test-friendly: a test can register a hand-built stub or mock instead of
// being forced through the type's normal constructor.
//
// # Design
//
// Every consuming type T owns exactly one slot (slot.Slot[T]) holding zero
// or one instance of T. Go has no per-type static storage, so slots live in
// a process-wide registry keyed by reflect.Type; the registry is created
// empty and each type's slot is created the first time the type is used.
// Slots of different types are independent.
//
// A slot has two states, empty and occupied:
//
//   - Register(instance) and CreateAndRegister(args...) move an empty slot
//     to occupied. On an occupied slot both fail with ErrAlreadyRegistered,
//     whichever path created the held instance.
//   - Unregister() empties the slot. It is a no-op on an empty slot.
//   - Instance() returns the held value, or ErrNotRegistered.
//
// Register checks the offered value at run time: anything that is not a T
// fails with ErrTypeMismatch, and by default so does a nil T.
// CreateAndRegister forwards its arguments, in order, to the constructor
// bound with Define. This keeps the type's own constructor unexported while
// tests remain free to inject a substitute through Register.
//
// # Usage
//
// A consuming type binds its constructor once:
//
//	type Clock struct {
//		_ mockleton.NoCopy
//		zone string
//	}
//
//	func newClock(args ...any) (*Clock, error) {
//		zone, _ := args[0].(string)
//		return &Clock{zone: zone}, nil
//	}
//
//	var clocks = mockleton.Define(newClock)
//
// Define records the binding per type and returns a stateless Handle, so
// clocks keeps reaching the live slot after SetRegistry or a registry Reset.
//
// Production code registers and reads it:
//
//	_ = clocks.CreateAndRegister("UTC")
//	c := clocks.MustInstance()
//
// while a test swaps in its own instance:
//
//	mockletontest.Use[*Clock](t, &Clock{zone: "test"})
//
// # Copies
//
// Go cannot forbid copying a value. Consuming types are expected to be
// shared by pointer and may carry a blank NoCopy field so go vet flags
// accidental copies.
//
// # Concurrency
//
// Each slot serializes its operations with a mutex. The registry and the
// global configuration are read lock-free from an atomically published
// snapshot; writers (SetConfig, SetRegistry) take a short build mutex.
package mockleton
