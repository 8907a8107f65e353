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

// Package mockletontest provides test helpers for code built on mockleton.
package mockletontest

import (
	"testing"

	"github.com/pr0ggy/mockleton"
)

// Use registers instance as the singleton of T for the duration of the test.
// The slot is emptied when the test and its subtests finish.
func Use[T any](tb testing.TB, instance T) T {
	tb.Helper()

	s := mockleton.For[T]()
	if err := s.Register(instance); err != nil {
		tb.Fatalf("mockletontest: register %s: %v", s, err)
		return instance
	}
	tb.Cleanup(s.Unregister)
	return instance
}

// UseNew constructs the singleton of T from args with T's bound constructor
// and registers it for the duration of the test.
func UseNew[T any](tb testing.TB, args ...any) T {
	tb.Helper()

	s := mockleton.For[T]()
	if err := s.CreateAndRegister(args...); err != nil {
		tb.Fatalf("mockletontest: create %s: %v", s, err)
		var zero T
		return zero
	}
	tb.Cleanup(s.Unregister)
	return s.MustInstance()
}

// Reset empties every slot now and again when the test finishes.
func Reset(tb testing.TB) {
	tb.Helper()

	mockleton.UnregisterAll()
	tb.Cleanup(mockleton.UnregisterAll)
}
