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

// Config carries slot behavior knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// RejectNil controls whether nil values (nil pointer, map, slice, func,
	// chan or interface) are refused by registration even when their static
	// type matches. A refused value yields a type mismatch.
	RejectNil bool

	// ZeroConstruct allows construct-and-register without a bound constructor
	// and without arguments, when the consuming type is a pointer to a struct.
	// The slot then adopts a freshly allocated zero value.
	ZeroConstruct bool
}
