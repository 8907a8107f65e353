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

package reflect

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// nameCache caches diagnostic names by type.
var nameCache sync.Map // key: reflect.Type, val: string

// Name returns a short, stable diagnostic name for t: "pkg.Type" for named
// types, one "*" per pointer level, and t.String() for anything unnamed.
// Generic instantiation parameters are stripped: "pkg.G[int]" -> "pkg.G".
func Name(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := nameCache.Load(t); ok {
		return v.(string)
	}

	base, depth := t, 0
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
		depth++
	}

	var name string
	switch {
	case base.Name() == "":
		name = t.String()
	case base.PkgPath() == "":
		name = strings.Repeat("*", depth) + base.Name()
	default:
		name = strings.Repeat("*", depth) + path.Base(base.PkgPath()) + "." + stripTypeParams(base.Name())
	}

	nameCache.Store(t, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// IsNil reports whether v is nil or holds a nil pointer, map, slice, func,
// chan, interface or unsafe pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// NewZero allocates a zero value of the struct t points to.
// It returns false unless t is a pointer to a struct.
func NewZero(t reflect.Type) (reflect.Value, bool) {
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return reflect.New(t.Elem()), true
}
