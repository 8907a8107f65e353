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

package config

import (
	"github.com/pr0ggy/mockleton/apis"
)

const (
	// DefaultRejectNil represents the default for RejectNil.
	// When true, nil pointers and other nil values are never adopted.
	DefaultRejectNil = true
	// DefaultZeroConstruct represents the default for ZeroConstruct.
	// When true, pointer-to-struct types need no constructor for an argument-less
	// construct-and-register.
	DefaultZeroConstruct = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	return Apply(DefaultConfig(), opts...)
}

// Apply returns base with opts applied in order.
func Apply(base apis.Config, opts ...Option) apis.Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		RejectNil:     DefaultRejectNil,
		ZeroConstruct: DefaultZeroConstruct,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithRejectNil sets the RejectNil option.
func WithRejectNil(reject bool) Option {
	return func(c *apis.Config) {
		c.RejectNil = reject
	}
}

// WithZeroConstruct sets the ZeroConstruct option.
func WithZeroConstruct(allow bool) Option {
	return func(c *apis.Config) {
		c.ZeroConstruct = allow
	}
}
