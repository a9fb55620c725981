// Copyright 2026 go-rbd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbd

import (
	"github.com/ajroetker/go-rbd/comb"
	"github.com/ajroetker/go-rbd/lane"
)

// Option configures a single evaluation call.
type Option func(*config)

type config struct {
	backend       lane.Backend
	pinned        bool
	combs         *comb.Table
	unreliability bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBackend pins the evaluation to a specific lane backend instead of the
// detected best one. Pinning a backend beyond the detected CPU capability
// fails with ErrBackendUnavailable.
func WithBackend(be lane.Backend) Option {
	return func(c *config) {
		c.backend = be
		c.pinned = true
	}
}

// WithCombinations makes KooNGeneric use the combinatorial-enumeration
// backend over the given pre-enumerated table instead of the recursive
// decomposition. The table must have been built for the same (n, k).
func WithCombinations(t *comb.Table) Option {
	return func(c *config) {
		c.combs = t
	}
}

// WithUnreliability makes KooNIdentical evaluate through the failure-side
// series regardless of which side has fewer summands. The result is still
// the block reliability.
func WithUnreliability() Option {
	return func(c *config) {
		c.unreliability = true
	}
}
