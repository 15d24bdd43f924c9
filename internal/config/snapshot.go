// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "sync/atomic"

// Snapshot holds an atomically-swappable *Effective. It is the only
// mutable global state the config package owns: every read sees a
// complete, internally-consistent configuration, never a partially
// updated one, per the single-pointer-swap discipline used for both the
// config and dictionary snapshots.
type Snapshot struct {
	p atomic.Pointer[Effective]
}

// NewSnapshot returns a Snapshot holding eff.
func NewSnapshot(eff *Effective) *Snapshot {
	s := &Snapshot{}
	s.Store(eff)
	return s
}

// Load returns the current Effective configuration. It is safe to call
// concurrently with Store from any number of goroutines.
func (s *Snapshot) Load() *Effective { return s.p.Load() }

// Store atomically replaces the current configuration. Callers that hold
// a previously loaded *Effective keep using it unaffected; Store only
// changes what future Load calls observe.
func (s *Snapshot) Store(eff *Effective) { s.p.Store(eff) }
