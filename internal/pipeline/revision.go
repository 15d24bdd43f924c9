// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import "sync/atomic"

// Revision is a per-document monotonically increasing counter used to
// discard a stale in-flight check: a check started against revision N
// whose document has since moved to N+1 must not publish its result
// (§5 "only the most recent revision's result is published").
type Revision struct {
	n atomic.Uint64
}

// Next increments and returns the new revision number. Called once per
// edit (didChange/didOpen/didSave).
func (r *Revision) Next() uint64 { return r.n.Add(1) }

// Current returns the latest revision number without advancing it.
func (r *Revision) Current() uint64 { return r.n.Load() }

// Stale reports whether got is behind the current revision, meaning a
// check that captured got at its start has been superseded.
func (r *Revision) Stale(got uint64) bool { return got != r.n.Load() }
