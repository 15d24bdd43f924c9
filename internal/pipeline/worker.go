// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds concurrent CPU-bound check execution to roughly the
// number of available cores, so the single-threaded LSP event loop stays
// responsive while several documents are checked in parallel (§5).
type WorkerPool struct {
	sem *semaphore.Weighted
}

// NewWorkerPool returns a pool sized to runtime.GOMAXPROCS(0), or n if
// n > 0.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool{sem: semaphore.NewWeighted(int64(n))}
}

// Run acquires a slot, calls fn, and releases the slot. It returns
// ctx.Err() without calling fn if ctx is cancelled before a slot frees
// up.
func (p *WorkerPool) Run(ctx context.Context, fn func(context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn(ctx)
}
