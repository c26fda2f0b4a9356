// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"runtime"
	"sync"

	"github.com/gogpu/bindless"
)

// WorkgroupSize is the square workgroup edge shared with the compute
// shaders: every dispatch covers groups of 16x16 invocations.
const WorkgroupSize = 16

// Kernel is one compute invocation, called with the global invocation
// coordinates.
type Kernel func(x, y uint32)

// Dispatch runs kernel over groupsX*groupsY workgroups of
// WorkgroupSize^2 invocations, the CPU equivalent of a 2D compute
// dispatch. Workgroup rows are spread across GOMAXPROCS goroutines; the
// kernel must tolerate concurrent invocations on distinct coordinates.
func Dispatch(groupsX, groupsY uint32, kernel Kernel) {
	if groupsX == 0 || groupsY == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if int(groupsY) < workers {
		workers = int(groupsY)
	}

	rows := make(chan uint32, groupsY)
	for gy := uint32(0); gy < groupsY; gy++ {
		rows <- gy
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gy := range rows {
				for gx := uint32(0); gx < groupsX; gx++ {
					for ly := uint32(0); ly < WorkgroupSize; ly++ {
						for lx := uint32(0); lx < WorkgroupSize; lx++ {
							kernel(gx*WorkgroupSize+lx, gy*WorkgroupSize+ly)
						}
					}
				}
			}
		}()
	}
	wg.Wait()
}

// GroupsFor returns the workgroup count covering extent pixels, rounding
// up so the last partial workgroup is included.
func GroupsFor(extent uint32) uint32 {
	return (extent + WorkgroupSize - 1) / WorkgroupSize
}

// StorageTarget is the write side of a compute pass output: a bindless
// storage image or anything standing in for one.
type StorageTarget interface {
	Extent() (width, height uint32)
	Store(x, y uint32, c bindless.Vec4)
}

// FrameWriter writes shaded pixels into a storage target, discarding
// invocations outside the extent. Dispatches round workgroup counts up,
// so edge workgroups always produce some out-of-bounds invocations;
// those terminate silently, exactly like a guarded storage-image write.
type FrameWriter struct {
	Target StorageTarget
}

// Write stores c at (x, y) if the coordinate is inside the target.
func (w FrameWriter) Write(x, y uint32, c bindless.Vec4) {
	width, height := w.Target.Extent()
	if x >= width || y >= height {
		return
	}
	w.Target.Store(x, y, c)
}
