// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync"
	"testing"

	"github.com/gogpu/bindless"
)

func TestDispatch_CoversEveryInvocationOnce(t *testing.T) {
	const gx, gy = 3, 2
	w := gx * WorkgroupSize
	h := gy * WorkgroupSize

	var mu sync.Mutex
	counts := make([]int, w*h)

	Dispatch(gx, gy, func(x, y uint32) {
		mu.Lock()
		counts[int(y)*w+int(x)]++
		mu.Unlock()
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("invocation (%d,%d) ran %d times, want 1", i%w, i/w, c)
		}
	}
}

func TestDispatch_ZeroGroups(t *testing.T) {
	ran := false
	Dispatch(0, 5, func(x, y uint32) { ran = true })
	Dispatch(5, 0, func(x, y uint32) { ran = true })
	if ran {
		t.Error("kernel ran with zero workgroups")
	}
}

func TestGroupsFor(t *testing.T) {
	tests := []struct {
		extent uint32
		want   uint32
	}{
		{0, 0},
		{1, 1},
		{16, 1},
		{17, 2},
		{512, 32},
		{513, 33},
	}
	for _, tt := range tests {
		if got := GroupsFor(tt.extent); got != tt.want {
			t.Errorf("GroupsFor(%d) = %d, want %d", tt.extent, got, tt.want)
		}
	}
}

// countingTarget records stores to verify bounds behavior.
type countingTarget struct {
	mu     sync.Mutex
	w, h   uint32
	stores int
}

func (c *countingTarget) Extent() (uint32, uint32) { return c.w, c.h }

func (c *countingTarget) Store(x, y uint32, _ bindless.Vec4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if x >= c.w || y >= c.h {
		panic("store out of bounds")
	}
	c.stores++
}

func TestFrameWriter_DiscardsOutOfBounds(t *testing.T) {
	// A 20x20 target needs 2x2 workgroups; 44% of invocations fall
	// outside and must be dropped before reaching the target.
	target := &countingTarget{w: 20, h: 20}
	writer := FrameWriter{Target: target}

	Dispatch(GroupsFor(target.w), GroupsFor(target.h), func(x, y uint32) {
		writer.Write(x, y, bindless.V4(1, 1, 1, 1))
	})

	if target.stores != 400 {
		t.Errorf("stores = %d, want exactly 400 in-bounds writes", target.stores)
	}
}
