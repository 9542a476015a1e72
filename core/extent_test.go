// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	qt "github.com/frankban/quicktest"
)

func TestFramebufferExtent(t *testing.T) {
	c := qt.New(t)

	fe := core.NewFramebufferExtent(800, 600)
	c.Assert(fe.Load(), qt.Equals, gfx.Extent2D{Width: 800, Height: 600})

	fe.Store(gfx.UndefinedExtent, 1)
	c.Assert(fe.Load(), qt.Equals, gfx.Extent2D{Width: gfx.UndefinedExtent, Height: 1})

	fe.Store(0, 0)
	c.Assert(fe.Load(), qt.Equals, gfx.Extent2D{})
}

func TestFramebufferExtentConcurrent(t *testing.T) {
	c := qt.New(t)

	fe := core.NewFramebufferExtent(1, 1)

	var wg sync.WaitGroup
	for w := uint32(1); w <= 8; w++ {
		wg.Add(1)
		go func(w uint32) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				fe.Store(w, w*10)
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			got := fe.Load()
			c.Assert(got.Height, qt.Equals, got.Width*10)
			return
		default:
			// Width and height always come from the same Store.
			got := fe.Load()
			if got.Width != 1 {
				c.Assert(got.Height, qt.Equals, got.Width*10)
			}
		}
	}
}
