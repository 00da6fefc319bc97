package main

import (
	"fmt"
	"image"
)

type ResourceState int

const (
	ResourceLoading ResourceState = iota
	ResourceReady
	ResourceFailed
)

// LoadFunc resolves a named resource to a decoded image.
type LoadFunc func(name string) (image.Image, error)

// ResourceHandle is an asynchronously loading image with a fallback.
// Once the load resolves, Image never returns nil: a failed load is
// substituted with the fallback exactly once and stays that way.
type ResourceHandle struct {
	Name string

	state    ResourceState
	img      image.Image
	fallback image.Image
}

func (h *ResourceHandle) State() ResourceState {
	return h.state
}

func (h *ResourceHandle) Image() image.Image {
	if h.state == ResourceReady {
		return h.img
	}
	return h.fallback
}

type loadResult struct {
	index int
	img   image.Image
	err   error
}

// ResourceSet loads a batch of named images off the tick loop and
// hands results over through a channel drained by Poll.
type ResourceSet struct {
	handles []*ResourceHandle
	results chan loadResult
	pending int
	total   int
}

func LoadResources(names []string, load LoadFunc, fallback image.Image) *ResourceSet {
	rs := &ResourceSet{
		results: make(chan loadResult, len(names)),
		pending: len(names),
		total:   len(names),
	}

	for _, name := range names {
		rs.handles = append(rs.handles, &ResourceHandle{
			Name:     name,
			fallback: fallback,
		})
	}

	for i, name := range names {
		go func() {
			img, err := load(name)
			if err == nil && img == nil {
				err = fmt.Errorf("loader returned no image for %q", name)
			}
			rs.results <- loadResult{index: i, img: img, err: err}
		}()
	}

	return rs
}

// Poll applies finished loads without blocking. Call once per tick.
func (rs *ResourceSet) Poll() {
	for {
		select {
		case result := <-rs.results:
			handle := rs.handles[result.index]

			if result.err != nil {
				ErrorLogger.Printf("failed to load %q : %v", handle.Name, result.err)
				handle.state = ResourceFailed
			} else {
				handle.img = result.img
				handle.state = ResourceReady
			}

			rs.pending--
		default:
			return
		}
	}
}

// Done reports whether every load has resolved, successfully or not.
func (rs *ResourceSet) Done() bool {
	return rs.pending <= 0
}

func (rs *ResourceSet) Progress() float64 {
	if rs.total <= 0 {
		return 1
	}
	return f64(rs.total-rs.pending) / f64(rs.total)
}

func (rs *ResourceSet) Handle(name string) *ResourceHandle {
	for _, h := range rs.handles {
		if h.Name == name {
			return h
		}
	}
	return nil
}
