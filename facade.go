// Package vbsp is the query facade (C7) for a loaded Source-engine BSP
// map: LoadMap decodes a .bsp file into the in-memory tables, and
// TraceRay/IsVisible answer swept-point spatial queries against them.
package vbsp

import (
	"sync"

	"github.com/samuelyuan/vbsp/bsp"
	"github.com/samuelyuan/vbsp/trace"
)

// Facade owns the currently loaded map behind a readers/writer lock.
// LoadMap takes the lock exclusively only for the pointer swap; TraceRay
// and IsVisible take it as a reader. The zero value is ready to use.
//
// A Facade must never be copied after first use; always share it by
// pointer. The blank sync.Mutex field exists solely so `go vet`'s
// copylocks check catches an accidental value copy, the same trick
// gaissmai-bart's routing Table uses for the same reason.
type Facade struct {
	_ [0]sync.Mutex

	mu      sync.RWMutex
	current *loadedMap

	errMu   sync.Mutex
	lastErr error
}

type loadedMap struct {
	m      *bsp.Map
	tracer *trace.Tracer
}

// LoadMap parses directory/mapName(.bsp) and, on success, atomically
// swaps it in as the active map. The parse itself runs outside the lock;
// any error leaves the previously loaded map (if any) untouched, per
// spec.md §4.2.
func (f *Facade) LoadMap(directory, mapName string) bool {
	m, err := bsp.Load(directory, mapName)
	if err != nil {
		f.recordError(err)
		return false
	}

	next := &loadedMap{m: m, tracer: trace.NewTracer(m)}

	f.mu.Lock()
	f.current = next
	f.mu.Unlock()
	f.recordError(nil)
	return true
}

// TraceRay runs a swept-point query from a to b and writes the result
// into out. mask selects which brush contents participate; 0 means
// trace.DefaultMask (CONTENTS_SOLID). TraceRay is a pure reader: it
// never mutates the facade's tables.
func (f *Facade) TraceRay(a, b trace.Vec3, mask int32, out *trace.Trace) {
	f.mu.RLock()
	cur := f.current
	f.mu.RUnlock()

	if cur == nil {
		*out = trace.Trace{Fraction: 1, EndPos: b}
		return
	}
	*out = cur.tracer.Trace(a, b, mask)
}

// IsVisible reports whether the segment a->b is unobstructed under the
// default contents mask.
func (f *Facade) IsVisible(a, b trace.Vec3) bool {
	var tr trace.Trace
	f.TraceRay(a, b, 0, &tr)
	return tr.Fraction == 1
}

// recordError stashes the error from a failed LoadMap call; spec.md §6
// only requires the last error be reportable, not part of the core
// contract.
func (f *Facade) recordError(err error) {
	f.errMu.Lock()
	f.lastErr = err
	f.errMu.Unlock()
}

// LastError returns the error from the most recent failed LoadMap call,
// or nil if the last call succeeded or none has been made.
func (f *Facade) LastError() error {
	f.errMu.Lock()
	defer f.errMu.Unlock()
	return f.lastErr
}
