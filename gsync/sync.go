// Package gsync provides typed wrappers around the synchronization
// primitives of package sync and sync/atomic.
package gsync

import (
	"sync"
	"sync/atomic"
)

// AtomicPointer enables type-safe atomic operations on pointer values.
// The zero value holds nil.
type AtomicPointer[T any] struct{ ptr atomic.Pointer[T] }

func MakeAtomicPointer[T any](value *T) *AtomicPointer[T] {
	p := &AtomicPointer[T]{}
	p.ptr.Store(value)
	return p
}

func (p *AtomicPointer[T]) CompareAndSwap(old, new *T) (swapped bool) {
	return p.ptr.CompareAndSwap(old, new)
}

func (p *AtomicPointer[T]) Load() *T {
	return p.ptr.Load()
}

// LoadOrInit returns the stored value, installing init() first if the
// pointer is nil. Concurrent callers agree on a single winner.
func (p *AtomicPointer[T]) LoadOrInit(init func() *T) *T {
	if v := p.ptr.Load(); v != nil {
		return v
	}
	p.ptr.CompareAndSwap(nil, init())
	return p.ptr.Load()
}

func (p *AtomicPointer[T]) Store(value *T) {
	p.ptr.Store(value)
}

func (p *AtomicPointer[T]) Swap(new *T) (old *T) {
	return p.ptr.Swap(new)
}

// Map is a type-safe version of sync.Map.
type Map[K comparable, V any] sync.Map

func (m *Map[K, V]) Delete(key K) {
	(*sync.Map)(m).Delete(key)
}

func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := (*sync.Map)(m).Load(key)
	if ok {
		return v.(V), true
	}
	return
}

func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := (*sync.Map)(m).LoadOrStore(key, value)
	return v.(V), loaded
}

func (m *Map[K, V]) Range(f func(K, V) bool) {
	(*sync.Map)(m).Range(func(k any, v any) bool {
		return f(k.(K), v.(V))
	})
}

func (m *Map[K, V]) Store(key K, value V) {
	(*sync.Map)(m).Store(key, value)
}

// Len counts the entries. It is linear in the size of the map.
func (m *Map[K, V]) Len() (n int) {
	(*sync.Map)(m).Range(func(any, any) bool {
		n++
		return true
	})
	return
}

// Pool is a type-safe version of sync.Pool.
//
// New allocates a fresh value. Reset, if set, is applied to every value
// handed back through Put.
type Pool[T any] struct {
	New      func() *T
	Reset    func(*T)
	syncPool AtomicPointer[sync.Pool]
}

func (p *Pool[T]) getSyncPool() *sync.Pool {
	return p.syncPool.LoadOrInit(func() *sync.Pool {
		return &sync.Pool{
			New: func() any {
				return p.New()
			},
		}
	})
}

func (p *Pool[T]) Get() *T {
	return p.getSyncPool().Get().(*T)
}

func (p *Pool[T]) Put(x *T) {
	if p.Reset != nil {
		p.Reset(x)
	}
	p.getSyncPool().Put(x)
}
