package batch

import (
	"sync"

	"github.com/cwbudde/algo-math3d"
)

// Pool provides sync.Pool-based Vec3s reuse for hot loops.
type Pool[T math3d.Float] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T math3d.Float]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Vec3s[T]{}
			},
		},
	}
}

// Get returns n zero vectors. Callers must return them via Put when done.
func (p *Pool[T]) Get(n int) *Vec3s[T] {
	v := p.pool.Get().(*Vec3s[T])
	v.Resize(n)
	v.Zero()
	return v
}

// Put returns v to the pool. The caller must not use v afterwards.
func (p *Pool[T]) Put(v *Vec3s[T]) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}

var (
	scratch32 = NewPool[float32]()
	scratch64 = NewPool[float64]()
)
