package ast

import (
	"errors"
	"iter"
	"reflect"
)

// ErrReleased is the panic value raised when a handle is dereferenced after
// its arena was released or reset.
var ErrReleased = errors.New("ast: handle used after its arena was released")

// pool is a typed bump allocator that hands out pointers into
// pre-allocated chunks of T. When a chunk fills up, a new chunk is
// allocated at 1.5x the previous size. Chunks are never reused while the
// arena epoch that produced them is alive.
type pool[T any] struct {
	chunk []T
	index int
}

func newPool[T any](startLen int) *pool[T] {
	return &pool[T]{chunk: make([]T, startLen)}
}

func (p *pool[T]) make() *T {
	if p.index == len(p.chunk) {
		p.resize(0)
	}
	n := &p.chunk[p.index]
	p.index++
	return n
}

// makeSlice allocates n contiguous elements from the pool. If the current
// chunk doesn't have enough room, a chunk large enough is allocated.
func (p *pool[T]) makeSlice(n int) []T {
	if n == 0 {
		return nil
	}
	if p.index+n > len(p.chunk) {
		p.resize(n)
	}
	s := p.chunk[p.index : p.index+n : p.index+n]
	p.index += n
	return s
}

//go:noinline
func (p *pool[T]) resize(minElems int) {
	newLen := len(p.chunk) + len(p.chunk)>>1 // 1.5x growth, integer math
	if newLen < 16 {
		newLen = 16
	}
	if newLen < minElems {
		newLen = minElems
	}
	p.chunk = make([]T, newLen)
	p.index = 0
}

// Arena owns the storage of every node and list produced by one parse.
// Handles returned by it stay valid until Release or Reset is called.
//
// An Arena is not safe for concurrent allocation. Once the parser is done
// with it, the nodes are read-only and any number of goroutines may
// traverse them.
type Arena struct {
	epoch    uint32
	released bool

	// The hot node kinds get dedicated pools, everything else is looked up
	// by type.
	exprs *pool[Loc[Expression]]
	stmts *pool[Loc[Statement]]
	pats  *pool[Loc[Pattern]]
	ids   *pool[Loc[Identifier]]
	other map[reflect.Type]any
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	a := &Arena{}
	a.init()
	return a
}

func (a *Arena) init() {
	a.exprs = newPool[Loc[Expression]](1024)
	a.stmts = newPool[Loc[Statement]](256)
	a.pats = newPool[Loc[Pattern]](256)
	a.ids = newPool[Loc[Identifier]](256)
	a.other = make(map[reflect.Type]any)
}

// Release ends the arena's lifetime. Every handle it produced becomes
// invalid and dereferencing one panics with ErrReleased.
func (a *Arena) Release() {
	a.epoch++
	a.released = true
	a.exprs, a.stmts, a.pats, a.ids, a.other = nil, nil, nil, nil, nil
}

// Reset invalidates every handle produced so far and makes the arena
// usable for a new parse.
func (a *Arena) Reset() {
	a.epoch++
	a.released = false
	a.init()
}

// Released reports whether Release was called.
func (a *Arena) Released() bool {
	return a.released
}

func (a *Arena) check(epoch uint32) {
	if a.released || a.epoch != epoch {
		panic(ErrReleased)
	}
}

func poolOf[T any](a *Arena) *pool[T] {
	if a.released {
		panic(ErrReleased)
	}
	var p any
	switch any((*T)(nil)).(type) {
	case *Loc[Expression]:
		p = a.exprs
	case *Loc[Statement]:
		p = a.stmts
	case *Loc[Pattern]:
		p = a.pats
	case *Loc[Identifier]:
		p = a.ids
	default:
		t := reflect.TypeFor[T]()
		if p = a.other[t]; p == nil {
			p = newPool[T](64)
			a.other[t] = p
		}
	}
	return p.(*pool[T])
}

// place stores v in the arena and returns its address. Payloads of union
// variants are placed this way; their children are handles.
func place[T any](a *Arena, v T) *T {
	n := poolOf[T](a).make()
	*n = v
	return n
}

// Alloc stores v in the arena and returns a handle to it.
func Alloc[T any](a *Arena, v T) Ptr[T] {
	return Ptr[T]{p: place(a, v), arena: a, epoch: a.epoch}
}

// AllocList stores items in the arena, preserving their order.
func AllocList[T any](a *Arena, items ...T) List[T] {
	s := poolOf[T](a).makeSlice(len(items))
	copy(s, items)
	return List[T]{items: s, arena: a, epoch: a.epoch}
}

// CollectList stores every value of seq in the arena, preserving order.
func CollectList[T any](a *Arena, seq iter.Seq[T]) List[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	return AllocList(a, buf...)
}
