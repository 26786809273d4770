package ast

import (
	"iter"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ptr is a copyable, non-owning handle to a value stored in an Arena.
// The zero Ptr refers to nothing and stands for an absent optional child.
type Ptr[T any] struct {
	p     *T
	arena *Arena
	epoch uint32
}

// IsNil reports whether the handle refers to nothing.
func (p Ptr[T]) IsNil() bool { return p.p == nil }

// Get dereferences the handle. It returns nil for the zero handle and
// panics with ErrReleased if the owning arena is gone.
func (p Ptr[T]) Get() *T {
	if p.p == nil {
		return nil
	}
	p.arena.check(p.epoch)
	return p.p
}

// Equal compares the referenced values, not the handles.
func (p Ptr[T]) Equal(o Ptr[T]) bool {
	if p.p == nil || o.p == nil {
		return p.p == nil && o.p == nil
	}
	return cmp.Equal(*p.Get(), *o.Get(), equalOpts...)
}

// List is an arena-backed ordered sequence. The zero List is empty.
type List[T any] struct {
	items []T
	arena *Arena
	epoch uint32
}

func (l List[T]) slice() []T {
	if l.arena != nil {
		l.arena.check(l.epoch)
	}
	return l.items
}

// Len returns the number of items.
func (l List[T]) Len() int { return len(l.slice()) }

// At returns the i-th item.
func (l List[T]) At(i int) T { return l.slice()[i] }

// All iterates over the items in source order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the items in source order.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the items that outlives the arena.
func (l List[T]) Slice() []T {
	return append([]T(nil), l.slice()...)
}

// Equal compares two lists item by item.
func (l List[T]) Equal(o List[T]) bool {
	return cmp.Equal(l.slice(), o.slice(), equalOpts...)
}

var equalOpts = []cmp.Option{cmpopts.EquateEmpty()}

// Equal reports whether two nodes, handles or lists are structurally equal.
// Handles compare by the values they reference, so trees built in different
// arenas compare equal when their shapes, payloads and ranges match.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts...)
}
