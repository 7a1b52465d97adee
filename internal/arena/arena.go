package arena

import (
	"errors"
	"reflect"

	"github.com/google/uuid"
)

// ErrExhausted names the out-of-memory condition of spec.md §4.A. No
// function in this package returns it: Alloc and its helpers have no error
// result, and a failed allocation is a fatal Go runtime error.
var ErrExhausted = errors.New("arena: allocation exhausted available memory")

const defaultChunkItems = 256

// Arena is a bump allocator scoped to a single source file. Every value
// allocated through it is owned exclusively by it: there is no per-value
// free, and the whole set becomes eligible for garbage collection together
// once the Arena itself becomes unreachable.
//
// Arena deliberately stores each type T in its own typed, fixed-capacity
// Go slice chunk rather than behind unsafe.Pointer casts over a raw byte
// buffer: a byte-backed bump allocator cannot be made GC-safe in Go without
// unsafe tricks the runtime does not support for pointer-containing types
// (strings, interfaces, slices of pointers — exactly what AST nodes are
// made of). Allocating from typed slices gets the same "no individual free,
// stable addresses until the arena is dropped, no internal fragmentation
// across types" properties while staying entirely within safe Go.
//
// Not safe for concurrent allocation; spec.md §5 scopes one Arena to one
// goroutine/file.
type Arena struct {
	id         uuid.UUID
	chunkItems int
	pools      map[reflect.Type]any
	interner   *Interner
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithChunkSize sets how many items of a given type each backing chunk
// holds before a new chunk is grown.
func WithChunkSize(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.chunkItems = n
		}
	}
}

// WithInterner supplies a shared Interner, e.g. when the caller wants atoms
// deduplicated across multiple files instead of per-arena (spec.md §9).
func WithInterner(i *Interner) Option {
	return func(a *Arena) { a.interner = i }
}

// New creates an empty Arena.
func New(opts ...Option) *Arena {
	a := &Arena{id: uuid.New(), chunkItems: defaultChunkItems, pools: make(map[reflect.Type]any)}
	for _, opt := range opts {
		opt(a)
	}
	if a.interner == nil {
		a.interner = NewInterner()
	}
	return a
}

// ID uniquely identifies this arena instance. Parser.Parse logs it on every
// call (zap.String("arena_id", ...)) so log lines from a batch of files
// parsed concurrently, each with its own arena, can be told apart; it plays
// no role in equality, hashing, or any core contract.
func (a *Arena) ID() uuid.UUID { return a.id }

// Interner returns the atom interner scoped to this arena.
func (a *Arena) Interner() *Interner { return a.interner }

type typedPool[T any] struct {
	chunkItems int
	chunks     [][]T
	offset     int
}

func (p *typedPool[T]) alloc() *T {
	if len(p.chunks) == 0 || p.offset == len(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]T, p.chunkItems))
		p.offset = 0
	}
	cur := p.chunks[len(p.chunks)-1]
	item := &cur[p.offset]
	p.offset++
	return item
}

func poolFor[T any](a *Arena) *typedPool[T] {
	var zero T
	key := reflect.TypeOf(zero)
	if existing, ok := a.pools[key]; ok {
		return existing.(*typedPool[T])
	}
	p := &typedPool[T]{chunkItems: a.chunkItems}
	a.pools[key] = p
	return p
}

// Alloc returns a pointer to a freshly zero-valued T, owned by a. The
// pointer remains valid for the entire lifetime of a.
func Alloc[T any](a *Arena) *T {
	return poolFor[T](a).alloc()
}

// AllocSlice returns a fixed-length slice of n zero-valued T, or nil when
// n <= 0. The slice is an ordinary Go allocation; a is not consulted.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	return out
}

// Vec is a growing, arena-scoped sequence (spec.md §4.A's "alloc_vec").
// Go slices already manage their own growth safely; Vec exists to mark the
// ownership contract at call sites that accumulate node lists (e.g. a
// parser building up a statement body) rather than to reimplement growth.
type Vec[T any] struct {
	items []T
}

// NewVec creates an empty Vec scoped to a (kept as a parameter to document
// ownership at the call site even though the backing slice grows on its
// own).
func NewVec[T any](a *Arena) *Vec[T] {
	_ = a
	return &Vec[T]{}
}

// Push appends an item.
func (v *Vec[T]) Push(item T) { v.items = append(v.items, item) }

// Items returns the accumulated items.
func (v *Vec[T]) Items() []T { return v.items }

// Len returns the number of accumulated items.
func (v *Vec[T]) Len() int { return len(v.items) }
