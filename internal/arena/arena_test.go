package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdy1/go-oxc-core/internal/arena"
)

type probe struct {
	A int
	B string
}

func TestAllocReturnsStableAddresses(t *testing.T) {
	a := arena.New(arena.WithChunkSize(4))

	var ptrs []*probe
	for i := 0; i < 20; i++ {
		p := arena.Alloc[probe](a)
		p.A = i
		ptrs = append(ptrs, p)
	}

	for i, p := range ptrs {
		assert.Equal(t, i, p.A, "address for item %d must remain stable across further allocations", i)
	}
}

func TestAllocZerosMemory(t *testing.T) {
	a := arena.New()
	p := arena.Alloc[probe](a)
	assert.Equal(t, 0, p.A)
	assert.Equal(t, "", p.B)
}

func TestVecGrows(t *testing.T) {
	a := arena.New()
	v := arena.NewVec[int](a)
	for i := 0; i < 5; i++ {
		v.Push(i)
	}
	require.Equal(t, 5, v.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Items())
}

func TestInternerIdentity(t *testing.T) {
	in := arena.NewInterner()
	a1 := in.Intern("foo")
	a2 := in.Intern("foo")
	b := in.Intern("bar")

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(b))
	assert.Equal(t, 2, in.Len())

	text, ok := in.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "foo", text)
}

func TestSpanContains(t *testing.T) {
	parent := arena.Span{Start: 0, End: 10}
	child := arena.Span{Start: 2, End: 5}
	outside := arena.Span{Start: 5, End: 15}

	assert.True(t, parent.Contains(child))
	assert.False(t, parent.Contains(outside))
	assert.Equal(t, "llo", arena.Span{Start: 2, End: 5}.Text("hello world"))
}
