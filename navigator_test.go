package intervalset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navFixture() *IntervalSet[int] {
	s := New[int]()
	s.AddAll(Between(1, 3), Between(5, 7), Between(9, 11))
	return s
}

func TestFirstLast(t *testing.T) {
	s := navFixture()

	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, "[1,3)", first.String())

	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, "[9,11)", last.String())

	empty := New[int]()
	_, err = empty.First()
	assert.ErrorIs(t, err, ErrEmptySet)
	_, err = empty.Last()
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestLowerHigher(t *testing.T) {
	s := navFixture()

	// the probe's lower endpoint selects the covering interval; the
	// result is its neighbor
	lo, ok := s.Lower(Between(5, 7))
	require.True(t, ok)
	assert.Equal(t, "[1,3)", lo.String())

	hi, ok := s.Higher(Between(5, 7))
	require.True(t, ok)
	assert.Equal(t, "[9,11)", hi.String())

	// probes whose lower endpoint falls inside a stored interval work too
	lo, ok = s.Lower(Between(6, 100))
	require.True(t, ok)
	assert.Equal(t, "[1,3)", lo.String())

	// no covering interval, no neighbor
	_, ok = s.Lower(Between(4, 5))
	assert.False(t, ok)
	_, ok = s.Higher(Between(4, 5))
	assert.False(t, ok)

	// the first interval has no lower, the last no higher
	_, ok = s.Lower(Between(1, 2))
	assert.False(t, ok)
	_, ok = s.Higher(Between(9, 10))
	assert.False(t, ok)
}

func TestFloorCeiling(t *testing.T) {
	s := navFixture()

	f, ok := s.Floor(Between(5, 7))
	require.True(t, ok)
	assert.Equal(t, "[5,7)", f.String())

	f, ok = s.Floor(Between(8, 100))
	require.True(t, ok)
	assert.Equal(t, "[5,7)", f.String())

	_, ok = s.Floor(Between(0, 1))
	assert.False(t, ok)

	c, ok := s.Ceiling(Between(5, 7))
	require.True(t, ok)
	assert.Equal(t, "[5,7)", c.String())

	c, ok = s.Ceiling(Between(4, 100))
	require.True(t, ok)
	assert.Equal(t, "[5,7)", c.String())

	_, ok = s.Ceiling(Between(12, 13))
	assert.False(t, ok)
}

func TestPollFirstLast(t *testing.T) {
	s := navFixture()

	iv, ok := s.PollFirst()
	require.True(t, ok)
	assert.Equal(t, "[1,3)", iv.String())

	iv, ok = s.PollLast()
	require.True(t, ok)
	assert.Equal(t, "[9,11)", iv.String())

	assert.Equal(t, "[[5,7)]", s.String())

	iv, ok = s.PollFirst()
	require.True(t, ok)
	assert.Equal(t, "[5,7)", iv.String())

	_, ok = s.PollFirst()
	assert.False(t, ok)
	_, ok = s.PollLast()
	assert.False(t, ok)
}

func TestUnimplementedViews(t *testing.T) {
	s := navFixture()

	assert.PanicsWithValue(t, ErrUnsupportedOperation, func() { s.SubSet(Between(1, 2), Between(5, 6)) })
	assert.PanicsWithValue(t, ErrUnsupportedOperation, func() { s.HeadSet(Between(5, 6)) })
	assert.PanicsWithValue(t, ErrUnsupportedOperation, func() { s.TailSet(Between(5, 6)) })
	assert.PanicsWithValue(t, ErrUnsupportedOperation, func() { s.DescendingSet() })
	assert.PanicsWithValue(t, ErrUnsupportedOperation, func() { s.DescendingIterator() })
}
