package votes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_MarkOnce(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.Mark(ctx, "P1-0-upvoted", []byte("u")))
	require.ErrorIs(t, r.Mark(ctx, "P1-0-upvoted", []byte("again")), ErrAlreadyMarked)

	ok, err := r.IsMarked(ctx, "P1-0-upvoted")
	require.NoError(t, err)
	assert.True(t, ok)

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("u"), m["P1-0-upvoted"])

	// returned map is a copy
	m["P1-0-upvoted"][0] = 'x'
	m2, _ := r.List(ctx)
	assert.Equal(t, []byte("u"), m2["P1-0-upvoted"])
}

func TestRepositoriesSatisfyInterface(t *testing.T) {
	var _ Repository = NewMemoryRepository()
	var _ Repository = (*SQLiteRepository)(nil)
}
