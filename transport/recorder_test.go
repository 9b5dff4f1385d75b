package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderEditClearsButtons(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder()

	ref, err := rec.Send(ctx, 1, "pick one", Button{Label: "A", Data: "a"})
	require.NoError(t, err)

	require.NoError(t, rec.Edit(ctx, ref, "picked"))
	last, ok := rec.Last(1)
	require.True(t, ok)
	assert.Equal(t, "picked", last.Text)
	assert.Empty(t, last.Buttons)
	assert.Equal(t, 1, last.Edits)
}

func TestRecorderDelete(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder()

	first, err := rec.Send(ctx, 1, "one")
	require.NoError(t, err)
	_, err = rec.Send(ctx, 1, "two")
	require.NoError(t, err)

	require.NoError(t, rec.Delete(ctx, first))
	assert.ErrorIs(t, rec.Edit(ctx, first, "x"), ErrMessageNotFound)

	last, ok := rec.Last(1)
	require.True(t, ok)
	assert.Equal(t, "two", last.Text)
}

func TestUserReference(t *testing.T) {
	assert.Equal(t, "@alice", User{ID: 1, Username: "alice"}.Reference())
	assert.Equal(t, "tg://user?id=7", User{ID: 7}.Reference())
}
