package session

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokybot/orderagent/order"
)

func TestNewSessionAwaitsLanguage(t *testing.T) {
	sess := New()
	assert.Equal(t, StateAwaitingLanguage, sess.State)
	assert.Empty(t, sess.History)
	assert.Nil(t, sess.PendingOrder)
}

func TestAppendSkipsNil(t *testing.T) {
	sess := New()
	sess.Append(schema.SystemMessage("sys"), nil, schema.UserMessage("hi"))
	require.Len(t, sess.History, 2)
	assert.Equal(t, schema.System, sess.History[0].Role)
	assert.Equal(t, schema.User, sess.History[1].Role)
}

func TestRollbackLastRemovesExactlyOneTurn(t *testing.T) {
	sess := New()
	sess.Append(schema.SystemMessage("sys"), schema.UserMessage("hi"))

	assert.True(t, sess.RollbackLast())
	require.Len(t, sess.History, 1)
	assert.Equal(t, schema.System, sess.History[0].Role)

	assert.True(t, sess.RollbackLast())
	assert.Empty(t, sess.History)
	assert.False(t, sess.RollbackLast())
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Load(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	sess := New()
	sess.PendingOrder = &order.Record{Location: "Main St 1"}
	require.NoError(t, store.Save(ctx, 42, sess))

	got, ok, err := store.Load(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok, err = store.Load(ctx, 43)
	require.NoError(t, err)
	assert.False(t, ok, "sessions are not shared across users")

	require.NoError(t, store.Remove(ctx, 42))
	_, ok, err = store.Load(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, 42), "removing a missing session is a no-op")
}
