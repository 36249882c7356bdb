package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Drolfothesgnir/docfmt/render"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	entry := Entry{Formatted: "/** hi */", CreatedAt: time.Now()}
	require.NoError(t, store.SaveFormatted(ctx, "k1", entry, time.Minute))

	got, err := store.GetFormatted(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, entry.Formatted, got.Formatted)
}

func TestMemoryStore_MissReturnsErrNotFound(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.GetFormatted(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, got)
}

func TestMemoryStore_ExpiredEntryIsAMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	entry := Entry{Formatted: "/** hi */", CreatedAt: time.Now()}
	require.NoError(t, store.SaveFormatted(ctx, "k1", entry, time.Nanosecond))

	time.Sleep(5 * time.Millisecond)

	_, err := store.GetFormatted(ctx, "k1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveFormatted(ctx, "k1", Entry{Formatted: "x"}, time.Minute))
	require.NoError(t, store.DeleteFormatted(ctx, "k1"))

	_, err := store.GetFormatted(ctx, "k1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKey_DependsOnCommentAndOptions(t *testing.T) {
	base := Key("/** a */", render.Options{MaxLineLength: 100})

	require.Equal(t, base, Key("/** a */", render.Options{MaxLineLength: 100}),
		"same input must produce the same key")

	require.NotEqual(t, base, Key("/** b */", render.Options{MaxLineLength: 100}),
		"different comments must not collide")

	require.NotEqual(t, base, Key("/** a */", render.Options{MaxLineLength: 80}),
		"different options must not collide")

	require.NotEqual(t, base, Key("/** a */", render.Options{MaxLineLength: 100, Indent: 4}),
		"indent is part of the key")
}
