package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/memory"
)

func capturedRecord(l *memory.Layout) []byte {
	rec := memory.NewRecord(make([]byte, l.Span()))
	rec.PutInt32(4464, 70)
	rec.PutInt32(0x1542, 0)
	rec.SetBit(0x13BC, 2, true)
	return rec.Bytes
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	l := memory.DefaultLayout()

	in := Snapshot{
		Version:    l.Version,
		Handle:     1042,
		CapturedAt: time.Unix(1700000000, 0),
		Record:     capturedRecord(l),
		Expected: map[string]any{
			memory.FieldSweat:        70,
			memory.FieldCriticalHits: false,
		},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx, l.Version, 1042)
	require.NoError(t, err)
	assert.Equal(t, in.Record, out.Record)
	assert.True(t, in.CapturedAt.Equal(out.CapturedAt))
	assert.Empty(t, out.Verify(l))
}

func TestVerifyDetectsShiftedLayout(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	l := memory.DefaultLayout()

	require.NoError(t, s.Save(ctx, Snapshot{
		Version:  l.Version,
		Handle:   7,
		Record:   capturedRecord(l),
		Expected: map[string]any{memory.FieldSweat: 70},
	}))

	shifted, err := memory.NewLayout("next",
		memory.Field{Name: memory.FieldSweat, Offset: 4468, Encoding: memory.EncodingInt32},
	)
	require.NoError(t, err)

	snap, err := s.Load(ctx, l.Version, 7)
	require.NoError(t, err)
	mismatches := snap.Verify(shifted)
	require.Len(t, mismatches, 1)
	assert.Equal(t, memory.FieldSweat, mismatches[0].Field)
}

func TestSaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Save(ctx, Snapshot{Version: "v1", Handle: 1, Record: []byte{1}, Expected: map[string]any{}}))
	require.NoError(t, s.Save(ctx, Snapshot{Version: "v1", Handle: 1, Record: []byte{2, 3}, Expected: map[string]any{}}))
	require.NoError(t, s.Save(ctx, Snapshot{Version: "v2", Handle: 4, Record: []byte{9}, Expected: map[string]any{}}))

	list, err := s.List(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []byte{2, 3}, list[0].Record)

	versions, err := s.Versions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, versions)
}

func TestLoadMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.Load(context.Background(), "v1", 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Save(context.Background(), Snapshot{Version: "v", Handle: 1, Record: []byte{0}}))
}
