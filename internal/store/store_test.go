package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rap-core/digest"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Init(db))
	return &Store{DB: db}
}

var info = RunInfo{
	Window:  digest.Window{Lower: 0, Upper: 100},
	Enzymes: []string{"A:AATT:1", "B:GGCC:2"},
	Inputs:  []string{"ref.fa"},
}

func TestRun_CommitAndReadBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.BeginRun(ctx, info)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	frags := []digest.Fragment{
		{SequenceID: "chr1", Start: 1, End: 17, Upstream: "A", Length: 15, Downstream: "B"},
		{SequenceID: "chr1", Start: 16, End: 30, Upstream: "B", Length: 13, Downstream: "A"},
	}
	for _, f := range frags {
		require.NoError(t, run.Add(ctx, f))
	}
	require.NoError(t, run.Commit(ctx, 1, 18))

	got, err := s.Fragments(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, frags, got)

	var n, records int
	var enzymes string
	require.NoError(t, s.DB.QueryRow(`SELECT fragments, records, enzymes FROM runs WHERE id = ?`, run.ID).
		Scan(&n, &records, &enzymes))
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, records)
	assert.Equal(t, "A:AATT:1,B:GGCC:2", enzymes)
}

func TestRun_Rollback(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.BeginRun(ctx, info)
	require.NoError(t, err)
	require.NoError(t, run.Add(ctx, digest.Fragment{SequenceID: "x", Upstream: "A", Downstream: "B"}))
	require.NoError(t, run.Rollback())

	var count int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count))
	assert.Zero(t, count)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "frag.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var name string
	require.NoError(t, s.DB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='fragments'`).Scan(&name))
	assert.Equal(t, "fragments", name)
}
