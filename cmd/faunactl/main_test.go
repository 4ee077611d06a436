package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fauna-field-log/internal/adapters/storage/boltdb"
	"fauna-field-log/internal/adapters/storage/kvrepo"
	"fauna-field-log/internal/domain/captures"
)

func seed(t *testing.T, path string) {
	t.Helper()
	kv, err := boltdb.Open(path)
	require.NoError(t, err)
	defer kv.Close()

	err = kvrepo.NewCapturesRepo(kv, nil).SaveAll(context.Background(), captures.Collection{
		{ID: "a", Date: "2024-05-01", Time: "08:15", Kind: captures.KindSighting, Species: "Zorro culpeo", Place: "Maipo", Photos: []string{"x"}},
		{ID: "b", Date: "2024-05-02", Time: "22:40", Kind: captures.KindAttack, Species: "Puma", Place: "Lo Valdés", Photos: []string{"y"}},
	})
	require.NoError(t, err)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(context.Background(), &out, args)
	return out.String(), err
}

func TestCLI_ListSummaryDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fauna.db")
	seed(t, path)
	flags := []string{"--storage", "bbolt", "--data", path, "--timezone", "UTC"}

	out, err := run(t, append([]string{"list"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Zorro culpeo")
	assert.Contains(t, out, "Lo Valdés")

	out, err = run(t, append([]string{"list", "--kind", "ataque"}, flags...)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "Zorro culpeo")

	out, err = run(t, append([]string{"summary"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2")

	_, err = run(t, append([]string{"delete", "a"}, flags...)...)
	assert.ErrorIs(t, err, captures.ErrConfirmationRequired)

	out, err = run(t, append([]string{"delete", "a", "--yes"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "Deleted a\n", out)

	out, err = run(t, append([]string{"list", "--json"}, flags...)...)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `"id": "b"`) && !strings.Contains(out, `"id": "a"`))
}
