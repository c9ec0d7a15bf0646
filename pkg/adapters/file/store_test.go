package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunRunStoreContract(t, store)
}

func TestFileStore_Layout(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "runs")
	store := file.NewStore(dir)

	require.NoError(t, store.Save(ctx, "r1", &domain.RunResult{Input: "1-0", Verdict: domain.VerdictAccepted}))

	data, err := os.ReadFile(filepath.Join(dir, "r1.json"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "r1", raw["id"])
	assert.Equal(t, "accepted", raw["verdict"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestFileStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(t.TempDir())
	base := time.Now()

	require.NoError(t, store.Save(ctx, "old", &domain.RunResult{StartedAt: base}))
	require.NoError(t, store.Save(ctx, "new", &domain.RunResult{StartedAt: base.Add(time.Second)}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids)
}

func TestFileStore_EmptyDir(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "missing"))

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_InvalidID(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(t.TempDir())

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, store.Save(ctx, id, &domain.RunResult{}), id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, id)
	}
}

func TestNewStore_DefaultDir(t *testing.T) {
	assert.Equal(t, file.DefaultDir, file.NewStore("").BasePath)
}
