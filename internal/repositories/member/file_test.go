package member

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRepo(t *testing.T) (*fileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "members.json")
	repo, err := NewFile(&FileConfig{Path: path})
	require.NoError(t, err)
	return repo, path
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	out, err := repo.GetRoster(ctx, &GetRosterInput{RosterID: models.DefaultRosterID})
	require.NoError(t, err)
	assert.Empty(t, out.Members)

	members := []models.Member{{ID: "m1", Name: "Alice"}, {ID: "m2", Name: "Bob"}}
	require.NoError(t, repo.SaveRoster(ctx, &SaveRosterInput{
		RosterID: models.DefaultRosterID,
		Members:  members,
	}))

	out, err = repo.GetRoster(ctx, &GetRosterInput{RosterID: models.DefaultRosterID})
	require.NoError(t, err)
	assert.Equal(t, members, out.Members)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sylk_members":[{"id":"m1","name":"Alice"},{"id":"m2","name":"Bob"}]}`, string(data))

	// No temp files are left next to the document
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileRepositoryDelete(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRoster(ctx, &SaveRosterInput{RosterID: "a", Members: []models.Member{{ID: "1", Name: "One"}}}))
	require.NoError(t, repo.SaveRoster(ctx, &SaveRosterInput{RosterID: "b", Members: []models.Member{{ID: "2", Name: "Two"}}}))

	require.NoError(t, repo.DeleteRoster(ctx, &DeleteRosterInput{RosterID: "a"}))
	require.NoError(t, repo.DeleteRoster(ctx, &DeleteRosterInput{RosterID: "missing"}))

	a, err := repo.GetRoster(ctx, &GetRosterInput{RosterID: "a"})
	require.NoError(t, err)
	assert.Empty(t, a.Members)

	b, err := repo.GetRoster(ctx, &GetRosterInput{RosterID: "b"})
	require.NoError(t, err)
	assert.Len(t, b.Members, 1)
}

func TestFileRepositoryCorruptDocument(t *testing.T) {
	repo, path := newFileRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := repo.GetRoster(context.Background(), &GetRosterInput{RosterID: "a"})
	assert.Error(t, err)
}

func TestWriteFileAtomicCleansUpOnRenameFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "members.json")

	// a non-empty directory at the target makes the rename fail
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	err := writeFileAtomic(target, []byte("{}"), 0o644)
	require.Error(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, "members.json.tmp.*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestNewFileValidation(t *testing.T) {
	_, err := NewFile(nil)
	assert.Error(t, err)

	_, err = NewFile(&FileConfig{})
	assert.Error(t, err)
}
