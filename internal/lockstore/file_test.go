package lockstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) *FileStore {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreSetAndGetRemaining(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining, "absent record should report zero remaining")

	err = store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Minute, nil)
	require.NoError(t, err)

	remaining, err = store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Greater(t, remaining, 50*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}

func TestFileStoreKindsAndSubjectsAreIndependent(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Minute, nil))

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindCooldown)
	require.NoError(t, err)
	assert.Zero(t, remaining, "cooldown kind must not see pending record")

	remaining, err = store.GetRemaining(ctx, "1.2.3.4", "holesky", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining, "other network must not see the record")

	remaining, err = store.GetRemaining(ctx, "5.6.7.8", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining, "other identifier must not see the record")
}

func TestFileStoreLazyExpiryRemovesRecord(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Millisecond, nil))
	time.Sleep(5 * time.Millisecond)

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// The expired read should have deleted the backing file.
	path := store.path("1.2.3.4", "sepolia", KindPending)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "expired record file should be removed")
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx, "1.2.3.4", "sepolia", KindPending), "clearing an absent lock must be a no-op")

	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Minute, nil))
	require.NoError(t, store.Clear(ctx, "1.2.3.4", "sepolia", KindPending))
	require.NoError(t, store.Clear(ctx, "1.2.3.4", "sepolia", KindPending))

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestFileStoreMetadataRoundTrip(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	meta := Metadata{
		"recipient": "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
		"network":   "sepolia",
		"txHash":    "0xabc",
	}
	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindCooldown, time.Hour, meta))

	raw, err := os.ReadFile(store.path("1.2.3.4", "sepolia", KindCooldown))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"recipient"`)
	assert.Contains(t, string(raw), `"firstSeenAt"`)
	assert.Contains(t, string(raw), `"expiresAt"`)
}

func TestFileStoreCorruptRecordTreatedAsAbsent(t *testing.T) {
	store := setupFileStore(t)
	ctx := context.Background()

	path := store.path("1.2.3.4", "sepolia", KindPending)
	require.NoError(t, os.WriteFile(path, []byte("not-json"), 0o600))

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt record should be removed")
}

func TestSubjectKeyIsSafeFixedLengthName(t *testing.T) {
	key := SubjectKey("::1", "sepolia")
	assert.Len(t, key, 64)
	assert.Equal(t, key, SubjectKey("::1", "sepolia"))
	assert.NotEqual(t, key, SubjectKey("::1", "holesky"))

	// Hostile identifiers must not influence the record path.
	hostile := SubjectKey("../../etc/passwd", "sepolia")
	assert.Len(t, hostile, 64)
	assert.NotContains(t, hostile, string(filepath.Separator))
}
