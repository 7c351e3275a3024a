package lockstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindCooldown)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindCooldown, time.Hour, Metadata{"txHash": "0xabc"}))

	remaining, err = store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindCooldown)
	require.NoError(t, err)
	assert.Greater(t, remaining, 59*time.Minute)

	require.NoError(t, store.Clear(ctx, "1.2.3.4", "sepolia", KindCooldown))
	require.NoError(t, store.Clear(ctx, "1.2.3.4", "sepolia", KindCooldown))

	remaining, err = store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindCooldown)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Millisecond, nil))
	time.Sleep(5 * time.Millisecond)

	remaining, err := store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "1.2.3.4", "sepolia", KindPending, time.Minute, nil)
			_, _ = store.GetRemaining(ctx, "1.2.3.4", "sepolia", KindPending)
			_ = store.Clear(ctx, "1.2.3.4", "sepolia", KindPending)
		}()
	}
	wg.Wait()
}
