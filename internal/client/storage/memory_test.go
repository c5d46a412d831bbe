package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, v)

	buf := []byte("tok")
	require.NoError(t, r.Set(ctx, "authToken", buf))
	buf[0] = 'X'

	v, err = r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), v, "stored value must not alias caller's slice")

	require.NoError(t, r.Set(ctx, "user", []byte("{}")))
	require.NoError(t, r.Delete(ctx, "authToken", "missing"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"user": []byte("{}")}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = r.Set(ctx, key, []byte{byte(i)})
			_, _ = r.Get(ctx, key)
			_, _ = r.List(ctx)
		}(i)
	}
	wg.Wait()

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 20)
}
