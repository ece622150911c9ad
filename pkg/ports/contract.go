package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunExplanationCacheContract runs a suite of tests to verify that an ExplanationCache
// implementation adheres to the defined interface contract.
func RunExplanationCacheContract(t *testing.T, cache ExplanationCache) {
	ctx := context.Background()
	key := "contract-topic-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		text := "**AND** outputs 1 only when both inputs are 1.\n```\nA B | Y\n```"
		err := cache.Set(ctx, key, text)
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, text, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "first"))
		require.NoError(t, cache.Set(ctx, key, "second"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "to be removed"))

		err := cache.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice should be a no-op")
	})
}
