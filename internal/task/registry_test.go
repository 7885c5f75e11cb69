package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelab/pricelab/internal/optimize"
	"github.com/pricelab/pricelab/internal/storage/file"
)

func TestRegistry_Lifecycle(t *testing.T) {

	registry := NewRegistry(nil)

	created := registry.Create("laptop")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusRunning, created.Status)
	assert.Equal(t, "laptop", created.Product)

	current, ok := registry.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, StatusRunning, current.Status)

	result := &optimize.Result{OptimumPrice: 42}
	registry.Complete(created.ID, result)

	finished, ok := registry.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, StatusDone, finished.Status)
	require.NotNil(t, finished.Result)
	assert.Equal(t, 42.0, finished.Result.OptimumPrice)
	assert.False(t, finished.Finished.IsZero())

	assert.Len(t, registry.List(), 1)
}

func TestRegistry_Fail(t *testing.T) {

	registry := NewRegistry(nil)

	created := registry.Create("laptop")
	registry.Fail(created.ID, errors.New("no samples"))

	failed, ok := registry.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "no samples", failed.Error)
	assert.Nil(t, failed.Result)
}

func TestRegistry_Unknown(t *testing.T) {

	registry := NewRegistry(nil)

	_, ok := registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_StoreFallback(t *testing.T) {

	store, err := file.NewRegistry(t.TempDir())
	require.NoError(t, err)

	registry := NewRegistry(store)
	created := registry.Create("laptop")
	registry.Complete(created.ID, &optimize.Result{OptimumPrice: 42})

	// a fresh registry on the same store still finds the finished task
	restarted := NewRegistry(store)
	restored, ok := restarted.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, StatusDone, restored.Status)
	assert.Equal(t, 42.0, restored.Result.OptimumPrice)
}
