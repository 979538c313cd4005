package profiles

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/team-matcher/internal/types"
)

func seedProfiles() []types.Profile {
	return []types.Profile{
		{ID: "b", Name: "Bea", Skills: types.Tags{"Go"}, Experience: 2},
		{ID: "a", Name: "Ann", Skills: types.Tags{"React"}, Experience: 4},
	}
}

func TestMemoryStore_GetAndList(t *testing.T) {
	store := NewMemoryStore(seedProfiles())
	ctx := context.Background()

	p, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(nil)

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(seedProfiles())
	ctx := context.Background()

	p, err := store.Get(ctx, "a")
	require.NoError(t, err)
	p.Skills[0] = "Mutated"

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, types.Tags{"React"}, again.Skills)
}

func TestMemoryStore_SaveAndDelete(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &types.Profile{ID: "c", Name: "Cat"}))
	require.NoError(t, store.Save(ctx, &types.Profile{ID: "c", Name: "Cathy"}))

	p, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "Cathy", p.Name)

	require.NoError(t, store.Delete(ctx, "c"))
	_, err = store.Get(ctx, "c")
	assert.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, store.Delete(ctx, "c"), &notFound)
}

func TestMemoryStore_CreateRejectsTakenID(t *testing.T) {
	store := NewMemoryStore(seedProfiles())
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &types.Profile{ID: "c", Name: "Cat"}))

	var exists *ExistsError
	require.ErrorAs(t, store.Create(ctx, &types.Profile{ID: "a", Name: "Other Ann"}), &exists)
	assert.Equal(t, "a", exists.ID)
	assert.EqualError(t, exists, "profile already exists: a")

	p, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)

	assert.Error(t, store.Create(ctx, &types.Profile{Name: "No ID"}))
}

func TestMemoryStore_ConcurrentCreateSameID(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Create(ctx, &types.Profile{ID: "dup", Name: "Dup"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestMemoryStore_SaveRequiresID(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.Error(t, store.Save(context.Background(), &types.Profile{Name: "No ID"}))
	assert.Error(t, store.Save(context.Background(), nil))
}

func TestMemoryStore_Dismiss(t *testing.T) {
	store := NewMemoryStore(seedProfiles())
	ctx := context.Background()

	require.NoError(t, store.Dismiss(ctx, "a", "b"))
	require.NoError(t, store.Dismiss(ctx, "a", "b"))

	dismissed, err := store.Dismissed(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"b": {}}, dismissed)

	none, err := store.Dismissed(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, store.Dismiss(ctx, "b", "a"))
	require.NoError(t, store.Delete(ctx, "a"))

	afterDelete, err := store.Dismissed(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, afterDelete)

	// Dismissals of the deleted profile go too
	fromB, err := store.Dismissed(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(seedProfiles())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, &types.Profile{ID: "a", Name: "Ann"})
			_ = store.Dismiss(ctx, "a", "b")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
			_, _ = store.Dismissed(ctx, "a")
		}()
	}
	wg.Wait()

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
