package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

func TestFieldRepository_AddAndGet(t *testing.T) {
	repo := NewFieldRepository()

	field := models.Field{Name: "north plot", Crop: "wheat", SoilMoisture: 50}
	require.NoError(t, repo.Add(field))

	got, err := repo.Get("north plot")
	require.NoError(t, err)
	assert.Equal(t, field, got)

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestFieldRepository_DuplicateName(t *testing.T) {
	repo := NewFieldRepository()
	require.NoError(t, repo.Add(models.Field{Name: "north plot"}))

	err := repo.Add(models.Field{Name: "north plot"})
	assert.ErrorIs(t, err, ErrFieldExists)
}

func TestFieldRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewFieldRepository()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, repo.Add(models.Field{Name: name}))
	}

	fields := repo.List()
	require.Len(t, fields, 3)
	assert.Equal(t, "zulu", fields[0].Name)
	assert.Equal(t, "alpha", fields[1].Name)
	assert.Equal(t, "mike", fields[2].Name)
}

func TestFieldRepository_Update(t *testing.T) {
	repo := NewFieldRepository()
	require.NoError(t, repo.Add(models.Field{Name: "north plot", SoilMoisture: 50}))

	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err := repo.Update("north plot", func(f *models.Field) {
		f.SoilMoisture = 70
		f.LastIrrigated = now
	})
	require.NoError(t, err)

	got, err := repo.Get("north plot")
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.SoilMoisture)
	assert.Equal(t, now, got.LastIrrigated)

	err = repo.Update("missing", func(f *models.Field) {})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestFieldRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewFieldRepository()
	require.NoError(t, repo.Add(models.Field{Name: "north plot", SoilMoisture: 0}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Update("north plot", func(f *models.Field) {
				f.SoilMoisture++
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get("north plot")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.SoilMoisture)
}
