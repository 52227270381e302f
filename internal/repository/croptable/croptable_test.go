package croptable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

func TestParseRange(t *testing.T) {
	t.Run("range collapses to its mean", func(t *testing.T) {
		r, err := ParseRange("5-7 mm/day")
		require.NoError(t, err)
		assert.Equal(t, 5.0, r.Min)
		assert.Equal(t, 7.0, r.Max)
		assert.Equal(t, "mm/day", r.Unit)
		assert.Equal(t, 6.0, r.Mean())
	})

	t.Run("single value yields exactly that value", func(t *testing.T) {
		r, err := ParseRange("6 mm/day")
		require.NoError(t, err)
		assert.Equal(t, 6.0, r.Min)
		assert.Equal(t, 6.0, r.Max)
		assert.Equal(t, 6.0, r.Mean())
	})

	t.Run("day ranges", func(t *testing.T) {
		r, err := ParseRange("10-15 days")
		require.NoError(t, err)
		assert.Equal(t, 12.5, r.Mean())
		assert.Equal(t, "days", r.Unit)
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		for _, text := range []string{"", "   ", "abc mm/day", "5-x mm/day", "x-7 mm/day"} {
			_, err := ParseRange(text)
			assert.Error(t, err, "input %q", text)
		}
	})
}

func TestNew_FallbackDataset(t *testing.T) {
	table := New("", nil)

	req, err := table.StageRequirement("Wheat", "Tillering")
	require.NoError(t, err)
	assert.Equal(t, 6.0, req.Water.Mean())
	assert.Equal(t, 35.0, req.Duration.Mean())

	profile, err := table.Profile("wheat")
	require.NoError(t, err)
	assert.Equal(t, 10, profile.IrrigationDays)
	assert.Equal(t, 30.0, profile.MinMoisture)
	assert.Equal(t, 60.0, profile.OptimalMoisture)
}

func TestNew_MissingFileFallsBack(t *testing.T) {
	table := New(filepath.Join(t.TempDir(), "no-such-file.csv"), nil)

	_, err := table.StageRequirement("Corn", "Tasseling")
	require.NoError(t, err)
}

func TestNew_LoadsCSVResource(t *testing.T) {
	csvData := `No,Crop,Growth Stage,Water Requirement
1,Wheat,Germination,4-5 mm/day (7-10 days)
2,,Tillering,5-7 mm/day (30-40 days)
3,Rice,Vegetative,9-12 mm/day (25-35 days)
`
	path := filepath.Join(t.TempDir(), "irrigation.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	table := New(path, nil)

	req, err := table.StageRequirement("Wheat", "Tillering")
	require.NoError(t, err)
	assert.Equal(t, 6.0, req.Water.Mean())

	req, err = table.StageRequirement("Rice", "Vegetative")
	require.NoError(t, err)
	assert.Equal(t, 10.5, req.Water.Mean())
	assert.Equal(t, 30.0, req.Duration.Mean())
}

func TestStageRequirement_MalformedCellUsesDefault(t *testing.T) {
	csvData := `No,Crop,Growth Stage,Water Requirement
1,Wheat,Germination,lots of water
`
	path := filepath.Join(t.TempDir(), "irrigation.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	table := New(path, nil)

	req, err := table.StageRequirement("Wheat", "Germination")
	require.NoError(t, err)
	assert.Equal(t, DefaultRequirement.Water, req.Water)
	assert.Equal(t, DefaultRequirement.Duration, req.Duration)
}

func TestStageRequirement_UnknownStageFallsBack(t *testing.T) {
	table := New("", nil)

	req, err := table.StageRequirement("Wheat", "Made Up Stage")
	require.NoError(t, err)
	assert.Equal(t, DefaultRequirement.Water, req.Water)
	assert.Equal(t, "Made Up Stage", req.Stage)
}

func TestLookup_UnknownCrop(t *testing.T) {
	table := New("", nil)

	_, err := table.Profile("dragonfruit")
	assert.ErrorIs(t, err, ErrCropNotFound)

	_, err = table.StageRequirement("dragonfruit", "Flowering")
	assert.ErrorIs(t, err, ErrCropNotFound)

	_, err = table.Stages("dragonfruit")
	assert.ErrorIs(t, err, ErrCropNotFound)
}

func TestDailyWaterVolume(t *testing.T) {
	req := models.GrowthStageRequirement{
		Water: models.Range{Min: 5, Max: 7, Unit: "mm/day"},
	}

	// mean 6 mm/day -> 60 m³/ha/day -> 6 m³/day on 1000 m².
	assert.InDelta(t, 6.0, req.DailyWaterVolume(1000), 1e-9)
	assert.InDelta(t, 60.0, req.DailyWaterVolume(10000), 1e-9)
}
