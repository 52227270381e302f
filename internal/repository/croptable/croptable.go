// Package croptable supplies the static crop reference data the advisory
// engine runs on: per-crop irrigation profiles and per-stage water
// requirements. The stage table is loaded once at startup from a CSV resource
// and falls back to a built-in dataset when the resource is missing or
// malformed.
package croptable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// ErrCropNotFound reports a lookup for a crop the table does not know.
var ErrCropNotFound = errors.New("crop not found in reference table")

// DefaultRequirement is offered for growth stages the table has no entry for,
// and replaces entries whose requirement cell failed to parse.
var DefaultRequirement = models.GrowthStageRequirement{
	Water:    models.Range{Min: 5, Max: 7, Unit: "mm/day"},
	Duration: models.Range{Min: 7, Max: 10, Unit: "days"},
}

// Table is the loaded reference data. Immutable after construction.
type Table struct {
	profiles map[string]models.CropProfile
	stages   map[string]map[string]models.GrowthStageRequirement
	logger   *zap.Logger
}

// New builds a Table from the CSV resource at path. A missing or unreadable
// file is not fatal; the built-in dataset is used instead.
func New(path string, logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Table{
		profiles: builtinProfiles(),
		stages:   nil,
		logger:   logger,
	}

	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			stages, err := parseCSV(f, logger)
			if err == nil && len(stages) > 0 {
				t.stages = stages
				logger.Info("crop stage table loaded", zap.String("path", path), zap.Int("crops", len(stages)))
				return t
			}
			logger.Warn("crop stage resource unusable, using built-in dataset", zap.String("path", path), zap.Error(err))
		} else {
			logger.Warn("crop stage resource missing, using built-in dataset", zap.String("path", path), zap.Error(err))
		}
	}

	t.stages = builtinStages()
	return t
}

// Profile resolves the irrigation profile for a crop name.
func (t *Table) Profile(crop string) (models.CropProfile, error) {
	p, ok := t.profiles[normalize(crop)]
	if !ok {
		return models.CropProfile{}, fmt.Errorf("%w: %q", ErrCropNotFound, crop)
	}
	return p, nil
}

// Profiles lists all known crop profiles in name order.
func (t *Table) Profiles() []models.CropProfile {
	out := make([]models.CropProfile, 0, len(t.profiles))
	for _, p := range t.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StageRequirement returns the water requirement for a crop at a growth stage.
// Unknown crops fail with ErrCropNotFound; unknown stages of a known crop fall
// back to DefaultRequirement so planning can proceed.
func (t *Table) StageRequirement(crop, stage string) (models.GrowthStageRequirement, error) {
	stages, ok := t.stages[normalize(crop)]
	if !ok {
		return models.GrowthStageRequirement{}, fmt.Errorf("%w: %q", ErrCropNotFound, crop)
	}

	if req, ok := stages[normalize(stage)]; ok {
		return req, nil
	}

	req := DefaultRequirement
	req.Crop = crop
	req.Stage = stage
	return req, nil
}

// Stages lists the growth-stage requirements known for a crop, in stage order.
func (t *Table) Stages(crop string) ([]models.GrowthStageRequirement, error) {
	stages, ok := t.stages[normalize(crop)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCropNotFound, crop)
	}

	out := make([]models.GrowthStageRequirement, 0, len(stages))
	for _, req := range stages {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stage < out[j].Stage })
	return out, nil
}

// parseCSV reads rows shaped "No,Crop,Growth Stage,Water Requirement" where the
// requirement cell carries the grammar "5-7 mm/day (30-40 days)". A crop-name
// cell opens a new crop block; stage rows belong to the last opened crop.
func parseCSV(r io.Reader, logger *zap.Logger) (map[string]map[string]models.GrowthStageRequirement, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	stages := make(map[string]map[string]models.GrowthStageRequirement)
	currentCrop := ""

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read crop csv: %w", err)
		}
		if len(row) < 4 {
			continue
		}

		if name := strings.TrimSpace(row[1]); name != "" && name != "Crop" {
			currentCrop = name
			if _, ok := stages[normalize(currentCrop)]; !ok {
				stages[normalize(currentCrop)] = make(map[string]models.GrowthStageRequirement)
			}
		}

		stage := strings.TrimSpace(row[2])
		if currentCrop == "" || stage == "" || stage == "Growth Stage" {
			continue
		}

		req, err := parseRequirementCell(currentCrop, stage, row[3])
		if err != nil {
			// Malformed cells are rejected whole, never parsed partially.
			logger.Warn("rejecting malformed stage requirement",
				zap.String("crop", currentCrop),
				zap.String("stage", stage),
				zap.String("cell", row[3]),
				zap.Error(err))
			req = DefaultRequirement
			req.Crop = currentCrop
			req.Stage = stage
		}
		stages[normalize(currentCrop)][normalize(stage)] = req
	}

	return stages, nil
}

// parseRequirementCell splits "5-7 mm/day (30-40 days)" into the water and
// duration ranges. The duration part is optional.
func parseRequirementCell(crop, stage, cell string) (models.GrowthStageRequirement, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return models.GrowthStageRequirement{}, errors.New("empty requirement cell")
	}

	waterText := cell
	durationText := ""
	if open := strings.Index(cell, "("); open >= 0 {
		waterText = strings.TrimSpace(cell[:open])
		durationText = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell[open+1:]), ")"))
	}

	water, err := ParseRange(waterText)
	if err != nil {
		return models.GrowthStageRequirement{}, fmt.Errorf("water requirement: %w", err)
	}

	duration := DefaultRequirement.Duration
	if durationText != "" {
		duration, err = ParseRange(durationText)
		if err != nil {
			return models.GrowthStageRequirement{}, fmt.Errorf("stage duration: %w", err)
		}
	}

	return models.GrowthStageRequirement{
		Crop:         crop,
		Stage:        stage,
		StageDisplay: stageDisplayNames[stage],
		Water:        water,
		Duration:     duration,
	}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
