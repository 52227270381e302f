package advisor

import (
	"strings"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// diseaseReduction is the volume adjustment applied while a water-sensitive
// disease is active: fungal and bacterial infections spread faster in wet
// conditions, so irrigation is cut by 30%.
const diseaseReduction = -0.30

// categoryAdjustments is the authoritative disease-to-adjustment table. Every
// recognized category reduces water; unknown labels and healthy plants do not.
var categoryAdjustments = map[models.DiseaseCategory]float64{
	models.DiseaseBlight:          diseaseReduction,
	models.DiseaseBacterialCanker: diseaseReduction,
	models.DiseaseBacterialSpot:   diseaseReduction,
	models.DiseaseBlackRot:        diseaseReduction,
	models.DiseaseFusarium:        diseaseReduction,
	models.DiseaseBacterialRot:    diseaseReduction,
	models.DiseaseWilt:            diseaseReduction,
	models.DiseasePowderyMildew:   diseaseReduction,
}

// labelStems maps keyword stems found in free-text disease labels to
// categories. This is a best-effort classifier for labels coming from the
// image model or manual entry; the adjustment itself always goes through
// categoryAdjustments.
var labelStems = []struct {
	stem     string
	category models.DiseaseCategory
}{
	{"blight", models.DiseaseBlight},
	{"bacterial canker", models.DiseaseBacterialCanker},
	{"bacterial spot", models.DiseaseBacterialSpot},
	{"black rot", models.DiseaseBlackRot},
	{"fusarium", models.DiseaseFusarium},
	{"bacterial rot", models.DiseaseBacterialRot},
	{"powdery mildew", models.DiseasePowderyMildew},
	{"wilt", models.DiseaseWilt},
}

// ClassifyDiseaseLabel matches a free-text label against the stem list,
// case-insensitively. Labels with no matching stem come back as
// DiseaseUnknown, which carries no adjustment.
func ClassifyDiseaseLabel(label string) models.DiseaseCategory {
	lowered := strings.ToLower(label)
	for _, s := range labelStems {
		if strings.Contains(lowered, s.stem) {
			return s.category
		}
	}
	return models.DiseaseUnknown
}

// ResolveDisease turns an optional disease report into the irrigation
// adjustment. A nil report means the plant is healthy. Reports without a
// pre-resolved category are classified from their label first.
func ResolveDisease(report *models.DiseaseReport) models.DiseaseAssessment {
	if report == nil {
		return models.DiseaseAssessment{Category: models.DiseaseNone}
	}

	category := report.Category
	if category == "" || category == models.DiseaseUnknown {
		category = ClassifyDiseaseLabel(report.Name)
	}

	adjustment := categoryAdjustments[category]
	return models.DiseaseAssessment{
		HasDisease:           true,
		DiseaseName:          report.Name,
		Category:             category,
		RequiresReducedWater: adjustment != 0,
		Adjustment:           adjustment,
		Treatment:            report.Treatment,
	}
}
