package models

// DiseaseCategory is an explicit classification of plant diseases that matter
// to irrigation. Categories, not free-text labels, drive the adjustment table.
type DiseaseCategory string

const (
	DiseaseNone            DiseaseCategory = "none"
	DiseaseUnknown         DiseaseCategory = "unknown"
	DiseaseBlight          DiseaseCategory = "blight"
	DiseaseBacterialCanker DiseaseCategory = "bacterial_canker"
	DiseaseBacterialSpot   DiseaseCategory = "bacterial_spot"
	DiseaseBlackRot        DiseaseCategory = "black_rot"
	DiseaseFusarium        DiseaseCategory = "fusarium"
	DiseaseBacterialRot    DiseaseCategory = "bacterial_rot"
	DiseaseWilt            DiseaseCategory = "wilt"
	DiseasePowderyMildew   DiseaseCategory = "powdery_mildew"
)

// DiseaseReport is what the classifier or the manual picker supplies: a label,
// an optional pre-resolved category, and a treatment note. A nil report means
// the plant is healthy.
type DiseaseReport struct {
	Name      string          `json:"name"`
	Category  DiseaseCategory `json:"category,omitempty"`
	Treatment string          `json:"treatment,omitempty"`
}

// DiseaseAssessment is the resolver's output.
type DiseaseAssessment struct {
	HasDisease           bool            `json:"has_disease"`
	DiseaseName          string          `json:"disease_name,omitempty"`
	Category             DiseaseCategory `json:"category"`
	RequiresReducedWater bool            `json:"requires_reduced_water"`
	Adjustment           float64         `json:"irrigation_adjustment"`
	Treatment            string          `json:"treatment,omitempty"`
}
