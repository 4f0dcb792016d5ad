package domain

// Growth spreadsheet column headers, preserved exactly as the schools
// label them. GrowthHeaderSchool is the tag column added when sheets are
// concatenated for export.
const (
	GrowthHeaderLeafCount   = "잎 수(장)"
	GrowthHeaderShootLength = "지상부 길이(mm)"
	GrowthHeaderFreshWeight = "생중량(g)"
	GrowthHeaderSchool      = "학교"
)

// GrowthRecord is one measured plant specimen's outcome, tagged with the
// school (spreadsheet sheet) it came from and that school's target EC.
type GrowthRecord struct {
	School      School  `json:"school"`
	LeafCount   int     `json:"leaf_count"`
	ShootLength float64 `json:"shoot_length_mm"`
	FreshWeight float64 `json:"fresh_weight_g"`
	TargetEC    float64 `json:"target_ec"`
}
