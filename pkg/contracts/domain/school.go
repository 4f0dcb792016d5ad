package domain

// School identifies one participating school in the EC study.
type School string

// Participating schools. Each grows the same crop under a different
// target nutrient-solution EC.
const (
	SchoolSongdo  School = "송도고"
	SchoolHaneul  School = "하늘고"
	SchoolAra     School = "아라고"
	SchoolDongsan School = "동산고"
)

// AllSchools is the selector value that means every school at once.
const AllSchools = "전체"

// SchoolInfo pairs a school with its configured target EC (dS/m) and the
// display color charts use for it.
type SchoolInfo struct {
	Name     School  `json:"name"`
	TargetEC float64 `json:"target_ec"`
	Color    string  `json:"color"`
}

// Schools is the fixed school table for the deployed experiment.
// The slice order is significant: file classification resolves ambiguous
// names by taking the first school, in this order, whose name occurs in
// the file name.
var Schools = []SchoolInfo{
	{Name: SchoolSongdo, TargetEC: 1.0, Color: "#4C72B0"},
	{Name: SchoolHaneul, TargetEC: 2.0, Color: "#55A868"},
	{Name: SchoolAra, TargetEC: 4.0, Color: "#C44E52"},
	{Name: SchoolDongsan, TargetEC: 8.0, Color: "#8172B3"},
}

// SchoolByName looks up the school table entry for the given name.
func SchoolByName(name School) (SchoolInfo, bool) {
	for _, s := range Schools {
		if s.Name == name {
			return s, true
		}
	}
	return SchoolInfo{}, false
}

// IsKnownSchool reports whether name is one of the configured schools.
func IsKnownSchool(name School) bool {
	_, ok := SchoolByName(name)
	return ok
}

// TargetEC returns the configured target EC for a school.
func TargetEC(name School) (float64, bool) {
	info, ok := SchoolByName(name)
	if !ok {
		return 0, false
	}
	return info.TargetEC, true
}
