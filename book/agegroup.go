// book/agegroup.go
package book

// AgeGroups is the canonical bucket sequence for every age-grouped report.
// Reports must sort by position in this slice, not by comparing labels.
var AgeGroups = []string{"18-29", "30-39", "40-49", "50-59", "60-69", "70+"}

// AgeGroupFor buckets a customer age into one of the six fixed bands.
// The bands are contiguous and cover the whole generated domain [18,80).
func AgeGroupFor(age int) string {
	switch {
	case age <= 29:
		return "18-29"
	case age <= 39:
		return "30-39"
	case age <= 49:
		return "40-49"
	case age <= 59:
		return "50-59"
	case age <= 69:
		return "60-69"
	default:
		return "70+"
	}
}

// AgeGroupIndex returns the position of a bucket label in the canonical
// sequence, or len(AgeGroups) for an unknown label so unknowns sort last.
func AgeGroupIndex(group string) int {
	for i, g := range AgeGroups {
		if g == group {
			return i
		}
	}
	return len(AgeGroups)
}
