package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroupForCoversDomain(t *testing.T) {
	t.Parallel()

	counts := map[string]int{}
	for age := 18; age < 80; age++ {
		g := AgeGroupFor(age)
		assert.Contains(t, AgeGroups, g, "age %d landed outside the canonical buckets", age)
		counts[g]++
	}

	// Every bucket is reachable and each decade band holds exactly its ages.
	assert.Len(t, counts, len(AgeGroups))
	assert.Equal(t, 12, counts["18-29"])
	assert.Equal(t, 10, counts["30-39"])
	assert.Equal(t, 10, counts["40-49"])
	assert.Equal(t, 10, counts["50-59"])
	assert.Equal(t, 10, counts["60-69"])
	assert.Equal(t, 10, counts["70+"])
}

func TestAgeGroupBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "18-29", AgeGroupFor(29))
	assert.Equal(t, "30-39", AgeGroupFor(30))
	assert.Equal(t, "60-69", AgeGroupFor(69))
	assert.Equal(t, "70+", AgeGroupFor(70))
	assert.Equal(t, "70+", AgeGroupFor(79))
}

func TestAgeGroupIndex(t *testing.T) {
	t.Parallel()

	for i, g := range AgeGroups {
		assert.Equal(t, i, AgeGroupIndex(g))
	}
	assert.Equal(t, len(AgeGroups), AgeGroupIndex("80-89"))
}
