package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSoftSkill_CaseInsensitive(t *testing.T) {
	assert.True(t, IsSoftSkill("Communication"))
	assert.True(t, IsSoftSkill("TEAMWORK"))
	assert.False(t, IsSoftSkill("Python"))
}

func TestFilterSoftSkills_RemovesOnlySoftSkills(t *testing.T) {
	filtered := FilterSoftSkills([]string{"Python", "Leadership", "SQL", "communication"})

	assert.Equal(t, []string{"Python", "SQL"}, filtered)
}
