package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get(Rules)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Never invent facts")
	assert.Contains(t, prompt, "bulleted list")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get(Key("nonexistent_key"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_key")
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet(Key("nonexistent_key"))
	})
}

func TestFormat(t *testing.T) {
	template := "Job description:\n{{.JobDescription}}\nResume:\n{{.ResumeText}}"
	result := Format(template, map[string]string{
		"JobDescription": "Go developer",
		"ResumeText":     "# Experience",
	})

	assert.Equal(t, "Job description:\nGo developer\nResume:\n# Experience", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}

func TestRefinePrompts_AllKeysPresent(t *testing.T) {
	keys := []Key{
		SectionIntro,
		FullIntro,
		Rules,
		ExperienceGuidance,
		ResponseFormat,
		ResponseFormatWithIntro,
		InputBlock,
	}
	for _, key := range keys {
		prompt, err := Get(key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt, "key %s", key)
	}
}

func TestSectionIntro_TakesSectionName(t *testing.T) {
	intro := MustGet(SectionIntro)
	assert.Contains(t, intro, "{{.SectionName}}")
}

func TestExperienceGuidance_IrrelevantRoleBullet(t *testing.T) {
	prompt := MustGet(ExperienceGuidance)
	assert.Contains(t, prompt, "* Duties not relevant to this job application")
	assert.Contains(t, prompt, "Never delete a role")
}
