package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRefinedResult_Valid(t *testing.T) {
	err := ValidateRefinedResult(`{"refined_markdown": "# Experience\n## Roles"}`)
	assert.NoError(t, err)
}

func TestValidateRefinedResult_ValidWithIntroduction(t *testing.T) {
	err := ValidateRefinedResult(`{"refined_markdown": "# Experience", "introduction": "I tightened the bullets."}`)
	assert.NoError(t, err)
}

func TestValidateRefinedResult_MissingRequiredField(t *testing.T) {
	err := ValidateRefinedResult(`{"introduction": "no content here"}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "refined_markdown")
}

func TestValidateRefinedResult_WrongType(t *testing.T) {
	err := ValidateRefinedResult(`{"refined_markdown": 42}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateRefinedResult_UnknownField(t *testing.T) {
	err := ValidateRefinedResult(`{"refined_markdown": "x", "confidence": 0.9}`)
	require.Error(t, err)
}

func TestValidateRefinedResult_MalformedJSON(t *testing.T) {
	err := ValidateRefinedResult(`{"refined_markdown": `)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}
