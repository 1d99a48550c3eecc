package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.NotEmpty(t, config.GetModel(TierLite))
	assert.NotEmpty(t, config.GetModel(TierStandard))
	assert.NotEmpty(t, config.GetModel(TierAdvanced))
	assert.Equal(t, DefaultTemperature, config.GetTemperature())
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}

	// Advanced falls through standard to lite.
	assert.Equal(t, "lite-model", config.GetModel(TierAdvanced))
}

func TestGetModel_NoModels(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultConfig()
	modified := original.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "custom-model", modified.GetModel(TierAdvanced))
	assert.NotEqual(t, "custom-model", original.GetModel(TierAdvanced))
	assert.Equal(t, original.Temperature, modified.Temperature)
}

func TestGetTemperature_DefaultWhenUnset(t *testing.T) {
	config := &Config{Provider: ProviderGemini}
	assert.Equal(t, DefaultTemperature, config.GetTemperature())

	config.Temperature = 0.9
	assert.Equal(t, float32(0.9), config.GetTemperature())
}
