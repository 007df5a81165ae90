// AngelaMos | 2026
// entity_test.go

package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSourcesForIndustry(t *testing.T) {
	saas := defaultSourcesForIndustry("saas")
	require.Len(t, saas, 5)
	assert.Equal(t, "Office Electricity", saas[0].name)
	assert.Equal(t, ScopeTwo, saas[0].scope)

	manufacturing := defaultSourcesForIndustry("manufacturing")
	require.Len(t, manufacturing, 5)
	assert.Equal(t, "Production Electricity", manufacturing[0].name)

	names := make(map[string]bool)
	for _, seed := range manufacturing {
		names[seed.name] = true
	}
	assert.True(t, names["Industrial Processes"])
	assert.True(t, names["Waste Management"])
}

func TestDefaultSourcesForIndustry_UnknownFallsBackToSaas(t *testing.T) {
	unknown := defaultSourcesForIndustry("space-mining")
	saas := defaultSourcesForIndustry("saas")
	assert.Equal(t, saas, unknown)
}
