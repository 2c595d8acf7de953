package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashboardSearch = "              driver: null, // faol buyurtmalarda haydovchi tayinlanmagan"

const dashboardReplacement = dashboardSearch + "\n" +
	"              route: `${cargo.fromCity} → ${cargo.toCity}`,\n" +
	"              cargoType: cargo.cargoType,\n" +
	"              amount: cargo.price,"

func TestLoadDashboardMappingPatch(t *testing.T) {
	patch, err := LoadDashboardMappingPatch()

	require.NoError(t, err)
	assert.Equal(t, "src/bot/bot.service.ts", patch.TargetPath)
	assert.Equal(t, dashboardSearch, patch.Search)
	assert.Equal(t, dashboardReplacement, patch.Replacement)
	assert.Equal(t, "Dashboard mapping fixed", patch.FoundMessage)
	assert.Equal(t, "Target line not found", patch.NotFoundMessage)
}

func TestParsePatch_RejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing target path",
			yaml: "name: p\nsearch: a\nreplacement: ab\nfoundMessage: f\nnotFoundMessage: n\n",
		},
		{
			name: "missing search text",
			yaml: "name: p\ntargetPath: x\nreplacement: ab\nfoundMessage: f\nnotFoundMessage: n\n",
		},
		{
			name: "replacement without search prefix",
			yaml: "name: p\ntargetPath: x\nsearch: a\nreplacement: ba\nfoundMessage: f\nnotFoundMessage: n\n",
		},
		{
			name: "missing status message",
			yaml: "name: p\ntargetPath: x\nsearch: a\nreplacement: ab\nfoundMessage: f\n",
		},
		{
			name: "unknown field",
			yaml: "name: p\ntargetPath: x\nsearch: a\nreplacement: ab\nfoundMessage: f\nnotFoundMessage: n\nbackup: true\n",
		},
		{
			name: "malformed yaml",
			yaml: "name: [p\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePatch([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	patch := Patch{Search: "needle", Replacement: "needle\nthread"}

	tests := []struct {
		name          string
		content       string
		expected      string
		expectedFound bool
	}{
		{
			name:          "single occurrence",
			content:       "a\nneedle\nb\n",
			expected:      "a\nneedle\nthread\nb\n",
			expectedFound: true,
		},
		{
			name:          "every occurrence is replaced",
			content:       "needle needle",
			expected:      "needle\nthread needle\nthread",
			expectedFound: true,
		},
		{
			name:          "no occurrence",
			content:       "a\nb\n",
			expected:      "a\nb\n",
			expectedFound: false,
		},
		{
			name:          "match is case sensitive",
			content:       "Needle",
			expected:      "Needle",
			expectedFound: false,
		},
		{
			name:          "search is literal",
			content:       "n..dle",
			expected:      "n..dle",
			expectedFound: false,
		},
		{
			name:          "empty content",
			content:       "",
			expected:      "",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := patch.Apply(tt.content)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedFound, found)
		})
	}
}

func TestPatch_ApplyDashboardMappingExample(t *testing.T) {
	patch, err := LoadDashboardMappingPatch()
	require.NoError(t, err)

	result, found := patch.Apply("x\n" + dashboardSearch + "\ny\n")

	assert.True(t, found)
	assert.Equal(t, "x\n"+dashboardReplacement+"\ny\n", result)
}

func TestPatch_ApplyIsNotIdempotent(t *testing.T) {
	patch, err := LoadDashboardMappingPatch()
	require.NoError(t, err)

	once, found := patch.Apply(dashboardSearch + "\n")
	require.True(t, found)

	// The replacement keeps the search line, so every pass inserts the block again.
	twice, foundAgain := patch.Apply(once)

	assert.True(t, foundAgain)
	assert.Equal(t, strings.Replace(dashboardReplacement, dashboardSearch, dashboardReplacement, 1)+"\n", twice)
	assert.Equal(t, 2, strings.Count(twice, "amount: cargo.price,"))
}

func TestPatch_StatusMessage(t *testing.T) {
	patch := Patch{FoundMessage: "fixed", NotFoundMessage: "missing"}

	assert.Equal(t, "fixed", patch.StatusMessage(true))
	assert.Equal(t, "missing", patch.StatusMessage(false))
}
