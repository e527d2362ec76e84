package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

func TestParseTokenValue(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{value: "2.2M", want: 2_200_000},
		{value: "228.9K", want: 228_900},
		{value: "1,234", want: 1234},
		{value: "1,234.5K", want: 1_234_500},
		{value: "42", want: 42},
		{value: "0", want: 0},
		{value: "", want: 0},
		{value: "garbage", want: 0},
		{value: "M", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTokenValue(tt.value))
		})
	}
}

func TestParseCostValue(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{value: "$5.63", want: 563},
		{value: "5.63", want: 563},
		{value: "$0.01", want: 1},
		{value: "$120", want: 12000},
		{value: "", want: 0},
		{value: "$abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCostValue(tt.value))
		})
	}
}

func TestParser_Parse_TableOutput(t *testing.T) {
	output := `
┌──────────────────────────────┐
│ Total Cost          $5.63    │
│ Input               2.2M     │
│ Output              228.9K   │
│ Cache Read          1,234    │
│ Cache Write         567      │
└──────────────────────────────┘
`

	snapshot := NewParser().Parse(output)

	assert.Equal(t, domain.UsageSnapshot{
		TotalCostCents: 563,
		InputTokens:    2_200_000,
		OutputTokens:   228_900,
		CacheRead:      1234,
		CacheWrite:     567,
	}, snapshot)
}

func TestParser_Parse_EmptyAndUnrelatedOutput(t *testing.T) {
	assert.Equal(t, domain.UsageSnapshot{}, NewParser().Parse(""))
	assert.Equal(t, domain.UsageSnapshot{}, NewParser().Parse("nothing to see here\n\n"))
}

func TestParser_Parse_InputPrefixDoesNotMatchOtherRows(t *testing.T) {
	// "Input" must match as a row label, not as a substring of e.g.
	// "Cache Read" rows that happen to mention input elsewhere.
	output := "│ Inputs combined 9.9M │\n│ Input 5K │"

	snapshot := NewParser().Parse(output)

	assert.Equal(t, int64(5000), snapshot.InputTokens)
}
