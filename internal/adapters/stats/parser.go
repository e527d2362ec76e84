// Package stats provides adapters for fetching and parsing usage/cost
// reports produced by an external tool.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// costPattern extracts the dollar amount from a "Total Cost" line.
var costPattern = regexp.MustCompile(`\$([\d.]+)`)

// tableBorders strips the box-drawing characters the report wraps its
// table rows in.
var tableBorders = strings.NewReplacer("│", "", "├", "", "┤", "")

// Parser extracts the numeric usage fields from the report's table text.
// Lines that fail to parse contribute zero; the parser never errors.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans the report line by line for the cost and token rows.
func (p *Parser) Parse(output string) domain.UsageSnapshot {
	var snapshot domain.UsageSnapshot

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(tableBorders.Replace(raw))
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "Total Cost") && strings.Contains(line, "$"):
			if m := costPattern.FindStringSubmatch(line); m != nil {
				snapshot.TotalCostCents = ParseCostValue(m[1])
			}
		case strings.HasPrefix(line, "Input "):
			if parts := strings.Fields(line); len(parts) >= 2 {
				snapshot.InputTokens = ParseTokenValue(parts[1])
			}
		case strings.HasPrefix(line, "Output "):
			if parts := strings.Fields(line); len(parts) >= 2 {
				snapshot.OutputTokens = ParseTokenValue(parts[1])
			}
		case strings.Contains(line, "Cache Read"):
			if parts := strings.Fields(line); len(parts) > 0 {
				snapshot.CacheRead = ParseTokenValue(parts[len(parts)-1])
			}
		case strings.Contains(line, "Cache Write"):
			if parts := strings.Fields(line); len(parts) > 0 {
				snapshot.CacheWrite = ParseTokenValue(parts[len(parts)-1])
			}
		}
	}

	return snapshot
}

// ParseTokenValue parses a token count like "2.2M", "228.9K" or "1,234"
// into an integer. Unparseable input yields 0.
func ParseTokenValue(value string) int64 {
	if value == "" {
		return 0
	}

	value = strings.ReplaceAll(value, ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(value, "M"):
		multiplier = 1_000_000
		value = strings.TrimSuffix(value, "M")
	case strings.HasSuffix(value, "K"):
		multiplier = 1_000
		value = strings.TrimSuffix(value, "K")
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int64(f * multiplier)
}

// ParseCostValue parses a cost like "$5.63" into integer cents.
// Unparseable input yields 0.
func ParseCostValue(value string) int64 {
	if value == "" {
		return 0
	}

	value = strings.TrimSpace(strings.ReplaceAll(value, "$", ""))

	dollars, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int64(dollars * 100)
}
