// Package usecases contains the application business logic.
// This package orchestrates domain entities and interfaces to fulfill use cases.
package usecases

import (
	"path"
	"regexp"
	"strings"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// testFilePattern matches test/spec filename infixes like app.test.js or
// app.spec.ts, where the marker appears before the extension.
var testFilePattern = regexp.MustCompile(`\.(test|spec)\.`)

// ClassifyChange maps an ordered set of changed paths to one semantic
// category. Paths are visited in input order and the rules are evaluated in
// a fixed order for each path; the first match wins. When nothing matches
// (including an empty input), the fallback is CategoryUpdate.
func ClassifyChange(paths []string) domain.ChangeCategory {
	for _, p := range paths {
		switch {
		case strings.HasPrefix(p, "skills/"):
			return domain.CategorySkill
		case testFilePattern.MatchString(p):
			return domain.CategoryTest
		case isDocsPath(p):
			return domain.CategoryDocs
		}
	}
	return domain.CategoryUpdate
}

// isDocsPath reports documentation changes: anything under docs/, or a file
// whose name (minus extension) is exactly README or CHANGELOG.
func isDocsPath(p string) bool {
	if strings.HasPrefix(p, "docs/") {
		return true
	}
	base := path.Base(p)
	name := strings.TrimSuffix(base, path.Ext(base))
	return name == "README" || name == "CHANGELOG"
}
