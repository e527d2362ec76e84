package usecases

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// nonAlnum strips every character outside [a-z0-9] from a slug candidate.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// GenerateBranchName composes a collision-resistant deterministic branch
// name of the form {category}/{YYYYMMDD}-{slug}. A non-empty override is
// returned verbatim and all other inputs are ignored. The date is captured
// once per call from now, using the local calendar.
//
// The slug is derived from the first changed path: its filename (without
// extension) when that survives slugging, else the last segment of its
// containing directory, else the literal "update".
func GenerateBranchName(category domain.ChangeCategory, paths []string, override string, now time.Time) string {
	if override != "" {
		return override
	}

	date := now.Format("20060102")

	if len(paths) > 0 && paths[0] != "" {
		file, dir := splitPath(paths[0])

		if s := slugify(trimExt(file)); s != "" {
			return fmt.Sprintf("%s/%s-%s", category, date, s)
		}
		if s := slugify(lastSegment(dir)); s != "" {
			return fmt.Sprintf("%s/%s-%s", category, date, s)
		}
	}

	return fmt.Sprintf("%s/%s-update", category, date)
}

// splitPath separates a repository path into its filename component (the
// text after the last slash, empty for directory paths like "docs/") and
// the directory part before it.
func splitPath(p string) (file, dir string) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return p, ""
	}
	return p[idx+1:], p[:idx]
}

// trimExt drops the extension, keeping dotfiles like ".gitignore" whole.
func trimExt(file string) string {
	idx := strings.LastIndex(file, ".")
	if idx <= 0 {
		return file
	}
	return file[:idx]
}

// lastSegment returns the final path segment of dir.
func lastSegment(dir string) string {
	if dir == "" {
		return ""
	}
	segments := strings.Split(dir, "/")
	return segments[len(segments)-1]
}

// slugify lower-cases s and strips everything outside [a-z0-9].
func slugify(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}
