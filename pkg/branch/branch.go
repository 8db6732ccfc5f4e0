// Package branch derives and sanitizes branch names.
package branch

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSlugLength caps branch names derived from descriptions.
const MaxSlugLength = 60

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)

	refInvalidChars     = regexp.MustCompile(`[\x00-\x1F\x7F ~^:?*\[\]#]`)
	refConsecutiveDots  = regexp.MustCompile(`\.\.+`)
	refConsecutiveSlash = regexp.MustCompile(`/+`)
)

// FromDescription derives a branch name from a free-form change
// description: lowercased, hyphen-separated, clipped to MaxSlugLength,
// then validated against git's reference rules.
func FromDescription(description string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(description))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = strings.Trim(slug[:MaxSlugLength], "-")
	}

	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrBranchNameEmptyAfterSanitization, description)
	}

	return Sanitize(slug)
}

// Sanitize sanitizes a branch name according to Git's reference naming
// rules: no control characters, space, ~, ^, :, ?, *, [, consecutive
// dots, leading dash or @{ sequence; slash-separated grouping is kept
// but runs of slashes collapse and leading/trailing separators drop.
func Sanitize(branchName string) (string, error) {
	if branchName == "" {
		return "", ErrBranchNameEmpty
	}

	if branchName == "@" {
		return "", ErrBranchNameSingleAt
	}

	if strings.Contains(branchName, "@{") {
		return "", ErrBranchNameContainsAtBrace
	}

	if strings.Contains(branchName, "\\") {
		return "", ErrBranchNameContainsBackslash
	}

	sanitized := refInvalidChars.ReplaceAllString(branchName, "_")
	sanitized = refConsecutiveDots.ReplaceAllString(sanitized, "_")
	sanitized = refConsecutiveSlash.ReplaceAllString(sanitized, "/")
	sanitized = strings.Trim(sanitized, "/._")
	sanitized = strings.TrimPrefix(sanitized, "-")

	// Filesystem ref length limit.
	if len(sanitized) > 255 {
		sanitized = strings.TrimRight(sanitized[:255], "._/")
	}

	if sanitized == "" {
		return "", fmt.Errorf("%w: %q", ErrBranchNameEmptyAfterSanitization, branchName)
	}

	return sanitized, nil
}
