package domain

import "regexp"

// MaxProfileIDLength bounds profile ids, which become part of storage keys
const MaxProfileIDLength = 64

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidProfileID reports whether id can name a profile.
// Ids are used verbatim inside storage keys, so separators are rejected.
func ValidProfileID(id string) bool {
	return len(id) > 0 && len(id) <= MaxProfileIDLength && profileIDPattern.MatchString(id)
}
