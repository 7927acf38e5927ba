package orchestrator

import "regexp"

// lockPathPattern matches a single-quoted path ending in the lock-file
// suffix, the way git phrases "Unable to create '/repo/.git/index.lock':
// File exists." This coupling to the client's message phrasing is
// deliberately confined to this file.
var lockPathPattern = regexp.MustCompile(`'([^']+\` + LockFileSuffix + `)'`)

// extractLockPath scans the combined output of a failed commit for a
// lock-file reference and returns the first match, or "" when none is
// found.
func extractLockPath(output []string) string {
	for _, line := range output {
		if m := lockPathPattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}
