package git

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// RefLine is one entry of a ref listing
type RefLine struct {
	Hash    string
	RefName string
}

// ParseRefListing lazily yields the entries of ls-remote style output, one
// "<hash><whitespace><refname>" per line. Blank and malformed lines are skipped.
func ParseRefListing(output string) iter.Seq[RefLine] {
	return func(yield func(RefLine) bool) {
		for line := range strings.Lines(output) {
			fields := strings.Fields(line)
			if len(fields) != 2 {
				continue
			}
			if !yield(RefLine{Hash: fields[0], RefName: fields[1]}) {
				return
			}
		}
	}
}

// refPrefixes is checked in order; the first matching prefix wins
var refPrefixes = []struct {
	prefix string
	kind   RefKind
}{
	{"refs/heads/", RefKindBranch},
	{"refs/tags/", RefKindTag},
	{"refs/remotes/", RefKindRemoteTracking},
	{"", RefKindOther},
}

// ClassifyRef returns the kind of a full ref name and the name with the
// kind's prefix removed
func ClassifyRef(refName string) (RefKind, string) {
	for _, p := range refPrefixes {
		if strings.HasPrefix(refName, p.prefix) {
			return p.kind, refName[len(p.prefix):]
		}
	}
	return RefKindOther, refName
}

// newCommitPattern only matches at the start of the output, where git
// prints the summary line
var newCommitPattern = regexp.MustCompile(`^\[(?:detached HEAD|\S+)\s+(?:\(root-commit\)\s+)?(\S+)\]`)

// ParseNewCommit extracts the hash of the commit reported by `git commit`,
// e.g. "[main (root-commit) abc1234] message" or "[detached HEAD abc1234] message".
// ok is false when the output does not report a new commit.
func ParseNewCommit(output string) (hash string, ok bool) {
	match := newCommitPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ParseBranchListing returns the branch names printed by `git branch`.
// The current-branch and other-worktree markers are dropped, as is the
// detached HEAD pseudo-entry.
func ParseBranchListing(output string) []string {
	var names []string
	for line := range strings.Lines(output) {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "*")
		name = strings.TrimPrefix(name, "+")
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ParseFileListing returns one path per non-empty line of ls-files output.
// Only the line terminator is removed, so leading and trailing spaces in a
// name survive. Names git C-quotes (core.quotePath) are unquoted.
func ParseFileListing(output string) []string {
	files := []string{}
	for line := range strings.Lines(output) {
		f := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if f == "" {
			continue
		}
		if strings.HasPrefix(f, `"`) {
			if unquoted, err := strconv.Unquote(f); err == nil {
				f = unquoted
			}
		}
		files = append(files, f)
	}
	return files
}
