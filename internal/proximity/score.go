package proximity

import (
	"os"
	"strings"
)

// Separator is the byte paths are split on. It is the host's native separator.
const Separator = os.PathSeparator

const currentDir = "."

// Segments splits path on Separator and drops the empty segments produced by
// leading, trailing or repeated separators.
func Segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == Separator })
}

func isRooted(path string) bool {
	return len(path) > 0 && path[0] == Separator
}

// Score reports how close candidate is to reference.
//
// Every leading candidate segment that matches the reference earns +1. The
// first mismatch, or running out of reference segments, costs -1 and turns
// every later candidate segment into a -1 as well. A candidate that is rooted
// when the reference is not (or the other way round) starts out missed with an
// extra -1. "." segments are ignored on both sides.
func Score(reference, candidate string) int {
	refSegments := Segments(reference)
	next := 0

	score := 0
	missed := isRooted(candidate) != isRooted(reference)
	if missed {
		score--
	}

	for _, seg := range Segments(candidate) {
		if seg == currentDir {
			continue
		}
		if missed {
			score--
			continue
		}

		for next < len(refSegments) && refSegments[next] == currentDir {
			next++
		}
		if next < len(refSegments) && refSegments[next] == seg {
			next++
			score++
			continue
		}

		missed = true
		score--
	}

	return score
}
