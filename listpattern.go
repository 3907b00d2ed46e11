package ringviz

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ResolveList matches a list pattern against a candidate universe and
// returns the matching names, ordered by their captured groups (see
// compareCaptures). A reversed pattern returns the ordering flipped.
//
// Matching runs in two stages for performance: a coarse prefilter over the
// universe (literal-prefix check where the pattern allows it, unanchored
// search otherwise), then a full anchored match that extracts capture
// groups. An empty final match set is a hard error naming the pattern.
func ResolveList(lp ListPattern, universe []string) ([]string, error) {
	re, err := regexp.Compile(lp.Pattern)
	if err != nil {
		return nil, fmt.Errorf("ringviz: bad list pattern %q: %w", lp.Pattern, err)
	}
	anchored, err := regexp.Compile(`^(?:` + lp.Pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("ringviz: bad list pattern %q: %w", lp.Pattern, err)
	}

	// Stage 1: cheap prefilter.
	prefix, complete := re.LiteralPrefix()
	coarse := universe[:0:0]
	for _, name := range universe {
		switch {
		case complete:
			if strings.Contains(name, prefix) {
				coarse = append(coarse, name)
			}
		case prefix != "":
			if strings.HasPrefix(name, prefix) {
				coarse = append(coarse, name)
			}
		default:
			if re.MatchString(name) {
				coarse = append(coarse, name)
			}
		}
	}

	// Stage 2: anchored match with capture extraction.
	type match struct {
		name     string
		captures []string
	}
	var matches []match
	for _, name := range coarse {
		sub := anchored.FindStringSubmatch(name)
		if sub == nil {
			continue
		}
		captures := sub[1:]
		if anchored.NumSubexp() == 0 {
			// A pattern without capture groups still orders its matches
			// naturally: the name decomposes into digit and non-digit
			// runs and each run is one implicit capture, so chr2 sorts
			// before chr10.
			captures = splitRuns(name)
		}
		matches = append(matches, match{name: name, captures: captures})
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: pattern %q", ErrNoMatch, lp.Pattern)
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		if c := compareCaptures(a.captures, b.captures); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	if lp.Reversed {
		slices.Reverse(names)
	}
	return names, nil
}

// compareCaptures orders two capture tuples. Capture pairs are compared in
// order; a pair compares numerically when both sides parse as real numbers
// (leading zeros are insignificant, a missing value counts as zero), else
// as plain strings. The first pair with a nonzero comparison decides.
func compareCaptures(a, b []string) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var av, bv string
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if c := compareCapture(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// compareCapture compares one capture pair, numerically when possible.
func compareCapture(a, b string) int {
	af, aok := parseCaptureNumber(a)
	bf, bok := parseCaptureNumber(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// parseCaptureNumber parses a capture as a real number. An empty capture
// (an unparticipating optional group) counts as zero.
func parseCaptureNumber(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(f) {
		return 0, false
	}
	return f, true
}

// splitRuns decomposes a name into maximal digit and non-digit runs.
func splitRuns(name string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(name); i++ {
		if i == len(name) || isDigit(name[i]) != isDigit(name[start]) {
			runs = append(runs, name[start:i])
			start = i
		}
	}
	return runs
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
