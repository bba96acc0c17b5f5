package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// release is a parsed tag such as v0.3.0, 0.4.0-rc.1 or 1.0.0+build.5.
type release struct {
	core       [3]int
	prerelease []string
}

func parseRelease(tag string) (release, error) {
	var r release

	text := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	text, _, _ = strings.Cut(text, "+")
	text, pre, hasPre := strings.Cut(text, "-")

	parts := strings.Split(text, ".")
	if len(parts) != len(r.core) {
		return r, fmt.Errorf("invalid version %q", tag)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return r, fmt.Errorf("invalid version %q", tag)
		}
		r.core[i] = n
	}

	if hasPre {
		r.prerelease = strings.Split(pre, ".")
		if lo.Contains(r.prerelease, "") {
			return r, fmt.Errorf("invalid pre-release in %q", tag)
		}
	}

	return r, nil
}

// comparePrerelease orders identifiers the semver way: numeric ones by value and
// below alphanumeric ones, shorter lists first when all shared ones are equal.
// A release without identifiers is newer than any pre-release of it.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		an, aErr := strconv.Atoi(a[i])
		bn, bErr := strconv.Atoi(b[i])

		switch {
		case aErr == nil && bErr == nil:
			if c := compareInt(an, bn); c != 0 {
				return c
			}
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			if c := strings.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
	}

	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Compare orders two release tags. The result is 1 if a is newer, -1 if b is
// newer and 0 if they name the same release. Build metadata is ignored.
func Compare(a, b string) (int, error) {
	ar, err := parseRelease(a)
	if err != nil {
		return 0, err
	}

	br, err := parseRelease(b)
	if err != nil {
		return 0, err
	}

	for i := range ar.core {
		if c := compareInt(ar.core[i], br.core[i]); c != 0 {
			return c, nil
		}
	}

	return comparePrerelease(ar.prerelease, br.prerelease), nil
}
