package cmd

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/style"
)

// closest returns the candidate with the smallest edit distance to name.
func closest(name string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	}), true
}

func errUnknown(kind, name string, candidates []string) error {
	msg := fmt.Sprintf("unknown %s %s", kind, style.Fg(color.Red)(name))
	if suggestion, ok := closest(name, candidates); ok {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(suggestion))
	}
	return errors.New(msg)
}
