// Package strength scores passwords for use with byteseal containers.
//
// zxcvbn provides the base score, which is then capped by a stricter ruleset so short or low diversity passwords can't score highly.
package strength

import (
	"math"
	"strings"
	"unicode"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	// MinLength is the shortest password that will be scored.
	MinLength = 12
	// MaxSegments is the length of the strength meter.
	MaxSegments = 10
	// minScore is the lowest zxcvbn score that will be accepted for locking.
	minScore = 2
)

// Result is the outcome of analyzing a password.
type Result struct {
	// Score is the zxcvbn score, from 0 to 4.
	Score int
	// Segments is the number of lit meter segments, from 0 to MaxSegments.
	Segments int
	Label    string
	// Bits is the estimated entropy in bits.
	Bits int
	// Tip is a suggestion for improving the password, empty when there's nothing to suggest.
	Tip    string
	length int
}

// Acceptable reports whether the password is strong enough to lock a file with.
func (r Result) Acceptable() bool {
	return r.length >= MinLength && r.Score >= minScore
}

type ceiling struct {
	partial int
	full    int
}

var (
	ceilings = [...]ceiling{
		{partial: 1, full: 2},
		{partial: 2, full: 3},
		{partial: 4, full: 5},
		{partial: 6, full: 8},
		{partial: 7, full: 10},
	}
	labels = [MaxSegments + 1]string{
		"",
		"Very Weak",
		"Very Weak",
		"Weak",
		"Weak",
		"Fair",
		"Fair",
		"Good",
		"Strong",
		"Strong",
		"Excellent",
	}
	keyboardWalks = []string{
		"qwerty", "qwert", "werty", "asdfg", "asdf", "zxcvb", "zxcv",
		"abcde", "abcd", "12345", "23456", "34567", "98765", "11111",
		"aaaaa", "00000", "password", "letmein", "iloveyou",
	}
)

// Analyze scores the password.
func Analyze(pw string) Result {
	length := len([]rune(pw))
	if length == 0 {
		return Result{}
	}
	if length < MinLength {
		return Result{
			Label:  "Too Short",
			Tip:    "Use at least 12 characters",
			length: length,
		}
	}

	match := zxcvbn.PasswordStrength(pw, nil)
	score := min(max(match.Score, 0), len(ceilings)-1)
	ceil := ceilings[score]
	segs := ceil.partial
	if classCount(pw) == 4 {
		segs = ceil.full
	}
	if hasKeyboardWalk(pw) {
		segs = max(1, segs-1)
	}
	if hasRepeats(pw) {
		segs = max(1, segs-1)
	}

	return Result{
		Score:    score,
		Segments: segs,
		Label:    labels[segs],
		Bits:     int(math.Round(match.Entropy)),
		Tip:      tip(pw),
		length:   length,
	}
}

func tip(pw string) string {
	switch {
	case !hasClass(pw, unicode.IsUpper):
		return "Add uppercase letters"
	case !hasClass(pw, unicode.IsDigit):
		return "Add numbers"
	case !hasClass(pw, isSymbol):
		return "Add symbols like !@#$%"
	case hasKeyboardWalk(pw):
		return `Avoid keyboard patterns like "qwerty" or "1234"`
	case hasRepeats(pw):
		return "Avoid repeated characters"
	default:
		return ""
	}
}

func isSymbol(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func hasClass(pw string, class func(rune) bool) bool {
	return strings.IndexFunc(pw, class) >= 0
}

func classCount(pw string) int {
	n := 0
	for _, class := range []func(rune) bool{unicode.IsLower, unicode.IsUpper, unicode.IsDigit, isSymbol} {
		if hasClass(pw, class) {
			n++
		}
	}
	return n
}

func hasKeyboardWalk(pw string) bool {
	lower := strings.ToLower(pw)
	for _, walk := range keyboardWalks {
		if strings.Contains(lower, walk) {
			return true
		}
	}
	return false
}

// hasRepeats reports whether any character occurs three or more times in a row.
func hasRepeats(pw string) bool {
	var (
		prev rune = -1
		run  int
	)
	for _, r := range pw {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
			continue
		}
		prev, run = r, 1
	}
	return false
}
