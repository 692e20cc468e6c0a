// Package valueobject defines immutable value types of the domain layer.
package valueobject

import (
	"strings"
	"unicode/utf16"
)

// StrengthLevel is the closed set of password strength buckets.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

const (
	// MinPasswordLength is the length below which a password is rejected outright.
	MinPasswordLength = 8
	// RecommendedPasswordLength earns an extra point and silences the length advisory.
	RecommendedPasswordLength = 12
	// MaxStrengthScore is the score at which the strength meter is full.
	MaxStrengthScore = 5
)

// Feedback messages, in the order the checks run.
const (
	FeedbackTooShort       = "Password must be at least 8 characters"
	FeedbackTooCommon      = "This password is too common and easily guessable"
	FeedbackMixedCase      = "Use both uppercase and lowercase letters"
	FeedbackNeedsDigit     = "Include at least one number"
	FeedbackNeedsSpecial   = "Include at least one special character (!@#$%^&*)"
	FeedbackLength         = "Consider using 12+ characters for better security"
	FeedbackRepeating      = "Avoid repeating characters"
	FeedbackSequential     = "Avoid sequential characters"
	FeedbackMeetsAll       = "Password meets security requirements"
	FeedbackGoodButShort   = "Good password! Consider 12+ characters for maximum security."
	feedbackLengthFragment = "12+ characters"
)

// commonPasswords is matched as lowercase substrings, not exact values.
var commonPasswords = [...]string{
	"password", "password123", "12345678", "qwerty", "abc123",
	"111111", "letmein", "welcome", "monkey", "dragon",
	"master", "sunshine", "princess", "football", "shadow",
	"123456", "123456789", "1234567", "12345", "123123",
	"password1", "qwerty123", "iloveyou", "admin", "welcome1",
}

// PasswordStrength is the verdict produced by EvaluatePassword.
type PasswordStrength struct {
	IsValid  bool
	Score    int
	Feedback []string
	Strength StrengthLevel
}

// EvaluatePassword scores a candidate password. It never fails: every input,
// including the empty string, yields a verdict with at least one feedback line.
func EvaluatePassword(password string) PasswordStrength {
	length := passwordLength(password)
	if length < MinPasswordLength {
		return rejected(FeedbackTooShort)
	}
	if isCommonPassword(password) {
		return rejected(FeedbackTooCommon)
	}

	classes := classify(password)
	score := 0
	feedback := make([]string, 0, 6)

	if length >= MinPasswordLength {
		score++
	}
	if length >= RecommendedPasswordLength {
		score++
	}
	if classes.lower && classes.upper {
		score++
	}
	if classes.digit {
		score++
	}
	if classes.special {
		score++
	}

	if !classes.lower || !classes.upper {
		feedback = append(feedback, FeedbackMixedCase)
	}
	if !classes.digit {
		feedback = append(feedback, FeedbackNeedsDigit)
	}
	if !classes.special {
		feedback = append(feedback, FeedbackNeedsSpecial)
	}
	if length < RecommendedPasswordLength {
		feedback = append(feedback, FeedbackLength)
	}

	if hasRepeatedRun(password) {
		feedback = append(feedback, FeedbackRepeating)
		score--
	}
	if hasSequentialRun(password) {
		feedback = append(feedback, FeedbackSequential)
		score--
	}

	isValid := score >= 3 && classes.lower && classes.upper && classes.digit

	if isValid && len(feedback) == 1 && strings.Contains(feedback[0], feedbackLengthFragment) {
		feedback[0] = FeedbackGoodButShort
	}
	if len(feedback) == 0 {
		feedback = append(feedback, FeedbackMeetsAll)
	}

	return PasswordStrength{
		IsValid:  isValid,
		Score:    score,
		Feedback: feedback,
		Strength: StrengthFromScore(score),
	}
}

// StrengthFromScore maps a score onto its bucket.
func StrengthFromScore(score int) StrengthLevel {
	switch {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthFair
	case score == 4:
		return StrengthGood
	default:
		return StrengthStrong
	}
}

// Label returns the display label of the bucket.
func (s StrengthLevel) Label() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthFair:
		return "Fair"
	case StrengthGood:
		return "Good"
	case StrengthStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Color returns the meter colour token for the bucket.
func (s StrengthLevel) Color() string {
	switch s {
	case StrengthWeak:
		return "red"
	case StrengthFair:
		return "yellow"
	case StrengthGood:
		return "blue"
	case StrengthStrong:
		return "green"
	default:
		return "gray"
	}
}

// MeterFraction is score/5 clamped to [0, 1].
func (p PasswordStrength) MeterFraction() float64 {
	if p.Score <= 0 {
		return 0
	}
	if p.Score >= MaxStrengthScore {
		return 1
	}
	return float64(p.Score) / MaxStrengthScore
}

// Message joins the feedback into a single sentence list for form errors.
func (p PasswordStrength) Message() string {
	return strings.Join(p.Feedback, ". ")
}

func rejected(reason string) PasswordStrength {
	return PasswordStrength{
		IsValid:  false,
		Score:    0,
		Feedback: []string{reason},
		Strength: StrengthWeak,
	}
}

// passwordLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane (most emoji) counts as two.
func passwordLength(password string) int {
	n := 0
	for _, r := range password {
		n += utf16.RuneLen(r)
	}
	return n
}

func isCommonPassword(password string) bool {
	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lowered, common) {
			return true
		}
	}
	return false
}

type characterClasses struct {
	lower   bool
	upper   bool
	digit   bool
	special bool
}

// classify only treats ASCII letters and digits as such; any other rune is special.
func classify(password string) characterClasses {
	var c characterClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}

// hasRepeatedRun reports three or more identical UTF-16 code units in a row.
// Line terminators break a run and never form one.
func hasRepeatedRun(password string) bool {
	var prev uint16
	run := 0
	for _, u := range utf16.Encode([]rune(password)) {
		if isLineTerminator(rune(u)) {
			run = 0
			continue
		}
		if run > 0 && u == prev {
			run++
		} else {
			prev = u
			run = 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

// hasSequentialRun reports an ascending three-character run inside a-z or 0-9.
func hasSequentialRun(password string) bool {
	runes := []rune(password)
	for i := 0; i+2 < len(runes); i++ {
		a, b, c := foldASCII(runes[i]), foldASCII(runes[i+1]), foldASCII(runes[i+2])
		if b != a+1 || c != a+2 {
			continue
		}
		if (a >= 'a' && c <= 'z') || (a >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
