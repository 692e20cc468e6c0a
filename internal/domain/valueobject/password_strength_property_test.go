package valueobject

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEvaluatePasswordProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("short passwords are rejected with a single reason", prop.ForAll(
		func(runes []rune) bool {
			got := EvaluatePassword(string(runes))
			return reflect.DeepEqual(got, rejected(FeedbackTooShort))
		},
		gen.IntRange(0, MinPasswordLength-1).FlatMap(func(v interface{}) gopter.Gen {
			return gen.SliceOfN(v.(int), gen.RuneRange(' ', 0xD7FF))
		}, reflect.TypeOf([]rune{})),
	))

	properties.Property("astral characters count as two toward the length gate", prop.ForAll(
		func(runes []rune) bool {
			got := EvaluatePassword(string(runes))
			return len(got.Feedback) > 0 && got.Feedback[0] != FeedbackTooShort
		},
		gen.SliceOfN(MinPasswordLength/2, gen.RuneRange(0x1F300, 0x1F5FF)),
	))

	properties.Property("evaluation is deterministic", prop.ForAll(
		func(password string) bool {
			return reflect.DeepEqual(EvaluatePassword(password), EvaluatePassword(password))
		},
		gen.AnyString(),
	))

	properties.Property("strength follows score and feedback is never empty", prop.ForAll(
		func(password string) bool {
			got := EvaluatePassword(password)
			return got.Strength == StrengthFromScore(got.Score) &&
				len(got.Feedback) > 0 &&
				got.Score >= -2 && got.Score <= MaxStrengthScore
		},
		gen.AnyString(),
	))

	properties.Property("valid passwords carry every required class", prop.ForAll(
		func(password string) bool {
			got := EvaluatePassword(password)
			if !got.IsValid {
				return true
			}
			classes := classify(password)
			return got.Score >= 3 &&
				passwordLength(password) >= MinPasswordLength &&
				classes.lower && classes.upper && classes.digit
		},
		gen.AnyString(),
	))

	properties.Property("denylisted substrings always reject", prop.ForAll(
		func(prefix, common, suffix string) bool {
			password := prefix + common + suffix
			if passwordLength(password) < MinPasswordLength {
				return true
			}
			return reflect.DeepEqual(EvaluatePassword(password), rejected(FeedbackTooCommon))
		},
		gen.AlphaString(),
		gen.OneConstOf("password", "qwerty", "letmein", "Sunshine", "ADMIN", "123456"),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
