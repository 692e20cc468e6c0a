package valueobject

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected PasswordStrength
	}{
		{
			name:     "empty password",
			password: "",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooShort}},
		},
		{
			name:     "seven characters",
			password: "Ab1!xYz",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooShort}},
		},
		{
			name:     "seven BMP characters are still too short",
			password: "密码密码密码密",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooShort}},
		},
		{
			name:     "common substring with mixed case",
			password: "myPassword123",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooCommon}},
		},
		{
			name:     "common substring in the middle",
			password: "Xx9!QWERTYzz",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooCommon}},
		},
		{
			name:     "sequential tail costs one point",
			password: "Tr0ub4dor&3xyz",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    4,
				Strength: StrengthGood,
				Feedback: []string{FeedbackSequential},
			},
		},
		{
			name:     "long password with every class",
			password: "Tr0ub4dor&3xqz",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    5,
				Strength: StrengthStrong,
				Feedback: []string{FeedbackMeetsAll},
			},
		},
		{
			name:     "lowercase alphabet run",
			password: "abcdefgh",
			expected: PasswordStrength{
				Score:    0,
				Strength: StrengthWeak,
				Feedback: []string{
					FeedbackMixedCase,
					FeedbackNeedsDigit,
					FeedbackNeedsSpecial,
					FeedbackLength,
					FeedbackSequential,
				},
			},
		},
		{
			name:     "both penalties drive the score negative",
			password: "aaabcxyz",
			expected: PasswordStrength{
				Score:    -1,
				Strength: StrengthWeak,
				Feedback: []string{
					FeedbackMixedCase,
					FeedbackNeedsDigit,
					FeedbackNeedsSpecial,
					FeedbackLength,
					FeedbackRepeating,
					FeedbackSequential,
				},
			},
		},
		{
			name:     "valid short password gets the friendly length hint",
			password: "Xk9#mPq2wLz",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    4,
				Strength: StrengthGood,
				Feedback: []string{FeedbackGoodButShort},
			},
		},
		{
			name:     "fair and valid without special character",
			password: "Kx7mQp2z",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    3,
				Strength: StrengthFair,
				Feedback: []string{FeedbackNeedsSpecial, FeedbackLength},
			},
		},
		{
			name:     "good score without digit is still invalid",
			password: "Kx#mQp!zRtwv",
			expected: PasswordStrength{
				IsValid:  false,
				Score:    4,
				Strength: StrengthGood,
				Feedback: []string{FeedbackNeedsDigit},
			},
		},
		{
			name:     "non-ascii letters count as special characters",
			password: "ÄÖÜäöüßé",
			expected: PasswordStrength{
				Score:    2,
				Strength: StrengthWeak,
				Feedback: []string{FeedbackMixedCase, FeedbackNeedsDigit, FeedbackLength},
			},
		},
		{
			name:     "four emoji reach the length gate as eight code units",
			password: "😀😀😀😀",
			expected: PasswordStrength{
				Score:    1,
				Strength: StrengthWeak,
				Feedback: []string{FeedbackMixedCase, FeedbackNeedsDigit, FeedbackLength},
			},
		},
		{
			name:     "repeated emoji are not repeated code units",
			password: "Ab1😀😀😀😀😀",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    5,
				Strength: StrengthStrong,
				Feedback: []string{FeedbackMeetsAll},
			},
		},
		{
			name:     "three emoji alone stay too short",
			password: "😀😀😀",
			expected: PasswordStrength{Score: 0, Strength: StrengthWeak, Feedback: []string{FeedbackTooShort}},
		},
		{
			name:     "uppercase sequence is case-insensitive",
			password: "Qx7!DEFmz",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    3,
				Strength: StrengthFair,
				Feedback: []string{FeedbackLength, FeedbackSequential},
			},
		},
		{
			name:     "digit sequence",
			password: "Zq!w789Kt",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    3,
				Strength: StrengthFair,
				Feedback: []string{FeedbackLength, FeedbackSequential},
			},
		},
		{
			name:     "repeated newlines are not a repeated run",
			password: "Kq7!\n\n\nzXw",
			expected: PasswordStrength{
				IsValid:  true,
				Score:    4,
				Strength: StrengthGood,
				Feedback: []string{FeedbackGoodButShort},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluatePassword(tt.password)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("EvaluatePassword(%q) mismatch (-want +got):\n%s", tt.password, diff)
			}
		})
	}
}

func TestEvaluatePassword_RepetitionPenalty(t *testing.T) {
	repeated := EvaluatePassword("aaabbbccc1!")
	plain := EvaluatePassword("aqbwcexrt1!")

	if repeated.Score != plain.Score-1 {
		t.Errorf("expected repeated score %d, got %d", plain.Score-1, repeated.Score)
	}
	if repeated.Feedback[len(repeated.Feedback)-1] != FeedbackRepeating {
		t.Errorf("expected last feedback %q, got %v", FeedbackRepeating, repeated.Feedback)
	}
}

func TestEvaluatePassword_LengthBonus(t *testing.T) {
	short := EvaluatePassword("Xk9#mPq2wLz")
	long := EvaluatePassword("Xk9#mPq2wLzR")

	if long.Score != short.Score+1 {
		t.Errorf("expected 12-character score %d, got %d", short.Score+1, long.Score)
	}
	if long.Strength != StrengthStrong {
		t.Errorf("expected strong, got %s", long.Strength)
	}
}

func TestEvaluatePassword_ReturnsFreshFeedback(t *testing.T) {
	first := EvaluatePassword("abcdefgh")
	first.Feedback[0] = "mutated"

	second := EvaluatePassword("abcdefgh")
	if second.Feedback[0] != FeedbackMixedCase {
		t.Errorf("expected fresh feedback, got %q", second.Feedback[0])
	}
}

func TestStrengthFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected StrengthLevel
	}{
		{score: -2, expected: StrengthWeak},
		{score: -1, expected: StrengthWeak},
		{score: 0, expected: StrengthWeak},
		{score: 2, expected: StrengthWeak},
		{score: 3, expected: StrengthFair},
		{score: 4, expected: StrengthGood},
		{score: 5, expected: StrengthStrong},
		{score: 6, expected: StrengthStrong},
	}

	for _, tt := range tests {
		if got := StrengthFromScore(tt.score); got != tt.expected {
			t.Errorf("StrengthFromScore(%d) = %s, want %s", tt.score, got, tt.expected)
		}
	}
}

func TestStrengthLevel_Presentation(t *testing.T) {
	tests := []struct {
		level StrengthLevel
		label string
		color string
	}{
		{StrengthWeak, "Weak", "red"},
		{StrengthFair, "Fair", "yellow"},
		{StrengthGood, "Good", "blue"},
		{StrengthStrong, "Strong", "green"},
		{StrengthLevel("bogus"), "Unknown", "gray"},
	}

	for _, tt := range tests {
		if got := tt.level.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.level, got, tt.label)
		}
		if got := tt.level.Color(); got != tt.color {
			t.Errorf("%s.Color() = %q, want %q", tt.level, got, tt.color)
		}
	}
}

func TestPasswordStrength_MeterFraction(t *testing.T) {
	tests := []struct {
		score    int
		expected float64
	}{
		{score: -1, expected: 0},
		{score: 0, expected: 0},
		{score: 1, expected: 0.2},
		{score: 4, expected: 0.8},
		{score: 5, expected: 1},
		{score: 7, expected: 1},
	}

	for _, tt := range tests {
		got := PasswordStrength{Score: tt.score}.MeterFraction()
		if got != tt.expected {
			t.Errorf("MeterFraction for score %d = %v, want %v", tt.score, got, tt.expected)
		}
	}
}

func TestPasswordStrength_Message(t *testing.T) {
	verdict := EvaluatePassword("Kx7mQp2z")
	expected := "Include at least one special character (!@#$%^&*). Consider using 12+ characters for better security"

	if got := verdict.Message(); got != expected {
		t.Errorf("Message() = %q, want %q", got, expected)
	}
}
