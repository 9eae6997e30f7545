package credential

import "testing"

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"farmer@test.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"missing-domain@", false},
		{"@missing-local.com", false},
		{"no-dot@domain", false},
		{"two@@signs.com", false},
		{"spaces in@local.com", false},
		{"trailing@space.com ", false},
	}

	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
		reason   Reason
	}{
		{"accepted", "Password1", true, ReasonNone},
		{"accepted with symbols", "Str0ng-enough!", true, ReasonNone},
		{"seven chars", "Abcdef1", false, ReasonTooShort},
		{"empty", "", false, ReasonTooShort},
		{"no uppercase", "password123", false, ReasonMissingComplexity},
		{"no lowercase", "PASSWORD123", false, ReasonMissingComplexity},
		{"no digit", "PasswordOnly", false, ReasonMissingComplexity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check := CheckPassword(tc.password)
			if check.OK != tc.ok {
				t.Fatalf("CheckPassword(%q).OK = %v, want %v", tc.password, check.OK, tc.ok)
			}
			if check.Reason != tc.reason {
				t.Fatalf("CheckPassword(%q).Reason = %q, want %q", tc.password, check.Reason, tc.reason)
			}
		})
	}
}

func TestCheckPasswordCountsRunes(t *testing.T) {
	// Seven multi-byte runes plus one ASCII digit is still under the limit
	// measured in runes, even though the byte length is well past it.
	if check := CheckPassword("日本語日本語1"); check.Reason != ReasonTooShort {
		t.Fatalf("expected too-short for 7-rune password, got %+v", check)
	}
}
