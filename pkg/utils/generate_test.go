package utils

import (
	"regexp"
	"testing"
)

func TestReferenceFormats(t *testing.T) {
	tests := []struct {
		name    string
		gen     func() string
		pattern string
	}{
		{"booking", GenerateBookingReference, `^JH\d{13}[A-Z0-9]{4}$`},
		{"ticket", GenerateTicketReference, `^TKT\d{13}[A-Z0-9]{6}$`},
		{"session", GenerateSessionReference, `^CHAT_\d{13}_[a-z0-9]{9}$`},
		{"payment", GeneratePaymentReference, `^PAY\d{13}[A-Z0-9]{6}$`},
	}

	for _, tt := range tests {
		re := regexp.MustCompile(tt.pattern)
		ref := tt.gen()
		if !re.MatchString(ref) {
			t.Errorf("%s reference %q does not match %s", tt.name, ref, tt.pattern)
		}
	}
}

func TestReferenceUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		ref := GenerateSessionReference()
		if seen[ref] {
			t.Fatalf("duplicate session reference %q after %d generations", ref, i)
		}
		seen[ref] = true
	}
}
