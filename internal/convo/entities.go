package convo

import (
	"regexp"
	"strings"
)

var (
	bookingRefPattern = regexp.MustCompile(`(?i)\bJH[0-9]{4,13}[A-Z0-9]{0,4}\b`)
	phonePattern      = regexp.MustCompile(`(?:(?:\+91|91)\s*)?[6-9][0-9]{9}`)
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	amountPattern     = regexp.MustCompile(`(?i)₹\s*[\d,]+|rs\.?\s*[\d,]+|\d+\s*rupees?`)
)

// ExtractEntities pulls structured values out of free-form visitor text.
// Keys mirror the metadata stored alongside each message: booking_id,
// phone_number, email, amount. Missing entities are simply absent.
func ExtractEntities(text string) map[string]string {
	entities := make(map[string]string)

	if m := bookingRefPattern.FindString(text); m != "" {
		entities["booking_id"] = strings.ToUpper(m)
	}
	if m := phonePattern.FindString(text); m != "" {
		entities["phone_number"] = m
	}
	if m := emailPattern.FindString(text); m != "" {
		entities["email"] = m
	}
	if m := amountPattern.FindString(text); m != "" {
		entities["amount"] = m
	}

	return entities
}
