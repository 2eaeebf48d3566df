package utils

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== BUSINESS REFERENCES ====================
//
// Every customer-facing reference is prefix + unix-millis timestamp +
// a crypto-random suffix. A collision needs the same millisecond AND the
// same suffix; the unique column constraint backstops the residual chance.

const (
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateBookingReference creates a booking reference: JH<millis><4 chars>
func GenerateBookingReference() string {
	return fmt.Sprintf("JH%d%s", time.Now().UnixMilli(), randomString(4, upperAlnum))
}

// GenerateTicketReference creates a support ticket reference: TKT<millis><6 chars>
func GenerateTicketReference() string {
	return fmt.Sprintf("TKT%d%s", time.Now().UnixMilli(), randomString(6, upperAlnum))
}

// GenerateSessionReference creates a chat session reference: CHAT_<millis>_<9 chars>
func GenerateSessionReference() string {
	return fmt.Sprintf("CHAT_%d_%s", time.Now().UnixMilli(), randomString(9, lowerAlnum))
}

// GeneratePaymentReference creates a payment conversation reference: PAY<millis><6 chars>
func GeneratePaymentReference() string {
	return fmt.Sprintf("PAY%d%s", time.Now().UnixMilli(), randomString(6, upperAlnum))
}

func randomString(length int, alphabet string) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
