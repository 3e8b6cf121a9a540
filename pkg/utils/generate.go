package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING REFERENCE ====================

// GenerateBookingReference creates a human-readable booking reference.
// Format: RAIL-YYYYMMDD-NNNNNN. Uniqueness is re-checked against the
// store by the caller before use.
func GenerateBookingReference() string {
	now := time.Now()

	datePart := now.Format("20060102")
	randomPart := fmt.Sprintf("%06d", rand.Intn(1000000))

	return fmt.Sprintf("RAIL-%s-%s", datePart, randomPart)
}
