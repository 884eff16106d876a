package order

import (
	"math/rand/v2"
	"strings"
	"time"
)

// numberAlphabet is the uniform 36-symbol alphabet the suffix draws from.
const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// numberSuffixLength is how many alphabet characters follow the date segment.
const numberSuffixLength = 12

// GenerateNumber produces an order number of the form
// <YYYYMMDD>-<12 uppercase alphanumerics>, where the date segment is the UTC
// date portion of the submission time. Uniqueness is probabilistic (36^12
// combinations per day); the database's unique index catches the rest.
func GenerateNumber(submittedAt time.Time) string {
	var b strings.Builder
	b.Grow(len("20060102-") + numberSuffixLength)

	b.WriteString(submittedAt.UTC().Format("20060102"))
	b.WriteByte('-')
	for range numberSuffixLength {
		b.WriteByte(numberAlphabet[rand.IntN(len(numberAlphabet))]) //nolint:gosec // not a secret
	}

	return b.String()
}
