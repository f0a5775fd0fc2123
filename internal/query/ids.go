// Package query is the backend-neutral read layer: identifier checks, video
// filters, sort resolution, page math and the projections that turn store
// rows into public shapes. Nothing here touches a database.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viztube/internal/common"
)

// IDNormalizer validates raw identifiers for one store's key space. It
// returns the canonical string form of the key.
type IDNormalizer interface {
	Normalize(field, raw string) (string, error)
}

// NumericIDs accepts base-10 positive integers (relational keys).
type NumericIDs struct{}

func (NumericIDs) Normalize(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", missingID(field)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return "", malformedID(field, raw)
	}
	return strconv.FormatUint(n, 10), nil
}

// ObjectIDs accepts 24-hex-digit document ids.
type ObjectIDs struct{}

func (ObjectIDs) Normalize(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", missingID(field)
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return "", malformedID(field, raw)
	}
	return oid.Hex(), nil
}

// NormalizeOptional returns "" for an absent id and validates a present one.
func NormalizeOptional(ids IDNormalizer, field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return ids.Normalize(field, raw)
}

func missingID(field string) error {
	return common.InvalidIdentifier(fmt.Sprintf("%s is required", field))
}

func malformedID(field, raw string) error {
	return common.InvalidIdentifier(fmt.Sprintf("Invalid %s: %q", field, raw))
}
