package query

import (
	"strings"

	"viztube/internal/domain"
)

// Visibility decides whether unpublished videos may appear.
type Visibility int

const (
	PublishedOnly Visibility = iota
	AnyState
)

// VideoFilter is translated by each store into its native predicate.
// Zero-valued fields impose no constraint.
type VideoFilter struct {
	Text       string
	OwnerID    string
	Visibility Visibility
}

// BuildPublicFilter is used by public listings: published videos only,
// optionally narrowed to one owner. A supplied owner id must be valid.
func BuildPublicFilter(ids IDNormalizer, text, rawOwnerID string) (VideoFilter, error) {
	owner, err := NormalizeOptional(ids, "userId", rawOwnerID)
	if err != nil {
		return VideoFilter{}, err
	}
	return VideoFilter{
		Text:       strings.TrimSpace(text),
		OwnerID:    owner,
		Visibility: PublishedOnly,
	}, nil
}

// BuildOwnerFilter is used by the dashboard: every video of ownerID in any
// publish state. ownerID comes from the authenticated viewer.
func BuildOwnerFilter(ownerID, text string) VideoFilter {
	return VideoFilter{
		Text:       strings.TrimSpace(text),
		OwnerID:    ownerID,
		Visibility: AnyState,
	}
}

// PublicOnly reports whether the filter forces published=true.
func (f VideoFilter) PublicOnly() bool {
	return f.Visibility == PublishedOnly
}

// Matches evaluates the filter in memory, with the same semantics the stores
// implement: case-insensitive substring on title OR description.
func (f VideoFilter) Matches(v domain.Video) bool {
	if f.PublicOnly() && !v.IsPublished {
		return false
	}
	if f.OwnerID != "" && v.OwnerID != f.OwnerID {
		return false
	}
	if f.Text == "" {
		return true
	}
	needle := strings.ToLower(f.Text)
	return strings.Contains(strings.ToLower(v.Title), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle)
}
