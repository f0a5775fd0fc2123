package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viztube/internal/common"
	"viztube/internal/domain"
)

func TestFilterMatchesFreeText(t *testing.T) {
	published := domain.Video{OwnerID: "1", Title: "Learning Go Generics", Description: "a tour", IsPublished: true}
	draft := domain.Video{OwnerID: "1", Title: "draft", Description: "All about GENERICS", IsPublished: false}
	other := domain.Video{OwnerID: "2", Title: "Cooking", Description: "pasta", IsPublished: true}

	public, err := BuildPublicFilter(NumericIDs{}, "generics", "")
	require.NoError(t, err)
	owner := BuildOwnerFilter("1", "generics")

	tests := []struct {
		name   string
		filter VideoFilter
		video  domain.Video
		want   bool
	}{
		{"public title match", public, published, true},
		{"public hides drafts", public, draft, false},
		{"public no match", public, other, false},
		{"owner sees draft by description", owner, draft, true},
		{"owner sees published", owner, published, true},
		{"owner excludes others", owner, other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.video))
		})
	}
}

func TestBuildPublicFilter(t *testing.T) {
	f, err := BuildPublicFilter(NumericIDs{}, "  cats ", "12")
	require.NoError(t, err)
	assert.Equal(t, VideoFilter{Text: "cats", OwnerID: "12", Visibility: PublishedOnly}, f)
	assert.True(t, f.PublicOnly())

	_, err = BuildPublicFilter(NumericIDs{}, "", "twelve")
	assert.True(t, common.IsKind(err, common.KindInvalidIdentifier))
}

func TestEmptyFilterMatchesEveryPublished(t *testing.T) {
	f, err := BuildPublicFilter(ObjectIDs{}, "", "")
	require.NoError(t, err)
	assert.True(t, f.Matches(domain.Video{IsPublished: true}))
	assert.False(t, f.Matches(domain.Video{}))
}
