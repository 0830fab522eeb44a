package appview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphinder-social/dolphinder/sui"
)

func TestDecodeProfile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, err := DecodeProfile(profileObject("0xprofile", "0xowner"))
	require.NoError(err)

	assert.Equal("0xprofile", p.ID)
	assert.Equal("0xowner", p.Owner)
	assert.Equal("Ann", p.Name)
	assert.Equal("builds dApps", p.Bio)
	assert.Equal([]string{"https://example.com"}, p.SocialLinks)
	assert.False(p.IsVerified)
	assert.Equal(uint64(2), p.ExperienceCount)
	assert.Equal(uint64(1), p.EducationCount)
	assert.Equal(uint64(0), p.CertificateCount)
	require.Len(p.Skills, 1)
	assert.Equal(Skill{Name: "Go", EndorsementCount: 3}, p.Skills[0])
}

func TestDecodeProfileMissingField(t *testing.T) {
	assert := assert.New(t)

	obj := profileObject("0xprofile", "0xowner")
	delete(obj.Fields, "bio")

	_, err := DecodeProfile(obj)
	assert.Error(err)

	var decodeErr *DecodeError
	assert.ErrorAs(err, &decodeErr)
	assert.Equal("bio", decodeErr.Field)
}

func TestDecodeProfileWrongType(t *testing.T) {
	assert := assert.New(t)

	obj := profileObject("0xprofile", "0xowner")
	obj.Fields["experience_count"] = "not-a-number"

	_, err := DecodeProfile(obj)
	var decodeErr *DecodeError
	assert.ErrorAs(err, &decodeErr)
	assert.Equal("experience_count", decodeErr.Field)
}

func TestDecodeProfileNoContent(t *testing.T) {
	_, err := DecodeProfile(&sui.ObjectData{ObjectID: "0x1"})
	assert.Error(t, err)
	_, err = DecodeProfile(nil)
	assert.Error(t, err)
}

func TestDecodeCountsAcceptNumbers(t *testing.T) {
	// some RPC proxies re-encode u64 fields as JSON numbers
	require := require.New(t)

	obj := profileObject("0xprofile", "0xowner")
	obj.Fields["experience_count"] = float64(7)

	p, err := DecodeProfile(obj)
	require.NoError(err)
	require.Equal(uint64(7), p.ExperienceCount)
}

func TestDecodePost(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	obj := postObject("0xpost", "0xauthor", "hello world", "1700000000000")
	obj.Fields["image_urls"] = []any{"https://agg.example.com/v1/img1"}
	obj.Fields["like_count"] = "12"

	p, err := DecodePost(obj)
	require.NoError(err)
	assert.Equal("0xpost", p.ID)
	assert.Equal("0xauthor", p.Author)
	assert.Equal("hello world", p.Content)
	assert.Equal(uint64(12), p.LikeCount)
	assert.Equal([]string{"https://agg.example.com/v1/img1"}, p.ImageURLs)
}

func TestDecodePostMissingAuthor(t *testing.T) {
	obj := postObject("0xpost", "0xauthor", "hi", "1")
	delete(obj.Fields, "author")

	_, err := DecodePost(obj)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "author", decodeErr.Field)
}

func TestOrderIndexDefaultsToZero(t *testing.T) {
	require := require.New(t)

	e, err := decodeExperience(1, map[string]any{
		"job_title":   "Engineer",
		"company":     "Acme",
		"start_date":  "2020",
		"end_date":    "2021",
		"description": "x",
		// no order_index
	})
	require.NoError(err)
	require.Equal(uint64(0), e.OrderIndex)
}
