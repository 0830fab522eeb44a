package appview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheProfileByOwner(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	ledger := newFakeLedger()
	ledger.owned["0xowner/0xpkg::dolphinders::Profile"] = append(
		ledger.owned["0xowner/0xpkg::dolphinders::Profile"],
		profileObject("0xprofile", "0xowner"),
	)

	cache := NewCache(NewLoader(ledger, "0xpkg"), 128, time.Minute)

	p1, err := cache.GetProfileByOwner(ctx, "0xowner")
	require.NoError(err)
	require.NotNil(p1)

	// a second read by owner, and a read by id, both hit the cache
	p2, err := cache.GetProfileByOwner(ctx, "0xowner")
	require.NoError(err)
	assert.Same(p1, p2)

	p3, err := cache.GetProfileByID(ctx, "0xprofile")
	require.NoError(err)
	assert.Same(p1, p3)
}

func TestCacheInvalidateProfile(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	ledger := newFakeLedger()
	ledger.owned["0xowner/0xpkg::dolphinders::Profile"] = append(
		ledger.owned["0xowner/0xpkg::dolphinders::Profile"],
		profileObject("0xprofile", "0xowner"),
	)
	ledger.fields["0xprofile/0"] = experienceField(1, "job-0")

	cache := NewCache(NewLoader(ledger, "0xpkg"), 128, time.Minute)

	_, err := cache.GetProfileByOwner(ctx, "0xowner")
	require.NoError(err)
	entries, err := cache.GetExperiences(ctx, "0xprofile", 1)
	require.NoError(err)
	require.Len(entries, 1)
	require.Equal(1, ledger.lookups())

	// cached: no new ledger traffic
	_, err = cache.GetExperiences(ctx, "0xprofile", 1)
	require.NoError(err)
	require.Equal(1, ledger.lookups())

	// a profile write invalidates the profile and all its collections
	cache.InvalidateProfile("0xowner", "0xprofile")

	_, err = cache.GetExperiences(ctx, "0xprofile", 1)
	require.NoError(err)
	require.Equal(2, ledger.lookups())
}

func TestCacheInvalidatePost(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	ledger := newFakeLedger()
	ledger.objects["0xpost"] = postObject("0xpost", "0xauthor", "hello", "1000")
	ledger.owned["0xauthor/0xpkg::dolphinders::Post"] = append(
		ledger.owned["0xauthor/0xpkg::dolphinders::Post"],
		postObject("0xpost", "0xauthor", "hello", "1000"),
	)

	cache := NewCache(NewLoader(ledger, "0xpkg"), 128, time.Minute)

	p1, err := cache.GetPost(ctx, "0xpost")
	require.NoError(err)
	p2, err := cache.GetPost(ctx, "0xpost")
	require.NoError(err)
	require.Same(p1, p2)

	list1, err := cache.ListPostsByAuthor(ctx, "0xauthor")
	require.NoError(err)
	require.Len(list1, 1)

	cache.InvalidatePost("0xpost", "0xauthor")

	p3, err := cache.GetPost(ctx, "0xpost")
	require.NoError(err)
	require.NotSame(p1, p3)
}

func TestCacheDoesNotCacheMisses(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	ledger := newFakeLedger()
	cache := NewCache(NewLoader(ledger, "0xpkg"), 128, time.Minute)

	missing, err := cache.GetProfileByOwner(ctx, "0xowner")
	require.NoError(err)
	require.Nil(missing)

	// profile created between the two reads must be visible immediately
	ledger.owned["0xowner/0xpkg::dolphinders::Profile"] = append(
		ledger.owned["0xowner/0xpkg::dolphinders::Profile"],
		profileObject("0xprofile", "0xowner"),
	)
	p, err := cache.GetProfileByOwner(ctx, "0xowner")
	require.NoError(err)
	require.NotNil(p)
}
