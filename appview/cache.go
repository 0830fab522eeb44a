package appview

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache layers an expiring LRU over a Loader, keyed by logical resource
// identity. It is an explicitly-constructed value, never a package singleton,
// so each server (and each test) owns an isolated instance.
//
// Entries expire on their own, but the intended discipline is explicit: after
// any successful write, call the invalidation helper covering everything the
// write could affect, and the next read round-trips to the ledger.
type Cache struct {
	loader *Loader

	profiles     *expirable.LRU[string, *Profile]
	experiences  *expirable.LRU[string, []*Experience]
	education    *expirable.LRU[string, []*Education]
	certificates *expirable.LRU[string, []*Certificate]
	posts        *expirable.LRU[string, *Post]
	postLists    *expirable.LRU[string, []*Post]
	comments     *expirable.LRU[string, []*Comment]
}

// NewCache wraps loader with per-resource LRUs. Zero capacity means
// unlimited size; zero ttl means entries never expire on their own.
func NewCache(loader *Loader, capacity int, ttl time.Duration) *Cache {
	return &Cache{
		loader:       loader,
		profiles:     expirable.NewLRU[string, *Profile](capacity, nil, ttl),
		experiences:  expirable.NewLRU[string, []*Experience](capacity, nil, ttl),
		education:    expirable.NewLRU[string, []*Education](capacity, nil, ttl),
		certificates: expirable.NewLRU[string, []*Certificate](capacity, nil, ttl),
		posts:        expirable.NewLRU[string, *Post](capacity, nil, ttl),
		postLists:    expirable.NewLRU[string, []*Post](capacity, nil, ttl),
		comments:     expirable.NewLRU[string, []*Comment](capacity, nil, ttl),
	}
}

const (
	ownerKeyPrefix = "owner/"
	idKeyPrefix    = "id/"
)

// Negative results (profile not found) are deliberately not cached: the most
// common sequence right after onboarding is create-profile then read-profile,
// and a cached miss would shadow the new profile for a full TTL.

func (c *Cache) GetProfileByOwner(ctx context.Context, owner string) (*Profile, error) {
	if p, ok := c.profiles.Get(ownerKeyPrefix + owner); ok {
		return p, nil
	}
	p, err := c.loader.GetProfileByOwner(ctx, owner)
	if err != nil || p == nil {
		return p, err
	}
	c.profiles.Add(ownerKeyPrefix+owner, p)
	c.profiles.Add(idKeyPrefix+p.ID, p)
	return p, nil
}

func (c *Cache) GetProfileByID(ctx context.Context, profileID string) (*Profile, error) {
	if p, ok := c.profiles.Get(idKeyPrefix + profileID); ok {
		return p, nil
	}
	p, err := c.loader.GetProfileByID(ctx, profileID)
	if err != nil || p == nil {
		return p, err
	}
	c.profiles.Add(idKeyPrefix+profileID, p)
	c.profiles.Add(ownerKeyPrefix+p.Owner, p)
	return p, nil
}

func (c *Cache) GetExperiences(ctx context.Context, profileID string, count uint64) ([]*Experience, error) {
	if entries, ok := c.experiences.Get(profileID); ok {
		return entries, nil
	}
	entries, err := c.loader.GetExperiences(ctx, profileID, count)
	if err != nil {
		return nil, err
	}
	c.experiences.Add(profileID, entries)
	return entries, nil
}

func (c *Cache) GetEducation(ctx context.Context, profileID string, count uint64) ([]*Education, error) {
	if entries, ok := c.education.Get(profileID); ok {
		return entries, nil
	}
	entries, err := c.loader.GetEducation(ctx, profileID, count)
	if err != nil {
		return nil, err
	}
	c.education.Add(profileID, entries)
	return entries, nil
}

func (c *Cache) GetCertificates(ctx context.Context, profileID string, count uint64) ([]*Certificate, error) {
	if entries, ok := c.certificates.Get(profileID); ok {
		return entries, nil
	}
	entries, err := c.loader.GetCertificates(ctx, profileID, count)
	if err != nil {
		return nil, err
	}
	c.certificates.Add(profileID, entries)
	return entries, nil
}

func (c *Cache) GetPost(ctx context.Context, postID string) (*Post, error) {
	if p, ok := c.posts.Get(postID); ok {
		return p, nil
	}
	p, err := c.loader.GetPost(ctx, postID)
	if err != nil || p == nil {
		return p, err
	}
	c.posts.Add(postID, p)
	return p, nil
}

func (c *Cache) ListPostsByAuthor(ctx context.Context, author string) ([]*Post, error) {
	if posts, ok := c.postLists.Get(author); ok {
		return posts, nil
	}
	posts, err := c.loader.ListPostsByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	c.postLists.Add(author, posts)
	return posts, nil
}

func (c *Cache) GetComments(ctx context.Context, postID string, count uint64) ([]*Comment, error) {
	if comments, ok := c.comments.Get(postID); ok {
		return comments, nil
	}
	comments, err := c.loader.GetComments(ctx, postID, count)
	if err != nil {
		return nil, err
	}
	c.comments.Add(postID, comments)
	return comments, nil
}

// InvalidateProfile drops every cached read a profile write could affect:
// the profile itself (under both keys) and all of its collections.
func (c *Cache) InvalidateProfile(owner, profileID string) {
	if owner != "" {
		c.profiles.Remove(ownerKeyPrefix + owner)
	}
	if profileID != "" {
		c.profiles.Remove(idKeyPrefix + profileID)
		c.experiences.Remove(profileID)
		c.education.Remove(profileID)
		c.certificates.Remove(profileID)
	}
}

// InvalidatePost drops a post, its comments, and the author's post listing
// after any post-affecting write (create, delete, like, unlike, comment).
func (c *Cache) InvalidatePost(postID, author string) {
	if postID != "" {
		c.posts.Remove(postID)
		c.comments.Remove(postID)
	}
	if author != "" {
		c.postLists.Remove(author)
	}
}
