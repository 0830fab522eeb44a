package appview

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/dolphinder-social/dolphinder/contract"
	"github.com/dolphinder-social/dolphinder/sui"
)

// Ledger is the read surface of the gateway the loader depends on. Not-found
// is a nil result with a nil error on the single-object methods.
type Ledger interface {
	GetObject(ctx context.Context, objectID string) (*sui.ObjectData, error)
	GetOwnedObjects(ctx context.Context, owner string, structType string) ([]*sui.ObjectData, error)
	GetDynamicFieldObject(ctx context.Context, parentID, name, nameType string) (*sui.ObjectData, error)
}

// Loader reconstructs profiles, their indexed collections, and posts from
// the ledger. It holds no state; see Cache for the caching layer.
type Loader struct {
	ledger    Ledger
	packageID string
	logger    *slog.Logger
}

func NewLoader(ledger Ledger, packageID string) *Loader {
	return &Loader{
		ledger:    ledger,
		packageID: packageID,
		logger:    slog.Default().With("system", "appview"),
	}
}

func (l *Loader) profileType() string {
	return l.packageID + "::" + contract.ModuleName + "::Profile"
}

func (l *Loader) postType() string {
	return l.packageID + "::" + contract.ModuleName + "::Post"
}

// GetProfileByOwner looks up the profile owned by an address. The contract
// enforces at most one profile per address; this layer just queries and takes
// the first. No profile returns (nil, nil).
func (l *Loader) GetProfileByOwner(ctx context.Context, owner string) (*Profile, error) {
	objs, err := l.ledger.GetOwnedObjects(ctx, owner, l.profileType())
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, nil
	}
	return DecodeProfile(objs[0])
}

// GetProfileByID fetches and decodes a profile object. A missing object
// returns (nil, nil).
func (l *Loader) GetProfileByID(ctx context.Context, profileID string) (*Profile, error) {
	obj, err := l.ledger.GetObject(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return DecodeProfile(obj)
}

// GetPost fetches and decodes a post object. Deleted posts return (nil, nil).
func (l *Loader) GetPost(ctx context.Context, postID string) (*Post, error) {
	obj, err := l.ledger.GetObject(ctx, postID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return DecodePost(obj)
}

// ListPostsByAuthor returns an address's posts, newest first.
func (l *Loader) ListPostsByAuthor(ctx context.Context, author string) ([]*Post, error) {
	objs, err := l.ledger.GetOwnedObjects(ctx, author, l.postType())
	if err != nil {
		return nil, err
	}
	posts := make([]*Post, 0, len(objs))
	for _, obj := range objs {
		p, err := DecodePost(obj)
		if err != nil {
			l.logger.Warn("skipping undecodable post", "objectID", obj.ObjectID, "err", err)
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return createdAtMillis(posts[i].CreatedAt) > createdAtMillis(posts[j].CreatedAt)
	})
	return posts, nil
}

func createdAtMillis(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// aggregateIndexed is the common fan-out for collections stored as dynamic
// fields keyed by integer index 0..count-1. Every lookup is independent and
// failure at one index only removes that index from the result: this layer
// cannot tell a removed entry from a transient fetch error, and either way
// the rest of the collection must still load. The result holds the surviving
// entries in index order, length <= count.
func aggregateIndexed[T any](ctx context.Context, l *Loader, parentID string, count uint64,
	decode func(index uint64, fields map[string]any) (*T, error)) []*T {

	if count == 0 {
		return []*T{}
	}

	slots := make([]*T, count)
	g, ctx := errgroup.WithContext(ctx)
	for i := uint64(0); i < count; i++ {
		i := i
		g.Go(func() error {
			obj, err := l.ledger.GetDynamicFieldObject(ctx, parentID, strconv.FormatUint(i, 10), "u64")
			if err != nil || obj == nil || obj.Fields == nil {
				if err != nil {
					l.logger.Debug("indexed lookup failed", "parentID", parentID, "index", i, "err", err)
				}
				return nil
			}
			fields := obj.Fields
			// dynamic field content wraps the entry under "value"
			if v, ok := fields["value"]; ok {
				if inner, ok := unwrapFields(v); ok {
					fields = inner
				}
			}
			entry, err := decode(i, fields)
			if err != nil {
				l.logger.Warn("skipping undecodable entry", "parentID", parentID, "index", i, "err", err)
				return nil
			}
			slots[i] = entry
			return nil
		})
	}
	// workers never return errors; failures become absent slots
	_ = g.Wait()

	out := make([]*T, 0, count)
	for _, entry := range slots {
		if entry != nil {
			out = append(out, entry)
		}
	}
	return out
}

// sortByOrderDesc sorts entries descending by display order. The sort is
// stable: entries with equal order keep their storage index order.
func sortByOrderDesc[T any](entries []*T, orderOf func(*T) uint64) {
	sort.SliceStable(entries, func(i, j int) bool {
		return orderOf(entries[i]) > orderOf(entries[j])
	})
}

// GetExperiences reconstructs a profile's experience entries, sorted
// descending by caller-supplied display order. Best effort: missing indexes
// are skipped, so the result may be shorter than count.
func (l *Loader) GetExperiences(ctx context.Context, profileID string, count uint64) ([]*Experience, error) {
	entries := aggregateIndexed(ctx, l, profileID, count, decodeExperience)
	sortByOrderDesc(entries, func(e *Experience) uint64 { return e.OrderIndex })
	return entries, nil
}

// GetEducation reconstructs a profile's education entries, sorted descending
// by display order.
func (l *Loader) GetEducation(ctx context.Context, profileID string, count uint64) ([]*Education, error) {
	entries := aggregateIndexed(ctx, l, profileID, count, decodeEducation)
	sortByOrderDesc(entries, func(e *Education) uint64 { return e.OrderIndex })
	return entries, nil
}

// GetCertificates reconstructs a profile's certificate entries, sorted
// descending by display order.
func (l *Loader) GetCertificates(ctx context.Context, profileID string, count uint64) ([]*Certificate, error) {
	entries := aggregateIndexed(ctx, l, profileID, count, decodeCertificate)
	sortByOrderDesc(entries, func(c *Certificate) uint64 { return c.OrderIndex })
	return entries, nil
}

// GetComments reconstructs a post's comments. Comments are stored the same
// way as the résumé collections, dynamic fields keyed by comment index, but
// read in conversation order: ascending by index, no re-sort.
func (l *Loader) GetComments(ctx context.Context, postID string, count uint64) ([]*Comment, error) {
	return aggregateIndexed(ctx, l, postID, count, decodeComment), nil
}
