package appview

import (
	"fmt"
	"strconv"

	"github.com/dolphinder-social/dolphinder/sui"
)

// DecodeError reports a Move field bag that does not match the expected
// entity shape. It is a decode failure, not a crash: contract upgrades and
// stale indexers make malformed bags an expected condition.
type DecodeError struct {
	Entity string
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: field %q: %s", e.Entity, e.Field, e.Reason)
}

func decodeErr(entity, field, reason string) *DecodeError {
	return &DecodeError{Entity: entity, Field: field, Reason: reason}
}

// field accessors over the raw map[string]any bag. Sui's JSON rendering
// serializes u64 as a decimal string, so integer accessors accept both
// strings and JSON numbers.

func fieldString(entity string, m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", decodeErr(entity, key, "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", decodeErr(entity, key, fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

func fieldUint(entity string, m map[string]any, key string) (uint64, error) {
	v, ok := m[key]
	if !ok {
		return 0, decodeErr(entity, key, "missing")
	}
	switch n := v.(type) {
	case string:
		u, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, decodeErr(entity, key, fmt.Sprintf("not an unsigned integer: %q", n))
		}
		return u, nil
	case float64:
		if n < 0 {
			return 0, decodeErr(entity, key, "negative value")
		}
		return uint64(n), nil
	default:
		return 0, decodeErr(entity, key, fmt.Sprintf("expected integer, got %T", v))
	}
}

// optionalUint tolerates a missing or malformed value, returning zero. Used
// for order_index, which display sorting treats as zero when absent.
func optionalUint(m map[string]any, key string) uint64 {
	u, err := fieldUint("", m, key)
	if err != nil {
		return 0
	}
	return u
}

func fieldBool(entity string, m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, decodeErr(entity, key, "missing")
	}
	b, ok := v.(bool)
	if !ok {
		return false, decodeErr(entity, key, fmt.Sprintf("expected bool, got %T", v))
	}
	return b, nil
}

func fieldStringSlice(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// unwrapFields peels the {"type": ..., "fields": {...}} envelope the node
// puts around nested Move structs. Plain bags pass through.
func unwrapFields(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if inner, ok := m["fields"].(map[string]any); ok {
		return inner, true
	}
	return m, true
}

// DecodeProfile validates and types an on-ledger profile object.
func DecodeProfile(obj *sui.ObjectData) (*Profile, error) {
	if obj == nil || obj.Fields == nil {
		return nil, decodeErr("profile", "content", "object has no Move content")
	}
	f := obj.Fields

	p := &Profile{
		ID:          obj.ObjectID,
		SocialLinks: fieldStringSlice(f, "social_links"),
	}

	var err error
	if p.Owner, err = fieldString("profile", f, "owner"); err != nil {
		return nil, err
	}
	if p.Name, err = fieldString("profile", f, "name"); err != nil {
		return nil, err
	}
	if p.Bio, err = fieldString("profile", f, "bio"); err != nil {
		return nil, err
	}
	if p.AvatarURL, err = fieldString("profile", f, "avatar_url"); err != nil {
		return nil, err
	}
	if p.BannerURL, err = fieldString("profile", f, "banner_url"); err != nil {
		return nil, err
	}
	if p.IsVerified, err = fieldBool("profile", f, "is_verified"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = fieldString("profile", f, "created_at"); err != nil {
		return nil, err
	}
	if p.ExperienceCount, err = fieldUint("profile", f, "experience_count"); err != nil {
		return nil, err
	}
	if p.EducationCount, err = fieldUint("profile", f, "education_count"); err != nil {
		return nil, err
	}
	if p.CertificateCount, err = fieldUint("profile", f, "certificate_count"); err != nil {
		return nil, err
	}

	if raw, ok := f["skills"].([]any); ok {
		for _, item := range raw {
			sf, ok := unwrapFields(item)
			if !ok {
				continue
			}
			name, err := fieldString("skill", sf, "name")
			if err != nil {
				continue
			}
			p.Skills = append(p.Skills, Skill{
				Name:             name,
				EndorsementCount: optionalUint(sf, "endorsement_count"),
			})
		}
	}

	return p, nil
}

func decodeExperience(index uint64, f map[string]any) (*Experience, error) {
	e := &Experience{Index: index, OrderIndex: optionalUint(f, "order_index")}
	var err error
	if e.JobTitle, err = fieldString("experience", f, "job_title"); err != nil {
		return nil, err
	}
	if e.Company, err = fieldString("experience", f, "company"); err != nil {
		return nil, err
	}
	if e.StartDate, err = fieldString("experience", f, "start_date"); err != nil {
		return nil, err
	}
	if e.EndDate, err = fieldString("experience", f, "end_date"); err != nil {
		return nil, err
	}
	if e.Description, err = fieldString("experience", f, "description"); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeEducation(index uint64, f map[string]any) (*Education, error) {
	e := &Education{Index: index, OrderIndex: optionalUint(f, "order_index")}
	var err error
	if e.School, err = fieldString("education", f, "school"); err != nil {
		return nil, err
	}
	if e.Degree, err = fieldString("education", f, "degree"); err != nil {
		return nil, err
	}
	if e.FieldOfStudy, err = fieldString("education", f, "field_of_study"); err != nil {
		return nil, err
	}
	if e.StartDate, err = fieldString("education", f, "start_date"); err != nil {
		return nil, err
	}
	if e.EndDate, err = fieldString("education", f, "end_date"); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeCertificate(index uint64, f map[string]any) (*Certificate, error) {
	c := &Certificate{Index: index, OrderIndex: optionalUint(f, "order_index")}
	var err error
	if c.Name, err = fieldString("certificate", f, "name"); err != nil {
		return nil, err
	}
	if c.Issuer, err = fieldString("certificate", f, "issuer"); err != nil {
		return nil, err
	}
	if c.IssueDate, err = fieldString("certificate", f, "issue_date"); err != nil {
		return nil, err
	}
	if c.CertificateURL, err = fieldString("certificate", f, "certificate_url"); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodePost validates and types an on-ledger post object.
func DecodePost(obj *sui.ObjectData) (*Post, error) {
	if obj == nil || obj.Fields == nil {
		return nil, decodeErr("post", "content", "object has no Move content")
	}
	f := obj.Fields

	p := &Post{
		ID:        obj.ObjectID,
		ImageURLs: fieldStringSlice(f, "image_urls"),
	}

	var err error
	if p.Author, err = fieldString("post", f, "author"); err != nil {
		return nil, err
	}
	if p.ProfileID, err = fieldString("post", f, "profile_id"); err != nil {
		return nil, err
	}
	if p.Content, err = fieldString("post", f, "content"); err != nil {
		return nil, err
	}
	if p.LikeCount, err = fieldUint("post", f, "like_count"); err != nil {
		return nil, err
	}
	if p.CommentCount, err = fieldUint("post", f, "comment_count"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = fieldString("post", f, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = fieldString("post", f, "updated_at"); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeComment(index uint64, f map[string]any) (*Comment, error) {
	c := &Comment{Index: index}
	var err error
	if c.Author, err = fieldString("comment", f, "author"); err != nil {
		return nil, err
	}
	if c.Content, err = fieldString("comment", f, "content"); err != nil {
		return nil, err
	}
	// older contract versions omit these
	c.ProfileID, _ = fieldString("comment", f, "profile_id")
	c.CreatedAt, _ = fieldString("comment", f, "created_at")
	return c, nil
}
