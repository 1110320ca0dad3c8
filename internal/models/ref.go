package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a nested reference the API sends either as an embedded object or
// as a bare identifier string. Value is nil when only the id is known.
type Ref[T any] struct {
	ID    string
	Value *T
}

// Resolved wraps an embedded value.
func Resolved[T any](id string, v T) Ref[T] {
	return Ref[T]{ID: id, Value: &v}
}

// Unresolved wraps a bare identifier.
func Unresolved[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Resolve returns the embedded value, or the zero value and false when the
// reference is a bare id.
func (r Ref[T]) Resolve() (T, bool) {
	if r.Value == nil {
		var zero T
		return zero, false
	}
	return *r.Value, true
}

// IsZero reports whether the reference carries neither an id nor a value.
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Value == nil
}

// UnmarshalJSON accepts a string id, an object, or null. Other shapes decode
// to the zero reference.
func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	*r = Ref[T]{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		return json.Unmarshal(b, &r.ID)
	case '{':
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		var probe struct {
			ID  string `json:"_id"`
			Alt string `json:"id"`
		}
		_ = json.Unmarshal(b, &probe)
		r.ID = probe.ID
		if r.ID == "" {
			r.ID = probe.Alt
		}
		r.Value = &v
	}
	return nil
}

// MarshalJSON writes the embedded value when present, otherwise the id.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.Value != nil:
		return json.Marshal(r.Value)
	case r.ID != "":
		return json.Marshal(r.ID)
	default:
		return []byte("null"), nil
	}
}

// GuideRef points at the guide owning a listing.
type GuideRef = Ref[User]

// UserRef points at the user who made a booking or owns a wishlist.
type UserRef = Ref[User]

// ListingRef points at the listing a booking or wishlist item refers to.
type ListingRef = Ref[Listing]

// ReviewRef points at the review left for a completed booking.
type ReviewRef = Ref[Review]

// GuideName returns the guide's display name, or "" when the guide is only
// known by id.
func GuideName(g GuideRef) string {
	if u, ok := g.Resolve(); ok {
		return u.Name
	}
	return ""
}
