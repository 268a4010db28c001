package domain

import "strings"

// HiddenFieldPrefix marks the alternate storage convention where a
// registered field is saved under a leading underscore, e.g. "_related".
const HiddenFieldPrefix = "_"

// FieldKind tells the resolver what a custom field references.
type FieldKind int

const (
	// FieldKindNone means the field is not a relationship; its value passes through.
	FieldKindNone FieldKind = iota
	// FieldKindPost means the field stores local post (or product) IDs.
	FieldKindPost
	// FieldKindTerm means the field stores local taxonomy term IDs.
	FieldKindTerm
)

// String returns the string representation of the field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldKindPost:
		return "post"
	case FieldKindTerm:
		return "term"
	default:
		return "none"
	}
}

// ParseFieldKind parses a field kind from a string.
// Only "post" and "term" are accepted; "none" is not registrable.
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post", "posts":
		return FieldKindPost, nil
	case "term", "terms":
		return FieldKindTerm, nil
	default:
		return FieldKindNone, ErrUnsupportedType
	}
}

// RelationshipFields is a snapshot of the declared relationship field names.
type RelationshipFields struct {
	Post []string
	Term []string
}

// StripHiddenPrefix removes HiddenFieldPrefix from name.
// The second result reports whether the prefix was present.
func StripHiddenPrefix(name string) (string, bool) {
	if !strings.HasPrefix(name, HiddenFieldPrefix) {
		return name, false
	}
	return strings.TrimPrefix(name, HiddenFieldPrefix), true
}
