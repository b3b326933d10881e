package tag

import (
	"bytes"
	"cmp"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Kind distinguishes axis tags from unit tags.
type Kind uint8

const (
	// KindDimension marks a base axis such as length or time.
	KindDimension Kind = iota + 1
	// KindUnit marks a base unit such as meter or second.
	KindUnit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDimension:
		return "dimension"
	case KindUnit:
		return "unit"
	default:
		return "invalid"
	}
}

// Tag is an identity token. The zero Tag is not a valid identity.
// Tag is comparable and is meant to be used as a map key.
type Tag struct {
	id   uuid.UUID
	name string
	kind Kind
}

// Declare issues a new, globally unique tag.
// The name is NFC normalized and kept for display only.
func Declare(kind Kind, name string) Tag {
	return Tag{
		id:   uuid.Must(uuid.NewV7()),
		name: norm.NFC.String(name),
		kind: kind,
	}
}

// Dimension declares a new base axis tag.
func Dimension(name string) Tag {
	return Declare(KindDimension, name)
}

// Unit declares a new base unit tag.
func Unit(name string) Tag {
	return Declare(KindUnit, name)
}

// ID returns the identity of the tag.
func (t Tag) ID() uuid.UUID { return t.id }

// Name returns the display name given at declaration.
func (t Tag) Name() string { return t.name }

// Kind returns whether t is an axis or a unit tag.
func (t Tag) Kind() Kind { return t.kind }

// IsZero reports whether t was never declared.
func (t Tag) IsZero() bool { return t.id == uuid.Nil }

// String returns the display name, or "<undeclared>" for the zero Tag.
func (t Tag) String() string {
	if t.IsZero() {
		return "<undeclared>"
	}
	return t.name
}

// Compare orders tags by display name, then by identity.
// It gives maps keyed by Tag a deterministic iteration order for rendering.
func Compare(a, b Tag) int {
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	return bytes.Compare(a.id[:], b.id[:])
}
