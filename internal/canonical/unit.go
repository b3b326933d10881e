package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/dimkit/internal/dimension"
	"github.com/roach88/dimkit/internal/tag"
	"github.com/roach88/dimkit/internal/unit"
)

// DomainUnit prefixes unit fingerprints. The version suffix allows the
// encoding to change without colliding with old fingerprints.
const DomainUnit = "dimkit/unit/v1"

// DimensionObject returns d as an axis-name to exponent object.
func DimensionObject(d dimension.Dimension) (map[string]any, error) {
	obj := make(map[string]any, d.Len())
	seen := make(map[string]tag.Tag, d.Len())
	for _, axis := range d.Axes() {
		if err := claim(seen, axis); err != nil {
			return nil, err
		}
		obj[axis.Name()] = d.Exponent(axis)
	}
	return obj, nil
}

// UnitObject returns u as {"dimension": {...}, "units": {...}}.
func UnitObject(u unit.Unit) (map[string]any, error) {
	dim, err := DimensionObject(u.Dimension())
	if err != nil {
		return nil, err
	}
	um := u.UnitMap()
	units := make(map[string]any, um.Len())
	for _, axis := range um.Axes() {
		t, _ := um.Unit(axis)
		units[axis.Name()] = t.Name()
	}
	return map[string]any{
		"dimension": dim,
		"units":     units,
	}, nil
}

// claim records that name belongs to t and fails if another tag has it.
func claim(seen map[string]tag.Tag, t tag.Tag) error {
	if prev, ok := seen[t.Name()]; ok && prev != t {
		return fmt.Errorf("ambiguous tag name %q: two distinct tags render the same", t.Name())
	}
	seen[t.Name()] = t
	return nil
}

// MarshalDimension produces canonical JSON for d, e.g. {"length":1,"time":-2}.
func MarshalDimension(d dimension.Dimension) ([]byte, error) {
	obj, err := DimensionObject(d)
	if err != nil {
		return nil, err
	}
	return Marshal(obj)
}

// MarshalUnit produces canonical JSON for u.
func MarshalUnit(u unit.Unit) ([]byte, error) {
	obj, err := UnitObject(u)
	if err != nil {
		return nil, err
	}
	return Marshal(obj)
}

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a content hash of the canonical form of u. Units built
// from tags with the same names and exponents share a fingerprint even when
// the tags are distinct identities; use unit.Equal for identity equality.
func Fingerprint(u unit.Unit) (string, error) {
	data, err := MarshalUnit(u)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainUnit, data), nil
}

// MustFingerprint is like Fingerprint but panics on error.
func MustFingerprint(u unit.Unit) string {
	fp, err := Fingerprint(u)
	if err != nil {
		panic(err)
	}
	return fp
}
