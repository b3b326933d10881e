package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dimkit/internal/dimension"
	"github.com/roach88/dimkit/internal/si"
	"github.com/roach88/dimkit/internal/tag"
	"github.com/roach88/dimkit/internal/unit"
	"github.com/roach88/dimkit/internal/unitmap"
)

func TestMarshalDimension(t *testing.T) {
	got, err := MarshalDimension(si.Newton.Dimension())
	require.NoError(t, err)
	assert.Equal(t, `{"length":1,"mass":1,"time":-2}`, string(got))

	got, err = MarshalDimension(dimension.None)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}

func TestMarshalUnit(t *testing.T) {
	got, err := MarshalUnit(si.Coulomb)
	require.NoError(t, err)
	assert.Equal(t, `{"dimension":{"current":1,"time":1},"units":{"current":"ampere","time":"second"}}`, string(got))

	got, err = MarshalUnit(unit.None)
	require.NoError(t, err)
	assert.Equal(t, `{"dimension":{},"units":{}}`, string(got))
}

func TestMarshalUnitAmbiguousNames(t *testing.T) {
	otherLength := tag.Dimension("length")
	d := dimension.New(map[tag.Tag]int{si.Length: 1, otherLength: 1})
	u := unit.Make(d, unitmap.None)

	_, err := MarshalUnit(u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `ambiguous tag name "length"`)

	_, err = Fingerprint(u)
	assert.Error(t, err)
	assert.Panics(t, func() { MustFingerprint(u) })
}

func TestFingerprint(t *testing.T) {
	fp := MustFingerprint(si.Newton)
	assert.Len(t, fp, 64)

	again := MustFingerprint(unit.Must(si.Kilogram.Mul(unit.Must(si.Meter.Div(si.Square(si.Second))))))
	assert.Equal(t, fp, again, "structurally equal units share a fingerprint")

	assert.NotEqual(t, fp, MustFingerprint(si.Coulomb))
	assert.NotEqual(t, MustFingerprint(si.Meter), MustFingerprint(unit.FromTags(si.Length, tag.Unit("foot"))))
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte(`{}`)
	assert.NotEqual(t, hashWithDomain("a", data), hashWithDomain("b", data))
	assert.Equal(t, hashWithDomain(DomainUnit, data), hashWithDomain(DomainUnit, data))
}
