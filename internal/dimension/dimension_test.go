package dimension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/tag"
)

var (
	length = tag.Dimension("length")
	timeAx = tag.Dimension("time")
	mass   = tag.Dimension("mass")
)

func TestNewPrunesZeroExponents(t *testing.T) {
	d := New(map[tag.Tag]int{length: 1, timeAx: 0})

	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Has(timeAx))
	assert.Equal(t, 0, d.Exponent(timeAx))
	assert.True(t, d.Equal(Of(length)))
}

func TestNewCopiesInput(t *testing.T) {
	src := map[tag.Tag]int{length: 2}
	d := New(src)
	src[length] = 5
	src[mass] = 1

	assert.Equal(t, 2, d.Exponent(length))
	assert.False(t, d.Has(mass))

	exps := d.Exponents()
	exps[length] = 9
	assert.Equal(t, 2, d.Exponent(length))
}

func TestNoneIsEmpty(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.True(t, New(nil).Equal(None))
	assert.True(t, New(map[tag.Tag]int{length: 0}).Equal(None))
	assert.Equal(t, "1", None.String())
	assert.Empty(t, None.Axes())
}

func TestEqualityProperties(t *testing.T) {
	a := New(map[tag.Tag]int{length: 1, timeAx: -2})
	b := New(map[tag.Tag]int{timeAx: -2, length: 1, mass: 0})
	c := Of(length).Div(Of(timeAx)).Div(Of(timeAx))

	// reflexive
	assert.True(t, a.Equal(a))
	// symmetric
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	// transitive
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))

	assert.False(t, a.Equal(Of(length)))
	assert.False(t, Of(length).Equal(Of(timeAx)))
}

func TestMulLengthLengthIsArea(t *testing.T) {
	area := New(map[tag.Tag]int{length: 2})
	assert.True(t, Of(length).Mul(Of(length)).Equal(area))
}

func TestDivAreaAreaIsNone(t *testing.T) {
	area := Of(length).Mul(Of(length))
	got := area.Div(area)
	assert.True(t, got.IsNone())
	assert.True(t, got.Equal(None))
}

func TestDivAxisOnlyInDivisor(t *testing.T) {
	got := Of(length).Div(Of(timeAx))
	assert.Equal(t, 1, got.Exponent(length))
	assert.Equal(t, -1, got.Exponent(timeAx))

	inverse := None.Div(Of(timeAx))
	assert.Equal(t, -1, inverse.Exponent(timeAx))
}

func TestMulPrunesCancelledAxes(t *testing.T) {
	perSecond := None.Div(Of(timeAx))
	got := Of(timeAx).Mul(perSecond).Mul(Of(mass))

	assert.True(t, got.Equal(Of(mass)))
	assert.False(t, got.Has(timeAx))
}

func TestMulDoesNotMutateOperands(t *testing.T) {
	x := Of(length)
	y := Of(length)
	_ = x.Mul(y)
	_ = x.Div(y)

	assert.Equal(t, 1, x.Exponent(length))
	assert.Equal(t, 1, y.Exponent(length))
}

func TestAddSameDimension(t *testing.T) {
	got, err := Of(length).Add(Of(length))
	require.NoError(t, err)
	assert.True(t, got.Equal(Of(length)))

	area := Of(length).Mul(Of(length))
	got, err = area.Sub(area)
	require.NoError(t, err)
	assert.True(t, got.Equal(area))

	// (length/length) + (area/area): both dimensionless
	got, err = Of(length).Div(Of(length)).Add(area.Div(area))
	require.NoError(t, err)
	assert.True(t, got.IsNone())
}

func TestAddDifferentDimensions(t *testing.T) {
	_, err := Of(length).Add(Of(timeAx))
	require.Error(t, err)
	assert.True(t, dimerr.IsDimensionMismatch(err))

	var de *dimerr.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "add", de.Op)
	assert.Equal(t, "length", de.Left)
	assert.Equal(t, "time", de.Right)

	_, err = Of(length).Sub(Of(length).Mul(Of(length)))
	assert.True(t, dimerr.IsDimensionMismatch(err))
}

func TestString(t *testing.T) {
	accel := Of(length).Div(Of(timeAx).Mul(Of(timeAx)))
	assert.Equal(t, "length*time^-2", accel.String())

	force := Of(mass).Mul(accel)
	assert.Equal(t, "length*mass*time^-2", force.String())
}

func TestAxesSorted(t *testing.T) {
	d := New(map[tag.Tag]int{timeAx: 1, mass: 1, length: 1})
	axes := d.Axes()
	require.Len(t, axes, 3)
	assert.Equal(t, []tag.Tag{length, mass, timeAx}, axes)
}

func TestFactor(t *testing.T) {
	assert.Equal(t, "meter", Factor("meter", 1))
	assert.Equal(t, "second^-2", Factor("second", -2))
	assert.Equal(t, "meter^3", Factor("meter", 3))
}

func TestPow(t *testing.T) {
	accel := New(map[tag.Tag]int{length: 1, timeAx: -2})

	got, err := accel.Pow(3)
	require.NoError(t, err)
	assert.True(t, got.Equal(New(map[tag.Tag]int{length: 3, timeAx: -6})))

	got, err = accel.Pow(-1)
	require.NoError(t, err)
	assert.True(t, got.Equal(New(map[tag.Tag]int{length: -1, timeAx: 2})))

	got, err = accel.Pow(0)
	require.NoError(t, err)
	assert.True(t, got.IsNone())

	_, err = accel.Pow(math.MinInt)
	require.Error(t, err)
	assert.True(t, dimerr.IsExponentOverflow(err))
	assert.Contains(t, err.Error(), "length*time^-2")
}
