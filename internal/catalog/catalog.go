package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/roach88/dimkit/internal/canonical"
	"github.com/roach88/dimkit/internal/tag"
	"github.com/roach88/dimkit/internal/unit"
)

// Definition describes a unit system.
type Definition struct {
	Name    string        `yaml:"name" json:"name"`
	Axes    []string      `yaml:"axes,omitempty" json:"axes,omitempty"`
	Units   []BaseUnit    `yaml:"units,omitempty" json:"units,omitempty"`
	Derived []DerivedUnit `yaml:"derived,omitempty" json:"derived,omitempty"`
}

// BaseUnit declares a unit measuring a single axis.
type BaseUnit struct {
	Name string `yaml:"name" json:"name"`
	Axis string `yaml:"axis" json:"axis"`
}

// DerivedUnit declares a unit as a product of powers of earlier units.
type DerivedUnit struct {
	Name string         `yaml:"name" json:"name"`
	Of   map[string]int `yaml:"of" json:"of"`
}

// Catalog is a built unit system. Catalogs are immutable; Extend returns a
// new catalog sharing the parent's tags.
type Catalog struct {
	name      string
	axes      map[string]tag.Tag
	unitTags  map[string]tag.Tag
	units     map[string]unit.Unit
	order     []string
	bindAxes  map[string]tag.Tag
	bindUnits map[string]tag.Tag
	logger    *slog.Logger
}

// Option configures Build.
type Option func(*Catalog)

// WithLogger sets the logger used while building. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAxes binds axis names to existing tags. A definition that declares an
// axis with a bound name reuses the tag instead of declaring a new one, so
// the resulting units are equal to units built from the same tags in Go.
func WithAxes(axes map[string]tag.Tag) Option {
	return func(c *Catalog) {
		maps.Copy(c.bindAxes, axes)
	}
}

// WithUnitTags binds base unit names to existing tags.
func WithUnitTags(tags map[string]tag.Tag) Option {
	return func(c *Catalog) {
		maps.Copy(c.bindUnits, tags)
	}
}

// Build builds a catalog from def.
func Build(def Definition, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		name:      def.Name,
		axes:      make(map[string]tag.Tag),
		unitTags:  make(map[string]tag.Tag),
		units:     make(map[string]unit.Unit),
		bindAxes:  make(map[string]tag.Tag),
		bindUnits: make(map[string]tag.Tag),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.apply(def); err != nil {
		return nil, err
	}
	c.logger.Info("catalog built", "catalog", c.name, "axes", len(c.axes), "units", len(c.units))
	return c, nil
}

// Extend returns a new catalog containing c plus the declarations in def.
// Tags are shared, so units from c and from the extension combine freely.
// def.Name is ignored.
func (c *Catalog) Extend(def Definition) (*Catalog, error) {
	ext := &Catalog{
		name:      c.name,
		axes:      maps.Clone(c.axes),
		unitTags:  maps.Clone(c.unitTags),
		units:     maps.Clone(c.units),
		order:     slices.Clone(c.order),
		bindAxes:  c.bindAxes,
		bindUnits: c.bindUnits,
		logger:    c.logger,
	}
	if err := ext.apply(def); err != nil {
		return nil, err
	}
	return ext, nil
}

func (c *Catalog) apply(def Definition) error {
	for i, name := range def.Axes {
		if err := c.declareAxis(fmt.Sprintf("axes[%d]", i), name); err != nil {
			return err
		}
	}
	for i, bu := range def.Units {
		if err := c.declareBase(fmt.Sprintf("units[%d]", i), bu); err != nil {
			return err
		}
	}
	for i, du := range def.Derived {
		if err := c.declareDerived(fmt.Sprintf("derived[%d]", i), du); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) declareAxis(field, name string) error {
	if name == "" {
		return defErr(ErrEmptyName, field, "axis name is required")
	}
	if _, dup := c.axes[name]; dup {
		return defErr(ErrDuplicateName, field, "axis %q already declared", name)
	}
	t, bound := c.bindAxes[name]
	switch {
	case !bound:
		t = tag.Dimension(name)
	case t.Kind() != tag.KindDimension:
		return defErr(ErrInvalidBinding, field, "binding for axis %q is a %s tag", name, t.Kind())
	}
	c.axes[name] = t
	c.logger.Debug("declared axis", "catalog", c.name, "axis", name, "bound", bound)
	return nil
}

func (c *Catalog) declareBase(field string, bu BaseUnit) error {
	if bu.Name == "" {
		return defErr(ErrEmptyName, field+".name", "unit name is required")
	}
	if _, dup := c.units[bu.Name]; dup {
		return defErr(ErrDuplicateName, field+".name", "unit %q already declared", bu.Name)
	}
	axis, ok := c.axes[bu.Axis]
	if !ok {
		return defErr(ErrUnknownAxis, field+".axis", "unknown axis %q", bu.Axis)
	}
	t, bound := c.bindUnits[bu.Name]
	switch {
	case !bound:
		t = tag.Unit(bu.Name)
	case t.Kind() != tag.KindUnit:
		return defErr(ErrInvalidBinding, field+".name", "binding for unit %q is a %s tag", bu.Name, t.Kind())
	}
	c.unitTags[bu.Name] = t
	c.add(bu.Name, unit.FromTags(axis, t))
	c.logger.Debug("declared unit", "catalog", c.name, "unit", bu.Name, "axis", bu.Axis, "bound", bound)
	return nil
}

func (c *Catalog) declareDerived(field string, du DerivedUnit) error {
	if du.Name == "" {
		return defErr(ErrEmptyName, field+".name", "unit name is required")
	}
	if _, dup := c.units[du.Name]; dup {
		return defErr(ErrDuplicateName, field+".name", "unit %q already declared", du.Name)
	}
	if len(du.Of) == 0 {
		return defErr(ErrBadDerivation, field+".of", "derived unit %q has no factors", du.Name)
	}

	result := unit.None
	// Sorted so the first reported error is deterministic.
	for _, name := range canonical.SortedKeys(du.Of) {
		exp := du.Of[name]
		factorField := fmt.Sprintf("%s.of.%s", field, name)
		if exp == 0 {
			return defErr(ErrZeroExponent, factorField, "exponent must be nonzero")
		}
		base, ok := c.units[name]
		if !ok {
			return defErr(ErrUnknownUnit, factorField, "unknown unit %q", name)
		}
		power, err := base.Pow(exp)
		if err == nil {
			result, err = result.Mul(power)
		}
		if err != nil {
			de := defErr(ErrBadDerivation, factorField, "cannot derive %q", du.Name)
			de.Err = err
			return de
		}
	}

	c.add(du.Name, result)
	c.logger.Debug("derived unit", "catalog", c.name, "unit", du.Name, "as", result.String())
	return nil
}

func (c *Catalog) add(name string, u unit.Unit) {
	c.units[name] = u
	c.order = append(c.order, name)
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Axis returns the axis tag declared under name.
func (c *Catalog) Axis(name string) (tag.Tag, bool) {
	t, ok := c.axes[name]
	return t, ok
}

// UnitTag returns the base unit tag declared under name.
func (c *Catalog) UnitTag(name string) (tag.Tag, bool) {
	t, ok := c.unitTags[name]
	return t, ok
}

// Unit returns the base or derived unit declared under name.
func (c *Catalog) Unit(name string) (unit.Unit, bool) {
	u, ok := c.units[name]
	return u, ok
}

// Lookup is like Unit but returns an ErrUnknownUnit error for missing names.
func (c *Catalog) Lookup(name string) (unit.Unit, error) {
	u, ok := c.units[name]
	if !ok {
		return unit.None, defErr(ErrUnknownUnit, "unit", "unknown unit %q in catalog %q", name, c.name)
	}
	return u, nil
}

// MustUnit is like Lookup but panics on error.
func (c *Catalog) MustUnit(name string) unit.Unit {
	u, err := c.Lookup(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Names returns unit names in declaration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}
