package model

import (
	"database/sql/driver"
	"encoding/hex"
	"math"
	"strconv"

	"grainauth/internal/domain/entity"
	"grainauth/internal/domain/geo"
	"grainauth/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Money stores entity.Money in a NUMERIC(10,2) column.
type Money entity.Money

// Value writes the amount as a two-decimal literal.
func (m Money) Value() (driver.Value, error) {
	return entity.Money(m).String(), nil
}

// Scan accepts the text form PostgreSQL returns and the integer or real
// forms SQLite may hand back for numeric columns.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = 0
	case int64:
		*m = Money(v * 100)
	case float64:
		*m = Money(math.Round(v * 100))
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	default:
		return errors.Errorf("cannot scan %T into Money", src)
	}

	return nil
}

func (m *Money) scanString(s string) error {
	parsed, err := entity.ParseMoney(s)
	if err == nil {
		*m = Money(parsed)

		return nil
	}

	// NUMERIC without a scale can come back with more digits.
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return errors.Wrapf(err, "scan money %q", s)
	}
	*m = Money(math.Round(f * 100))

	return nil
}

// Point stores an orb.Point as hex-encoded EWKB with SRID 4326, which
// PostGIS accepts as geometry input and returns as geometry output.
type Point struct {
	orb.Point
	SRID int
}

// NewPoint tags p with the service-wide SRID.
func NewPoint(p orb.Point) Point {
	return Point{Point: p, SRID: geo.SRID}
}

// GormDataType is the generic GORM type name.
func (Point) GormDataType() string {
	return "geometry"
}

// GormDBDataType picks the column type per dialect. Only PostgreSQL gets a
// real geometry column; other dialects keep the hex text.
func (Point) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "geometry(Point,4326)"
	}

	return "text"
}

func (p Point) Value() (driver.Value, error) {
	srid := p.SRID
	if srid == 0 {
		srid = geo.SRID
	}

	raw, err := ewkb.Marshal(p.Point, srid)
	if err != nil {
		return nil, errors.Wrap(err, "ewkb.Marshal")
	}

	return hex.EncodeToString(raw), nil
}

func (p *Point) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Point{}

		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Errorf("cannot scan %T into Point", src)
	}

	if decoded, err := hex.DecodeString(string(raw)); err == nil {
		raw = decoded
	}

	geom, srid, err := ewkb.Unmarshal(raw)
	if err != nil {
		return errors.Wrap(err, "ewkb.Unmarshal")
	}

	point, ok := geom.(orb.Point)
	if !ok {
		return errors.Errorf("expected a point geometry, got %s", geom.GeoJSONType())
	}
	p.Point = point
	p.SRID = srid

	return nil
}
