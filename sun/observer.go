package sun

import (
	"fmt"
	"math"
)

// StandardHorizon is the US Naval Observatory convention for rise and set:
// the sun's upper limb 34 arc minutes below the geometric horizon, which
// accounts for atmospheric refraction. Degrees.
const StandardHorizon = -34.0 / 60.0

// Observer describes where on Earth the sun is observed from.
type Observer struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Elevation float64 // meters
	Pressure  float64 // millibar, 0 disables the refraction model
	Horizon   float64 // degrees
}

// NewObserver returns a sea-level observer using the standard horizon with
// the refraction model disabled.
func NewObserver(latitude, longitude float64) (Observer, error) {
	o := Observer{
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: 0,
		Pressure:  0,
		Horizon:   StandardHorizon,
	}
	if err := o.Validate(); err != nil {
		return Observer{}, err
	}
	return o, nil
}

// Validate checks coordinate ranges.
func (o Observer) Validate() error {
	if math.IsNaN(o.Latitude) || o.Latitude < -90 || o.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: fmt.Sprintf("must be between -90 and 90, got: %f", o.Latitude)}
	}
	if math.IsNaN(o.Longitude) || o.Longitude < -180 || o.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: fmt.Sprintf("must be between -180 and 180, got: %f", o.Longitude)}
	}
	if o.Pressure < 0 {
		return &ValidationError{Field: "pressure", Message: fmt.Sprintf("must be non-negative, got: %f", o.Pressure)}
	}
	return nil
}

func (o Observer) String() string {
	return fmt.Sprintf("%.4f,%.4f", o.Latitude, o.Longitude)
}

// checkStandard rejects observers the bundled ephemerides cannot serve.
// Both compute rise and set at a fixed solar altitude of -0.833 degrees,
// which is StandardHorizon plus the solar semidiameter at sea level.
func checkStandard(o Observer) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if math.Abs(o.Horizon-StandardHorizon) > 1e-9 {
		return &ValidationError{Field: "horizon", Message: fmt.Sprintf("only the standard horizon of -0:34 is supported, got: %f", o.Horizon)}
	}
	if o.Pressure != 0 {
		return &ValidationError{Field: "pressure", Message: "refraction is folded into the horizon, pressure must be 0"}
	}
	if o.Elevation != 0 {
		return &ValidationError{Field: "elevation", Message: "only sea-level observers are supported"}
	}
	return nil
}
