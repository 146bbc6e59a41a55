package forecast

import (
	"fmt"
	"strings"

	"forecastsync.app/pkg/errors"
)

// WeatherCode packs four independent facets into one integer:
//
//	flag*10000 + scale*1000 + position*100 + base
//
// base is a two digit BaseCondition index.
type WeatherCode int

// PrecipitationFlag marks convective character of the weather
type PrecipitationFlag int

const (
	FlagNone PrecipitationFlag = iota
	FlagShowers
	FlagThunder
	FlagShowersThunder
)

// SeverityScale selects which ordered scale Position refers to
type SeverityScale int

const (
	ScaleNone SeverityScale = iota
	ScaleIntensity
	ScaleCoverage
)

// Positions on ScaleIntensity
const (
	IntensityLight = iota + 1
	IntensityModerate
	IntensityHeavy
	IntensityViolent
)

// Positions on ScaleCoverage
const (
	CoverageFew = iota + 1
	CoverageScattered
	CoverageBroken
	CoverageOvercast
)

var scalePositions = map[SeverityScale][]string{
	ScaleNone:      nil,
	ScaleIntensity: {"light", "moderate", "heavy", "violent"},
	ScaleCoverage:  {"few", "scattered", "broken", "overcast"},
}

// Len returns the number of positions on the scale
func (s SeverityScale) Len() int {
	return len(scalePositions[s])
}

// BaseCondition is the two digit weather condition index
type BaseCondition int

const (
	BaseClear BaseCondition = iota
	BaseClouds
	BaseMist
	BaseFog
	BaseHaze
	BaseSmoke
	BaseDust
	BaseSand
	BaseAsh
	BaseDrizzle
	BaseRain
	BaseFreezingDrizzle
	BaseFreezingRain
	BaseSleet
	BaseSnow
	BaseSnowGrains
	BaseIcePellets
	BaseHail
	BaseThunderstorm
	BaseSquall
	BaseTornado

	BaseUnknown BaseCondition = 99
)

var baseNames = map[BaseCondition]string{
	BaseClear:           "clear",
	BaseClouds:          "clouds",
	BaseMist:            "mist",
	BaseFog:             "fog",
	BaseHaze:            "haze",
	BaseSmoke:           "smoke",
	BaseDust:            "dust",
	BaseSand:            "sand",
	BaseAsh:             "ash",
	BaseDrizzle:         "drizzle",
	BaseRain:            "rain",
	BaseFreezingDrizzle: "freezing drizzle",
	BaseFreezingRain:    "freezing rain",
	BaseSleet:           "sleet",
	BaseSnow:            "snow",
	BaseSnowGrains:      "snow grains",
	BaseIcePellets:      "ice pellets",
	BaseHail:            "hail",
	BaseThunderstorm:    "thunderstorm",
	BaseSquall:          "squall",
	BaseTornado:         "tornado",
	BaseUnknown:         "unknown",
}

// String returns the human readable name of the base condition
func (b BaseCondition) String() string {
	if name, ok := baseNames[b]; ok {
		return name
	}
	return fmt.Sprintf("base(%d)", int(b))
}

// IsValid checks if the base condition is enumerated
func (b BaseCondition) IsValid() bool {
	_, ok := baseNames[b]
	return ok
}

// Condition is the decoded form of a WeatherCode
type Condition struct {
	Flag     PrecipitationFlag
	Scale    SeverityScale
	Position int
	Base     BaseCondition
}

// UnknownCondition is used when a provider code has no mapping
var UnknownCondition = Condition{Base: BaseUnknown}

// Validate checks that every facet is representable
func (c Condition) Validate() error {
	if c.Flag < FlagNone || c.Flag > FlagShowersThunder {
		return errors.NewValidationError(fmt.Sprintf("invalid precipitation flag %d", c.Flag))
	}
	if _, ok := scalePositions[c.Scale]; !ok {
		return errors.NewValidationError(fmt.Sprintf("invalid severity scale %d", c.Scale))
	}
	if c.Scale == ScaleNone {
		if c.Position != 0 {
			return errors.NewValidationError("position must be zero without a severity scale")
		}
	} else if c.Position < 1 || c.Position > c.Scale.Len() {
		return errors.NewValidationError(fmt.Sprintf("position %d out of range for scale %d", c.Position, c.Scale))
	}
	if !c.Base.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid base condition %d", c.Base))
	}
	return nil
}

// String renders the condition, e.g. "heavy rain showers with thunder"
func (c Condition) String() string {
	parts := make([]string, 0, 3)
	if c.Scale != ScaleNone && c.Position >= 1 && c.Position <= c.Scale.Len() {
		parts = append(parts, scalePositions[c.Scale][c.Position-1])
	}
	parts = append(parts, c.Base.String())
	switch c.Flag {
	case FlagShowers:
		parts = append(parts, "showers")
	case FlagThunder:
		parts = append(parts, "with thunder")
	case FlagShowersThunder:
		parts = append(parts, "showers with thunder")
	}
	return strings.Join(parts, " ")
}

// Encode packs a condition into a WeatherCode
func Encode(c Condition) (WeatherCode, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return WeatherCode(int(c.Flag)*10000 + int(c.Scale)*1000 + c.Position*100 + int(c.Base)), nil
}

// MustEncode is Encode for static mapping tables; it panics on invalid input.
func MustEncode(c Condition) WeatherCode {
	code, err := Encode(c)
	if err != nil {
		panic(err)
	}
	return code
}

// Decode unpacks a WeatherCode produced by Encode
func Decode(code WeatherCode) (Condition, error) {
	v := int(code)
	if v < 0 || v >= 100000 {
		return Condition{}, errors.NewValidationError(fmt.Sprintf("weather code %d out of range", v))
	}
	c := Condition{
		Flag:     PrecipitationFlag(v / 10000),
		Scale:    SeverityScale(v / 1000 % 10),
		Position: v / 100 % 10,
		Base:     BaseCondition(v % 100),
	}
	if err := c.Validate(); err != nil {
		return Condition{}, err
	}
	return c, nil
}

// Condition decodes the code, returning UnknownCondition for invalid values
func (w WeatherCode) Condition() Condition {
	c, err := Decode(w)
	if err != nil {
		return UnknownCondition
	}
	return c
}

// String renders the decoded condition
func (w WeatherCode) String() string {
	return w.Condition().String()
}

// AllConditions enumerates every representable condition
func AllConditions() []Condition {
	var out []Condition
	bases := make([]BaseCondition, 0, len(baseNames))
	for b := BaseClear; b <= BaseTornado; b++ {
		bases = append(bases, b)
	}
	bases = append(bases, BaseUnknown)

	for flag := FlagNone; flag <= FlagShowersThunder; flag++ {
		for _, scale := range []SeverityScale{ScaleNone, ScaleIntensity, ScaleCoverage} {
			positions := []int{0}
			if scale != ScaleNone {
				positions = positions[:0]
				for p := 1; p <= scale.Len(); p++ {
					positions = append(positions, p)
				}
			}
			for _, pos := range positions {
				for _, base := range bases {
					out = append(out, Condition{Flag: flag, Scale: scale, Position: pos, Base: base})
				}
			}
		}
	}
	return out
}
