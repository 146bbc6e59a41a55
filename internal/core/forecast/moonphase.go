package forecast

import (
	"math"
	"strings"
	"time"
)

// MoonPhase is the canonical 1..8 moon phase enumeration; 0 means unknown.
type MoonPhase int

const (
	MoonPhaseUnknown MoonPhase = iota
	MoonPhaseNew
	MoonPhaseWaxingCrescent
	MoonPhaseFirstQuarter
	MoonPhaseWaxingGibbous
	MoonPhaseFull
	MoonPhaseWaningGibbous
	MoonPhaseLastQuarter
	MoonPhaseWaningCrescent
)

const synodicMonthDays = 29.530588853

// reference new moon: 2000-01-06 18:14 UTC
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

var moonPhaseNames = map[MoonPhase]string{
	MoonPhaseNew:            "new moon",
	MoonPhaseWaxingCrescent: "waxing crescent",
	MoonPhaseFirstQuarter:   "first quarter",
	MoonPhaseWaxingGibbous:  "waxing gibbous",
	MoonPhaseFull:           "full moon",
	MoonPhaseWaningGibbous:  "waning gibbous",
	MoonPhaseLastQuarter:    "last quarter",
	MoonPhaseWaningCrescent: "waning crescent",
}

// String returns the phase name
func (m MoonPhase) String() string {
	if name, ok := moonPhaseNames[m]; ok {
		return name
	}
	return "unknown"
}

// IsValid checks if the phase is one of the eight canonical values
func (m MoonPhase) IsValid() bool {
	return m >= MoonPhaseNew && m <= MoonPhaseWaningCrescent
}

// MoonPhaseFromFraction maps a lunation fraction (0 and 1 new, 0.5 full) to the nearest phase
func MoonPhaseFromFraction(f float64) MoonPhase {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return MoonPhaseUnknown
	}
	f = f - math.Floor(f)
	idx := int(math.Round(f*8)) % 8
	return MoonPhase(idx + 1)
}

// MoonPhaseFromName maps provider phase names such as "Waxing Gibbous" or "Third Quarter"
func MoonPhaseFromName(name string) MoonPhase {
	n := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	switch n {
	case "new moon", "new":
		return MoonPhaseNew
	case "waxing crescent":
		return MoonPhaseWaxingCrescent
	case "first quarter":
		return MoonPhaseFirstQuarter
	case "waxing gibbous":
		return MoonPhaseWaxingGibbous
	case "full moon", "full":
		return MoonPhaseFull
	case "waning gibbous":
		return MoonPhaseWaningGibbous
	case "last quarter", "third quarter":
		return MoonPhaseLastQuarter
	case "waning crescent":
		return MoonPhaseWaningCrescent
	default:
		return MoonPhaseUnknown
	}
}

// MoonPhaseForDate computes the phase at t from the mean synodic month
func MoonPhaseForDate(t time.Time) MoonPhase {
	days := t.UTC().Sub(referenceNewMoon).Hours() / 24
	return MoonPhaseFromFraction(days / synodicMonthDays)
}
