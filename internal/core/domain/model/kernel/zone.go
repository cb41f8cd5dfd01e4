package kernel

import (
	"fmt"

	"zoneship/internal/pkg/errs"
)

// Zone identifies one of the five fixed geographic partitions used for
// both tariff pricing and shipping-manager authorization.
//
// The enumeration is deliberately closed: adding a zone is a one-place
// change here plus new tariff rows, never a silent fallback anywhere in
// pricing or authorization code.
type Zone int8

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneJavaBali covers Java and Bali.
	ZoneJavaBali

	// ZoneSumatra covers Sumatra.
	ZoneSumatra

	// ZoneKalimantan covers Kalimantan.
	ZoneKalimantan

	// ZoneSulawesi covers Sulawesi.
	ZoneSulawesi

	// ZoneEastern covers Maluku, Nusa Tenggara and Papua.
	ZoneEastern
)

// getZoneNames returns a map of Zone values to their display names.
// All zones are included for string conversion.
func getZoneNames() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown:    "Unknown",
		ZoneJavaBali:   "Java & Bali",
		ZoneSumatra:    "Sumatra",
		ZoneKalimantan: "Kalimantan",
		ZoneSulawesi:   "Sulawesi",
		ZoneEastern:    "Eastern Indonesia",
	}
}

// getValidZoneNames returns a map of only valid Zone values.
// Only valid zones are included to support validation.
func getValidZoneNames() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown is intentionally excluded as it's invalid
	return map[Zone]string{
		ZoneJavaBali:   "Java & Bali",
		ZoneSumatra:    "Sumatra",
		ZoneKalimantan: "Kalimantan",
		ZoneSulawesi:   "Sulawesi",
		ZoneEastern:    "Eastern Indonesia",
	}
}

// AllZones returns the valid zones in ascending numeric order.
// Useful for iterating the full tariff matrix or rendering zone pickers.
func AllZones() []Zone {
	return []Zone{ZoneJavaBali, ZoneSumatra, ZoneKalimantan, ZoneSulawesi, ZoneEastern}
}

// NewZone converts a raw integer (e.g. from an HTTP path or a database
// column) into a Zone.
//
// Returns:
//   - Zone: the valid zone
//   - error: ValueIsOutOfRangeError if the number is not in {1..5}
func NewZone(n int) (Zone, error) {
	// Range-check before narrowing: converting first would let ints that
	// truncate into {1..5} (e.g. 257) slip through as valid zones.
	if n < int(ZoneJavaBali) || n > int(ZoneEastern) {
		return ZoneUnknown, errs.NewValueIsOutOfRangeError("zone", n, int(ZoneJavaBali), int(ZoneEastern))
	}
	return Zone(n), nil
}

// Validate checks if the Zone value is valid.
//
// Valid zones are the five fixed partitions {1..5}. ZoneUnknown (0) and
// any other values are invalid.
func (z Zone) Validate() error {
	if _, ok := getValidZoneNames()[z]; !ok {
		return errs.NewValueIsOutOfRangeError("zone", int(z), int(ZoneJavaBali), int(ZoneEastern))
	}
	return nil
}

// String returns the human-readable name of the zone.
// This method implements the fmt.Stringer interface and is safe
// to call on any Zone value, including invalid ones.
func (z Zone) String() string {
	if name, ok := getZoneNames()[z]; ok {
		return name
	}
	return fmt.Sprintf("Zone(%d)", int8(z))
}
