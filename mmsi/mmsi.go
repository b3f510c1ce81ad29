// Package mmsi classifies AIS station identifiers (MMSIs) by the station
// class encoded in their leading digits, the same way
// github.com/aldas/go-nmea-client's addressmapper classifies a bus node
// from the DeviceClass bits of its NAME field: both read a fixed-position
// code out of an otherwise opaque 32/64-bit identifier and map it onto an
// enum the rest of the decoder branches on.
package mmsi

// Class identifies the kind of station an MMSI was assigned to, per the
// ITU-R M.585 numbering plan.
type Class int

const (
	ClassUnknown Class = iota
	ClassShip
	ClassCoastStation
	ClassSAR
	ClassAidToNavigation
	ClassAuxiliaryCraft
	ClassCraftAssociated
)

func (c Class) String() string {
	switch c {
	case ClassShip:
		return "ship"
	case ClassCoastStation:
		return "coast-station"
	case ClassSAR:
		return "sar-aircraft"
	case ClassAidToNavigation:
		return "aid-to-navigation"
	case ClassAuxiliaryCraft:
		return "auxiliary-craft"
	case ClassCraftAssociated:
		return "craft-associated"
	default:
		return "unknown"
	}
}

// Classify reports the station class an MMSI belongs to, using the
// leading-digit ranges of the ITU-R M.585 numbering plan:
//
//	00MIDxxxxx  coast station
//	111MIDxxx   SAR aircraft
//	970xxxxxx   craft associated with a parent ship (also 972xxxxxx, 974xxxxxx)
//	98MIDxxxxx  auxiliary craft carried by a mothership
//	99MIDxxxxx  aid to navigation
//	otherwise   ship
func Classify(m uint32) Class {
	switch {
	case m >= 1_000_000_000:
		return ClassUnknown
	case m/10_000_000 == 0:
		return ClassCoastStation
	case m/1_000_000 == 111:
		return ClassSAR
	case m/1_000_000 == 970 || m/1_000_000 == 972 || m/1_000_000 == 974:
		return ClassCraftAssociated
	case m/10_000_000 == 98:
		return ClassAuxiliaryCraft
	case m/10_000_000 == 99:
		return ClassAidToNavigation
	default:
		return ClassShip
	}
}

// IsAuxiliaryCraft reports whether m belongs to a craft carried by a
// mothership (98MIDxxxxx). The type 24 Part B decoder needs exactly this
// boolean to choose between a mothership-MMSI field and a dimensions
// field, so it is exposed directly rather than forcing callers to compare
// against Classify's result.
func IsAuxiliaryCraft(m uint32) bool {
	return m/10_000_000 == 98
}
