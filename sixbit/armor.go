// Package sixbit implements the AIS six-bit ASCII armor transform and the
// six-bit text encoding used inside decoded payload fields (ship names,
// callsigns, destinations). Both are distinct from github.com/aldas/
// go-nmea-client's byte-aligned NMEA2000 field values: here every symbol
// in a payload string carries exactly six bits, packed MSB-first across
// byte boundaries, the same bit order as bitbuf.
package sixbit

import "fmt"

// ErrBadArmor is returned by Dearmor when a payload character falls
// outside the printable range the AIVDM/AIVDO armor alphabet defines.
type ErrBadArmor struct {
	Char byte
	Pos  int
}

func (e *ErrBadArmor) Error() string {
	return fmt.Sprintf("sixbit: invalid armor character %q at position %d", e.Char, e.Pos)
}

// Dearmor converts one AIVDM/AIVDO payload character to its 6-bit value.
//
// The armor alphabet maps the 64 values 0..63 onto the printable ASCII
// range 48..87 and 96..119, skipping 88..95: subtract 48, and if the
// result is 40 or greater subtract a further 8.
func Dearmor(c byte) (uint8, error) {
	if c < 48 || c > 119 || (c >= 88 && c < 96) {
		return 0, &ErrBadArmor{Char: c}
	}
	v := int(c) - 48
	if v >= 40 {
		v -= 8
	}
	if v < 0 || v > 63 {
		return 0, &ErrBadArmor{Char: c}
	}
	return uint8(v), nil
}

// Armor converts a 6-bit value (0..63) to its AIVDM/AIVDO payload character.
func Armor(v uint8) (byte, error) {
	if v > 63 {
		return 0, fmt.Errorf("sixbit: value %d out of 6-bit range", v)
	}
	c := int(v) + 48
	if c >= 88 {
		c += 8
	}
	return byte(c), nil
}

// DearmorString decodes an entire payload field into its raw 6-bit symbol
// stream, one byte per symbol holding a value in 0..63. pos in any
// returned ErrBadArmor is relative to this string.
func DearmorString(payload string) ([]uint8, error) {
	out := make([]uint8, len(payload))
	for i := 0; i < len(payload); i++ {
		v, err := Dearmor(payload[i])
		if err != nil {
			return nil, &ErrBadArmor{Char: payload[i], Pos: i}
		}
		out[i] = v
	}
	return out, nil
}

// ArmorSymbols re-encodes a 6-bit symbol stream into a payload string.
func ArmorSymbols(symbols []uint8) (string, error) {
	out := make([]byte, len(symbols))
	for i, v := range symbols {
		c, err := Armor(v)
		if err != nil {
			return "", fmt.Errorf("sixbit: symbol %d at position %d: %w", v, i, err)
		}
		out[i] = c
	}
	return string(out), nil
}
