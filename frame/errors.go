package frame

import "github.com/tidewatch/aivdm/ais"

// The sentence framer raises errors through the same taxonomy the ais
// package uses for payload decoding, so callers handle one ErrorKind
// switch regardless of which layer rejected the input.

func badFraming(msg string) error {
	return &ais.DecodeError{Kind: ais.BadFraming, Err: errString(msg)}
}

func badChecksum() error {
	return &ais.DecodeError{Kind: ais.BadChecksum}
}

func badPad(msg string) error {
	return &ais.DecodeError{Kind: ais.BadPad, Err: errString(msg)}
}

func badArmor(err error) error {
	return &ais.DecodeError{Kind: ais.BadArmor, Err: err}
}

func reassemblyMismatch(msg string) error {
	return &ais.DecodeError{Kind: ais.ReassemblyMismatch, Err: errString(msg)}
}

type errString string

func (e errString) Error() string { return string(e) }
