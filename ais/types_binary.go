package ais

import "github.com/tidewatch/aivdm/bitbuf"

// decodeBlob reads bitlen bits starting at bit start out of b and packs
// them, big-endian, into a left-aligned byte slice — the "big-endian bit
// blob" the binary-payload variants carry per the data model.
func decodeBlob(b *bitbuf.Buf, start, bitlen int) (BinaryBlob, error) {
	if bitlen < 0 {
		return BinaryBlob{}, &DecodeError{Kind: BadPad}
	}
	out := bitbuf.New(bitlen)
	pos := 0
	for pos < bitlen {
		width := bitlen - pos
		if width > bitbuf.MaxWidth {
			width = bitbuf.MaxWidth
		}
		v, err := b.Ubits(start+pos, width)
		if err != nil {
			return BinaryBlob{}, err
		}
		if err := out.Putbits(pos, width, v); err != nil {
			return BinaryBlob{}, err
		}
		pos += width
	}
	return BinaryBlob{BitCount: bitlen, Data: out.Bytes()}, nil
}

// encodeBlob is decodeBlob's inverse: it writes blob's bits into b
// starting at bit start.
func encodeBlob(b *bitbuf.Buf, start int, blob BinaryBlob) error {
	src := bitbuf.Wrap(blob.Data)
	pos := 0
	for pos < blob.BitCount {
		width := blob.BitCount - pos
		if width > bitbuf.MaxWidth {
			width = bitbuf.MaxWidth
		}
		v, err := src.Ubits(pos, width)
		if err != nil {
			return err
		}
		if err := b.Putbits(start+pos, width, v); err != nil {
			return err
		}
		pos += width
	}
	return nil
}

// decodeAddressedBinary implements message type 6 (88..1008 bits).
func decodeAddressedBinary(b *bitbuf.Buf, bitlen int) (*AddressedBinary, error) {
	if bitlen < 88 || bitlen > 1008 {
		return nil, lengthError(TypeAddressedBinary, bitlen, "88..1008")
	}
	seqno, _ := b.Ubits(38, 2)
	dest, _ := b.Ubits(40, 30)
	retransmit, _ := b.Ubits(70, 1)
	appID, _ := b.Ubits(72, 16)
	payload, err := decodeBlob(b, 88, bitlen-88)
	if err != nil {
		return nil, err
	}
	return &AddressedBinary{
		SeqNo:      uint8(seqno),
		DestMMSI:   uint32(dest),
		Retransmit: retransmit != 0,
		AppID:      uint16(appID),
		Payload:    payload,
	}, nil
}

func encodeAddressedBinary(p *AddressedBinary) (*bitbuf.Buf, int, error) {
	total := 88 + p.Payload.BitCount
	b := bitbuf.New(total)
	b.Putbits(38, 2, uint64(p.SeqNo))
	b.Putbits(40, 30, uint64(p.DestMMSI))
	b.Putbits(70, 1, boolBit(p.Retransmit))
	b.Putbits(72, 16, uint64(p.AppID))
	if err := encodeBlob(b, 88, p.Payload); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

// decodeBroadcastBinary implements message type 8 (56..1008 bits).
func decodeBroadcastBinary(b *bitbuf.Buf, bitlen int) (*BroadcastBinary, error) {
	if bitlen < 56 || bitlen > 1008 {
		return nil, lengthError(TypeBroadcastBinary, bitlen, "56..1008")
	}
	appID, _ := b.Ubits(40, 16)
	payload, err := decodeBlob(b, 56, bitlen-56)
	if err != nil {
		return nil, err
	}
	return &BroadcastBinary{AppID: uint16(appID), Payload: payload}, nil
}

func encodeBroadcastBinary(p *BroadcastBinary) (*bitbuf.Buf, int, error) {
	total := 56 + p.Payload.BitCount
	b := bitbuf.New(total)
	b.Putbits(40, 16, uint64(p.AppID))
	if err := encodeBlob(b, 56, p.Payload); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

// decodeGnssBinary implements message type 17 (80..816 bits).
func decodeGnssBinary(b *bitbuf.Buf, bitlen int) (*GnssBinary, error) {
	if bitlen < 80 || bitlen > 816 {
		return nil, lengthError(TypeGnssBinary, bitlen, "80..816")
	}
	lon, _ := b.Sbits(40, 18)
	lat, _ := b.Sbits(58, 17)
	payload, err := decodeBlob(b, 80, bitlen-80)
	if err != nil {
		return nil, err
	}
	return &GnssBinary{Lon: int32(lon), Lat: int32(lat), Payload: payload}, nil
}

func encodeGnssBinary(p *GnssBinary) (*bitbuf.Buf, int, error) {
	total := 80 + p.Payload.BitCount
	b := bitbuf.New(total)
	b.PutSbits(40, 18, int64(p.Lon))
	b.PutSbits(58, 17, int64(p.Lat))
	if err := encodeBlob(b, 80, p.Payload); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

// decodeSingleSlotBinary implements message type 25 (40..168 bits).
//
// The source skips forward by a fixed byte count when locating the
// payload, which is wrong whenever addressed makes the header
// non-byte-aligned. The payload start is instead computed bit-precisely
// from the two header flags, per spec Open Question (c).
func decodeSingleSlotBinary(b *bitbuf.Buf, bitlen int) (*SingleSlotBinary, error) {
	if bitlen < 40 || bitlen > 168 {
		return nil, lengthError(TypeSingleSlotBinary, bitlen, "40..168")
	}
	addressed, _ := b.Ubits(38, 1)
	structured, _ := b.Ubits(39, 1)

	pos := 40
	var destMMSI uint64
	if addressed != 0 {
		destMMSI, _ = b.Ubits(pos, 30)
		pos += 30
	}
	var appID uint64
	if structured != 0 {
		appID, _ = b.Ubits(pos, 16)
		pos += 16
	}
	payload, err := decodeBlob(b, pos, bitlen-pos)
	if err != nil {
		return nil, err
	}
	return &SingleSlotBinary{
		Addressed:  addressed != 0,
		Structured: structured != 0,
		DestMMSI:   uint32(destMMSI),
		AppID:      uint16(appID),
		Payload:    payload,
	}, nil
}

func encodeSingleSlotBinary(p *SingleSlotBinary) (*bitbuf.Buf, int, error) {
	pos := 40
	if p.Addressed {
		pos += 30
	}
	if p.Structured {
		pos += 16
	}
	total := pos + p.Payload.BitCount
	b := bitbuf.New(total)
	b.Putbits(38, 1, boolBit(p.Addressed))
	b.Putbits(39, 1, boolBit(p.Structured))
	pos = 40
	if p.Addressed {
		b.Putbits(pos, 30, uint64(p.DestMMSI))
		pos += 30
	}
	if p.Structured {
		b.Putbits(pos, 16, uint64(p.AppID))
		pos += 16
	}
	if err := encodeBlob(b, pos, p.Payload); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

// decodeMultiSlotBinary implements message type 26 (60..1004 bits): the
// same addressed/structured header as type 25, a trailing 20-bit radio
// field in the last 20 bits of the message, and payload spanning
// everything in between.
func decodeMultiSlotBinary(b *bitbuf.Buf, bitlen int) (*MultiSlotBinary, error) {
	if bitlen < 60 || bitlen > 1004 {
		return nil, lengthError(TypeMultiSlotBinary, bitlen, "60..1004")
	}
	addressed, _ := b.Ubits(38, 1)
	structured, _ := b.Ubits(39, 1)

	pos := 40
	var destMMSI uint64
	if addressed != 0 {
		destMMSI, _ = b.Ubits(pos, 30)
		pos += 30
	}
	var appID uint64
	if structured != 0 {
		appID, _ = b.Ubits(pos, 16)
		pos += 16
	}
	radioStart := bitlen - 20
	if radioStart < pos {
		return nil, lengthError(TypeMultiSlotBinary, bitlen, "60..1004")
	}
	payload, err := decodeBlob(b, pos, radioStart-pos)
	if err != nil {
		return nil, err
	}
	radio, _ := b.Ubits(radioStart, 20)
	return &MultiSlotBinary{
		Addressed:  addressed != 0,
		Structured: structured != 0,
		DestMMSI:   uint32(destMMSI),
		AppID:      uint16(appID),
		Payload:    payload,
		Radio:      uint32(radio),
	}, nil
}

func encodeMultiSlotBinary(p *MultiSlotBinary) (*bitbuf.Buf, int, error) {
	pos := 40
	if p.Addressed {
		pos += 30
	}
	if p.Structured {
		pos += 16
	}
	total := pos + p.Payload.BitCount + 20
	b := bitbuf.New(total)
	b.Putbits(38, 1, boolBit(p.Addressed))
	b.Putbits(39, 1, boolBit(p.Structured))
	pos = 40
	if p.Addressed {
		b.Putbits(pos, 30, uint64(p.DestMMSI))
		pos += 30
	}
	if p.Structured {
		b.Putbits(pos, 16, uint64(p.AppID))
		pos += 16
	}
	if err := encodeBlob(b, pos, p.Payload); err != nil {
		return nil, 0, err
	}
	b.Putbits(total-20, 20, uint64(p.Radio))
	return b, total, nil
}
