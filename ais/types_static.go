package ais

import (
	"github.com/tidewatch/aivdm/bitbuf"
	"github.com/tidewatch/aivdm/sixbit"
)

// decodeStaticAndVoyage implements message type 5 (424 bits).
func decodeStaticAndVoyage(b *bitbuf.Buf, bitlen int) (*StaticAndVoyage, error) {
	if bitlen != 424 {
		return nil, lengthError(TypeStaticAndVoyage, bitlen, "424")
	}
	version, _ := b.Ubits(38, 2)
	imo, _ := b.Ubits(40, 30)
	callsign, err := decodeSixBitField(b, 70, 7)
	if err != nil {
		return nil, err
	}
	shipname, err := decodeSixBitField(b, 112, 20)
	if err != nil {
		return nil, err
	}
	shiptype, _ := b.Ubits(232, 8)
	toBow, _ := b.Ubits(240, 9)
	toStern, _ := b.Ubits(249, 9)
	toPort, _ := b.Ubits(258, 6)
	toStarboard, _ := b.Ubits(264, 6)
	epfd, _ := b.Ubits(270, 4)
	month, _ := b.Ubits(274, 4)
	day, _ := b.Ubits(278, 5)
	hour, _ := b.Ubits(283, 5)
	minute, _ := b.Ubits(288, 6)
	draught, _ := b.Ubits(294, 8)
	destination, err := decodeSixBitField(b, 302, 20)
	if err != nil {
		return nil, err
	}
	dte, _ := b.Ubits(422, 1)

	return &StaticAndVoyage{
		AisVersion:  uint8(version),
		IMO:         uint32(imo),
		Callsign:    callsign,
		Shipname:    shipname,
		Shiptype:    uint8(shiptype),
		ToBow:       uint16(toBow),
		ToStern:     uint16(toStern),
		ToPort:      uint8(toPort),
		ToStarboard: uint8(toStarboard),
		Epfd:        uint8(epfd),
		Month:       uint8(month),
		Day:         uint8(day),
		Hour:        uint8(hour),
		Minute:      uint8(minute),
		Draught:     uint8(draught),
		Destination: destination,
		Dte:         dte != 0,
	}, nil
}

func encodeStaticAndVoyage(p *StaticAndVoyage) (*bitbuf.Buf, error) {
	b := bitbuf.New(424)
	b.Putbits(38, 2, uint64(p.AisVersion))
	b.Putbits(40, 30, uint64(p.IMO))
	if err := encodeSixBitField(b, 70, 7, p.Callsign); err != nil {
		return nil, err
	}
	if err := encodeSixBitField(b, 112, 20, p.Shipname); err != nil {
		return nil, err
	}
	b.Putbits(232, 8, uint64(p.Shiptype))
	b.Putbits(240, 9, uint64(p.ToBow))
	b.Putbits(249, 9, uint64(p.ToStern))
	b.Putbits(258, 6, uint64(p.ToPort))
	b.Putbits(264, 6, uint64(p.ToStarboard))
	b.Putbits(270, 4, uint64(p.Epfd))
	b.Putbits(274, 4, uint64(p.Month))
	b.Putbits(278, 5, uint64(p.Day))
	b.Putbits(283, 5, uint64(p.Hour))
	b.Putbits(288, 6, uint64(p.Minute))
	b.Putbits(294, 8, uint64(p.Draught))
	if err := encodeSixBitField(b, 302, 20, p.Destination); err != nil {
		return nil, err
	}
	b.Putbits(422, 1, boolBit(p.Dte))
	return b, nil
}

// decodeSixBitField reads n six-bit symbols starting at bit start and
// decodes them through the AIS character table.
func decodeSixBitField(b *bitbuf.Buf, start, n int) (string, error) {
	codes := make([]uint8, n)
	for i := 0; i < n; i++ {
		v, err := b.Ubits(start+i*6, 6)
		if err != nil {
			return "", err
		}
		codes[i] = uint8(v)
	}
	return sixbit.DecodeText(codes)
}

// encodeSixBitField writes s as n six-bit symbols starting at bit start.
func encodeSixBitField(b *bitbuf.Buf, start, n int, s string) error {
	codes, err := sixbit.EncodeText(s, n)
	if err != nil {
		return valueOutOfRangeError(err)
	}
	for i, c := range codes {
		if err := b.Putbits(start+i*6, 6, uint64(c)); err != nil {
			return err
		}
	}
	return nil
}
