package ais

import "github.com/tidewatch/aivdm/bitbuf"

// decodeAidToNavigation implements message type 21 (272..360 bits).
//
// When the sentence is longer than the 272-bit base layout and the
// 20-character name field is fully used, the overflow after bit 272 is
// additional six-bit characters appended to the name.
func decodeAidToNavigation(b *bitbuf.Buf, bitlen int) (*AidToNavigationReport, error) {
	if bitlen < 272 || bitlen > 360 {
		return nil, lengthError(TypeAidToNavigation, bitlen, "272..360")
	}
	aidType, _ := b.Ubits(38, 5)
	name, err := decodeSixBitField(b, 43, 20)
	if err != nil {
		return nil, err
	}
	accuracy, _ := b.Ubits(163, 1)
	lon, _ := b.Sbits(164, 28)
	lat, _ := b.Sbits(192, 27)
	toBow, _ := b.Ubits(219, 9)
	toStern, _ := b.Ubits(228, 9)
	toPort, _ := b.Ubits(237, 6)
	toStarboard, _ := b.Ubits(243, 6)
	epfd, _ := b.Ubits(249, 4)
	second, _ := b.Ubits(253, 6)
	offPosition, _ := b.Ubits(259, 1)
	regional, _ := b.Ubits(260, 8)
	raim, _ := b.Ubits(268, 1)
	virtualAid, _ := b.Ubits(269, 1)
	assigned, _ := b.Ubits(270, 1)

	if extraChars := (bitlen - 272) / 6; extraChars > 0 && len(name) == 20 {
		ext, err := decodeSixBitField(b, 272, extraChars)
		if err != nil {
			return nil, err
		}
		name += ext
	}

	return &AidToNavigationReport{
		AidType:     uint8(aidType),
		Name:        name,
		Accuracy:    accuracy != 0,
		Lon:         int32(lon),
		Lat:         int32(lat),
		ToBow:       uint16(toBow),
		ToStern:     uint16(toStern),
		ToPort:      uint8(toPort),
		ToStarboard: uint8(toStarboard),
		Epfd:        uint8(epfd),
		Second:      uint8(second),
		OffPosition: offPosition != 0,
		Regional:    uint8(regional),
		Raim:        raim != 0,
		VirtualAid:  virtualAid != 0,
		Assigned:    assigned != 0,
	}, nil
}

func encodeAidToNavigation(p *AidToNavigationReport) (*bitbuf.Buf, int, error) {
	base := p.Name
	ext := ""
	if len(base) > 20 {
		ext = base[20:]
		base = base[:20]
	}
	total := 272
	if ext != "" {
		total += len(ext) * 6
	}
	b := bitbuf.New(total)
	b.Putbits(38, 5, uint64(p.AidType))
	if err := encodeSixBitField(b, 43, 20, base); err != nil {
		return nil, 0, err
	}
	b.Putbits(163, 1, boolBit(p.Accuracy))
	b.PutSbits(164, 28, int64(p.Lon))
	b.PutSbits(192, 27, int64(p.Lat))
	b.Putbits(219, 9, uint64(p.ToBow))
	b.Putbits(228, 9, uint64(p.ToStern))
	b.Putbits(237, 6, uint64(p.ToPort))
	b.Putbits(243, 6, uint64(p.ToStarboard))
	b.Putbits(249, 4, uint64(p.Epfd))
	b.Putbits(253, 6, uint64(p.Second))
	b.Putbits(259, 1, boolBit(p.OffPosition))
	b.Putbits(260, 8, uint64(p.Regional))
	b.Putbits(268, 1, boolBit(p.Raim))
	b.Putbits(269, 1, boolBit(p.VirtualAid))
	b.Putbits(270, 1, boolBit(p.Assigned))
	if ext != "" {
		if err := encodeSixBitField(b, 272, len(ext), ext); err != nil {
			return nil, 0, err
		}
	}
	return b, total, nil
}
