package ais

import (
	"github.com/tidewatch/aivdm/bitbuf"
	"github.com/tidewatch/aivdm/mmsi"
	"github.com/tidewatch/aivdm/sixbit"
)

// decodeClassBPosition implements message type 18 (168 bits).
func decodeClassBPosition(b *bitbuf.Buf, bitlen int) (*ClassBPositionReport, error) {
	if bitlen != 168 {
		return nil, lengthError(TypeClassBPosition, bitlen, "168")
	}
	speed, _ := b.Ubits(46, 10)
	accuracy, _ := b.Ubits(56, 1)
	lon, _ := b.Sbits(57, 28)
	lat, _ := b.Sbits(85, 27)
	course, _ := b.Ubits(112, 12)
	heading, _ := b.Ubits(124, 9)
	second, _ := b.Ubits(133, 6)
	regional, _ := b.Ubits(139, 2)
	cs, _ := b.Ubits(141, 1)
	display, _ := b.Ubits(142, 1)
	dsc, _ := b.Ubits(143, 1)
	band, _ := b.Ubits(144, 1)
	msg22, _ := b.Ubits(145, 1)
	assigned, _ := b.Ubits(146, 1)
	raim, _ := b.Ubits(147, 1)
	radio, _ := b.Ubits(148, 20)

	return &ClassBPositionReport{
		Speed:    uint16(speed),
		Accuracy: accuracy != 0,
		Lon:      int32(lon),
		Lat:      int32(lat),
		Course:   uint16(course),
		Heading:  uint16(heading),
		Second:   uint8(second),
		Regional: uint8(regional),
		CsUnit:   cs != 0,
		Display:  display != 0,
		Dsc:      dsc != 0,
		Band:     band != 0,
		Msg22:    msg22 != 0,
		Assigned: assigned != 0,
		Raim:     raim != 0,
		Radio:    uint32(radio),
	}, nil
}

func encodeClassBPosition(p *ClassBPositionReport) *bitbuf.Buf {
	b := bitbuf.New(168)
	b.Putbits(46, 10, uint64(p.Speed))
	b.Putbits(56, 1, boolBit(p.Accuracy))
	b.PutSbits(57, 28, int64(p.Lon))
	b.PutSbits(85, 27, int64(p.Lat))
	b.Putbits(112, 12, uint64(p.Course))
	b.Putbits(124, 9, uint64(p.Heading))
	b.Putbits(133, 6, uint64(p.Second))
	b.Putbits(139, 2, uint64(p.Regional))
	b.Putbits(141, 1, boolBit(p.CsUnit))
	b.Putbits(142, 1, boolBit(p.Display))
	b.Putbits(143, 1, boolBit(p.Dsc))
	b.Putbits(144, 1, boolBit(p.Band))
	b.Putbits(145, 1, boolBit(p.Msg22))
	b.Putbits(146, 1, boolBit(p.Assigned))
	b.Putbits(147, 1, boolBit(p.Raim))
	b.Putbits(148, 20, uint64(p.Radio))
	return b
}

// decodeClassBExtended implements message type 19 (312 bits).
//
// The source's epfd/raim/dte/assigned offsets overlap the shipname and
// dimension fields; this uses the corrected, non-overlapping layout.
func decodeClassBExtended(b *bitbuf.Buf, bitlen int) (*ClassBExtendedReport, error) {
	if bitlen != 312 {
		return nil, lengthError(TypeClassBExtended, bitlen, "312")
	}
	speed, _ := b.Ubits(46, 10)
	accuracy, _ := b.Ubits(56, 1)
	lon, _ := b.Sbits(57, 28)
	lat, _ := b.Sbits(85, 27)
	course, _ := b.Ubits(112, 12)
	heading, _ := b.Ubits(124, 9)
	second, _ := b.Ubits(133, 6)
	regional, _ := b.Ubits(139, 4)
	shipname, err := decodeSixBitField(b, 143, 20)
	if err != nil {
		return nil, err
	}
	shiptype, _ := b.Ubits(263, 8)
	toBow, _ := b.Ubits(271, 9)
	toStern, _ := b.Ubits(280, 9)
	toPort, _ := b.Ubits(289, 6)
	toStarboard, _ := b.Ubits(295, 6)
	epfd, _ := b.Ubits(301, 4)
	raim, _ := b.Ubits(305, 1)
	dte, _ := b.Ubits(306, 1)
	assigned, _ := b.Ubits(307, 1)

	return &ClassBExtendedReport{
		Speed:       uint16(speed),
		Accuracy:    accuracy != 0,
		Lon:         int32(lon),
		Lat:         int32(lat),
		Course:      uint16(course),
		Heading:     uint16(heading),
		Second:      uint8(second),
		Regional:    uint8(regional),
		Shipname:    shipname,
		Shiptype:    uint8(shiptype),
		ToBow:       uint16(toBow),
		ToStern:     uint16(toStern),
		ToPort:      uint8(toPort),
		ToStarboard: uint8(toStarboard),
		Epfd:        uint8(epfd),
		Raim:        raim != 0,
		Dte:         dte != 0,
		Assigned:    assigned != 0,
	}, nil
}

func encodeClassBExtended(p *ClassBExtendedReport) (*bitbuf.Buf, error) {
	b := bitbuf.New(312)
	b.Putbits(46, 10, uint64(p.Speed))
	b.Putbits(56, 1, boolBit(p.Accuracy))
	b.PutSbits(57, 28, int64(p.Lon))
	b.PutSbits(85, 27, int64(p.Lat))
	b.Putbits(112, 12, uint64(p.Course))
	b.Putbits(124, 9, uint64(p.Heading))
	b.Putbits(133, 6, uint64(p.Second))
	b.Putbits(139, 4, uint64(p.Regional))
	if err := encodeSixBitField(b, 143, 20, p.Shipname); err != nil {
		return nil, err
	}
	b.Putbits(263, 8, uint64(p.Shiptype))
	b.Putbits(271, 9, uint64(p.ToBow))
	b.Putbits(280, 9, uint64(p.ToStern))
	b.Putbits(289, 6, uint64(p.ToPort))
	b.Putbits(295, 6, uint64(p.ToStarboard))
	b.Putbits(301, 4, uint64(p.Epfd))
	b.Putbits(305, 1, boolBit(p.Raim))
	b.Putbits(306, 1, boolBit(p.Dte))
	b.Putbits(307, 1, boolBit(p.Assigned))
	return b, nil
}

// decodeClassBStaticPartA reads message type 24 Part A (160 bits),
// returning the staged shipname; the caller (package frame) owns
// stashing it in the AssemblyContext until Part B arrives.
func decodeClassBStaticPartA(b *bitbuf.Buf, bitlen int) (string, error) {
	if bitlen != 160 {
		return "", lengthError(TypeClassBStaticPartA, bitlen, "160")
	}
	return decodeSixBitField(b, 40, 20)
}

func encodeClassBStaticPartA(shipname string) (*bitbuf.Buf, error) {
	b := bitbuf.New(160)
	b.Putbits(38, 2, 0)
	if err := encodeSixBitField(b, 40, 20, shipname); err != nil {
		return nil, err
	}
	return b, nil
}

// decodeClassBStaticPartB reads message type 24 Part B (168 bits). The
// mothership-vs-dimensions branch at bit 132 is chosen from the station
// MMSI itself, not from any bit in the payload (mmsi.IsAuxiliaryCraft).
func decodeClassBStaticPartB(b *bitbuf.Buf, bitlen int, stationMMSI uint32) (*ClassBStatic, error) {
	if bitlen != 168 {
		return nil, lengthError(TypeClassBStaticPartB, bitlen, "168")
	}
	shiptype, _ := b.Ubits(40, 8)
	vendorCodes := make([]uint8, 7)
	for i := range vendorCodes {
		v, _ := b.Ubits(48+i*6, 6)
		vendorCodes[i] = uint8(v)
	}
	vendorID, err := sixbit.DecodeText(vendorCodes)
	if err != nil {
		return nil, err
	}
	callsign, err := decodeSixBitField(b, 90, 7)
	if err != nil {
		return nil, err
	}

	out := &ClassBStatic{
		Shiptype: uint8(shiptype),
		VendorID: vendorID,
		Callsign: callsign,
	}
	if mmsi.IsAuxiliaryCraft(stationMMSI) {
		mothership, _ := b.Ubits(132, 30)
		out.MothershipMMSI = uint32(mothership)
	} else {
		toBow, _ := b.Ubits(132, 9)
		toStern, _ := b.Ubits(141, 9)
		toPort, _ := b.Ubits(150, 6)
		toStarboard, _ := b.Ubits(156, 6)
		out.ToBow = uint16(toBow)
		out.ToStern = uint16(toStern)
		out.ToPort = uint8(toPort)
		out.ToStarboard = uint8(toStarboard)
	}
	return out, nil
}

func encodeClassBStaticPartB(p *ClassBStatic, stationMMSI uint32) (*bitbuf.Buf, error) {
	b := bitbuf.New(168)
	b.Putbits(38, 2, 1)
	b.Putbits(40, 8, uint64(p.Shiptype))
	if err := encodeSixBitField(b, 48, 7, p.VendorID); err != nil {
		return nil, err
	}
	if err := encodeSixBitField(b, 90, 7, p.Callsign); err != nil {
		return nil, err
	}
	if mmsi.IsAuxiliaryCraft(stationMMSI) {
		b.Putbits(132, 30, uint64(p.MothershipMMSI))
	} else {
		b.Putbits(132, 9, uint64(p.ToBow))
		b.Putbits(141, 9, uint64(p.ToStern))
		b.Putbits(150, 6, uint64(p.ToPort))
		b.Putbits(156, 6, uint64(p.ToStarboard))
	}
	return b, nil
}
