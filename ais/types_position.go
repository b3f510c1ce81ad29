package ais

import "github.com/tidewatch/aivdm/bitbuf"

// decodePositionReportA implements message types 1, 2 and 3 (168 bits).
//
// Offsets below 149 follow driver_aivdm.c verbatim. The radio field is
// 19 bits, not the 20 the source's comment and spec prose both claim:
// 149+19 == 168 exactly, while 20 would overrun the message.
func decodePositionReportA(b *bitbuf.Buf, bitlen int, t MessageType) (*PositionReportA, error) {
	if bitlen != 168 {
		return nil, lengthError(t, bitlen, "168")
	}
	status, _ := b.Ubits(38, 4)
	turn, _ := b.Sbits(42, 8)
	speed, _ := b.Ubits(50, 10)
	accuracy, _ := b.Ubits(60, 1)
	lon, _ := b.Sbits(61, 28)
	lat, _ := b.Sbits(89, 27)
	course, _ := b.Ubits(116, 12)
	heading, _ := b.Ubits(128, 9)
	second, _ := b.Ubits(137, 6)
	maneuver, _ := b.Ubits(143, 2)
	raim, _ := b.Ubits(148, 1)
	radio, _ := b.Ubits(149, 19)

	return &PositionReportA{
		Status:   uint8(status),
		Turn:     int8(turn),
		Speed:    uint16(speed),
		Accuracy: accuracy != 0,
		Lon:      int32(lon),
		Lat:      int32(lat),
		Course:   uint16(course),
		Heading:  uint16(heading),
		Second:   uint8(second),
		Maneuver: uint8(maneuver),
		Raim:     raim != 0,
		Radio:    uint32(radio),
	}, nil
}

func encodePositionReportA(p *PositionReportA) *bitbuf.Buf {
	b := bitbuf.New(168)
	b.Putbits(38, 4, uint64(p.Status))
	b.PutSbits(42, 8, int64(p.Turn))
	b.Putbits(50, 10, uint64(p.Speed))
	b.Putbits(60, 1, boolBit(p.Accuracy))
	b.PutSbits(61, 28, int64(p.Lon))
	b.PutSbits(89, 27, int64(p.Lat))
	b.Putbits(116, 12, uint64(p.Course))
	b.Putbits(128, 9, uint64(p.Heading))
	b.Putbits(137, 6, uint64(p.Second))
	b.Putbits(143, 2, uint64(p.Maneuver))
	b.Putbits(148, 1, boolBit(p.Raim))
	b.Putbits(149, 19, uint64(p.Radio))
	return b
}

func boolBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
