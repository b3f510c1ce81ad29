package ais

import "github.com/tidewatch/aivdm/bitbuf"

// decodeBaseStationReport implements message types 4 and 11 (168 bits).
func decodeBaseStationReport(b *bitbuf.Buf, bitlen int, t MessageType) (*BaseStationReport, error) {
	if bitlen != 168 {
		return nil, lengthError(t, bitlen, "168")
	}
	year, _ := b.Ubits(38, 14)
	month, _ := b.Ubits(52, 4)
	day, _ := b.Ubits(56, 5)
	hour, _ := b.Ubits(61, 5)
	minute, _ := b.Ubits(66, 6)
	second, _ := b.Ubits(72, 6)
	accuracy, _ := b.Ubits(78, 1)
	lon, _ := b.Sbits(79, 28)
	lat, _ := b.Sbits(107, 27)
	epfd, _ := b.Ubits(134, 4)
	raim, _ := b.Ubits(148, 1)
	radio, _ := b.Ubits(149, 19)

	return &BaseStationReport{
		Year:     uint16(year),
		Month:    uint8(month),
		Day:      uint8(day),
		Hour:     uint8(hour),
		Minute:   uint8(minute),
		Second:   uint8(second),
		Accuracy: accuracy != 0,
		Lon:      int32(lon),
		Lat:      int32(lat),
		Epfd:     uint8(epfd),
		Raim:     raim != 0,
		Radio:    uint32(radio),
	}, nil
}

func encodeBaseStationReport(p *BaseStationReport) *bitbuf.Buf {
	b := bitbuf.New(168)
	b.Putbits(38, 14, uint64(p.Year))
	b.Putbits(52, 4, uint64(p.Month))
	b.Putbits(56, 5, uint64(p.Day))
	b.Putbits(61, 5, uint64(p.Hour))
	b.Putbits(66, 6, uint64(p.Minute))
	b.Putbits(72, 6, uint64(p.Second))
	b.Putbits(78, 1, boolBit(p.Accuracy))
	b.PutSbits(79, 28, int64(p.Lon))
	b.PutSbits(107, 27, int64(p.Lat))
	b.Putbits(134, 4, uint64(p.Epfd))
	b.Putbits(148, 1, boolBit(p.Raim))
	b.Putbits(149, 19, uint64(p.Radio))
	return b
}
