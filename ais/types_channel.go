package ais

import (
	"errors"

	"github.com/tidewatch/aivdm/bitbuf"
)

var errChannelManagementMissingUnion = errors.New("ais: ChannelManagement requires either Area or Addressed")

// decodeChannelManagement implements message type 22 (168 bits).
//
// The source reads the two destination MMSIs with SBITS; they are
// unsigned 30-bit fields, and are read with Ubits here.
func decodeChannelManagement(b *bitbuf.Buf, bitlen int) (*ChannelManagement, error) {
	if bitlen != 168 {
		return nil, lengthError(TypeChannelManagement, bitlen, "168")
	}
	channelA, _ := b.Ubits(40, 12)
	channelB, _ := b.Ubits(52, 12)
	txrx, _ := b.Ubits(64, 4)
	power, _ := b.Ubits(68, 1)
	addressed, _ := b.Ubits(139, 1)
	bandA, _ := b.Ubits(140, 1)
	bandB, _ := b.Ubits(141, 1)
	zoneSize, _ := b.Ubits(142, 3)

	out := &ChannelManagement{
		ChannelA: uint16(channelA),
		ChannelB: uint16(channelB),
		TxRx:     uint8(txrx),
		Power:    power != 0,
		BandA:    bandA != 0,
		BandB:    bandB != 0,
		ZoneSize: uint8(zoneSize),
	}
	if addressed != 0 {
		dest1, _ := b.Ubits(69, 30)
		dest2, _ := b.Ubits(104, 30)
		out.Addressed = &ChannelAddressed{Dest1: uint32(dest1), Dest2: uint32(dest2)}
	} else {
		neLon, _ := b.Sbits(69, 18)
		neLat, _ := b.Sbits(87, 17)
		swLon, _ := b.Sbits(104, 18)
		swLat, _ := b.Sbits(122, 17)
		out.Area = &ChannelArea{NELon: int32(neLon), NELat: int32(neLat), SWLon: int32(swLon), SWLat: int32(swLat)}
	}
	return out, nil
}

func encodeChannelManagement(p *ChannelManagement) (*bitbuf.Buf, error) {
	b := bitbuf.New(168)
	b.Putbits(40, 12, uint64(p.ChannelA))
	b.Putbits(52, 12, uint64(p.ChannelB))
	b.Putbits(64, 4, uint64(p.TxRx))
	b.Putbits(68, 1, boolBit(p.Power))
	b.Putbits(140, 1, boolBit(p.BandA))
	b.Putbits(141, 1, boolBit(p.BandB))
	b.Putbits(142, 3, uint64(p.ZoneSize))

	if p.Addressed != nil {
		b.Putbits(139, 1, 1)
		b.Putbits(69, 30, uint64(p.Addressed.Dest1))
		b.Putbits(104, 30, uint64(p.Addressed.Dest2))
	} else if p.Area != nil {
		b.Putbits(139, 1, 0)
		b.PutSbits(69, 18, int64(p.Area.NELon))
		b.PutSbits(87, 17, int64(p.Area.NELat))
		b.PutSbits(104, 18, int64(p.Area.SWLon))
		b.PutSbits(122, 17, int64(p.Area.SWLat))
	} else {
		return nil, valueOutOfRangeError(errChannelManagementMissingUnion)
	}
	return b, nil
}
