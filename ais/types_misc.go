package ais

import "github.com/tidewatch/aivdm/bitbuf"

// decodeSafetyAck implements message types 7 and 13: a spare(2) header
// followed by 1..4 repeating 32-bit groups (30-bit MMSI + 2 spare) at
// stride 32, matching driver_aivdm.c's UBITS(40+32*i, 30) loop.
func decodeSafetyAck(b *bitbuf.Buf, bitlen int, t MessageType) (*SafetyAck, error) {
	if bitlen < 72 || bitlen > 168 || (bitlen-40)%32 != 0 {
		return nil, lengthError(t, bitlen, "72,104,136,168")
	}
	count := (bitlen - 40) / 32
	mmsis := make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		v, _ := b.Ubits(40+32*i, 30)
		mmsis = append(mmsis, uint32(v))
	}
	return &SafetyAck{MMSIs: mmsis}, nil
}

func encodeSafetyAck(p *SafetyAck) *bitbuf.Buf {
	total := 40 + 32*len(p.MMSIs)
	b := bitbuf.New(total)
	for i, m := range p.MMSIs {
		b.Putbits(40+32*i, 30, uint64(m))
	}
	return b
}

// decodeSARAircraftPosition implements message type 9 (168 bits).
func decodeSARAircraftPosition(b *bitbuf.Buf, bitlen int) (*SARAircraftPosition, error) {
	if bitlen != 168 {
		return nil, lengthError(TypeSARAircraftPosition, bitlen, "168")
	}
	alt, _ := b.Ubits(38, 12)
	speed, _ := b.Ubits(50, 10)
	accuracy, _ := b.Ubits(60, 1)
	lon, _ := b.Sbits(61, 28)
	lat, _ := b.Sbits(89, 27)
	course, _ := b.Ubits(116, 12)
	second, _ := b.Ubits(128, 6)
	regional, _ := b.Ubits(134, 8)
	dte, _ := b.Ubits(142, 1)
	assigned, _ := b.Ubits(146, 1)
	raim, _ := b.Ubits(147, 1)
	radio, _ := b.Ubits(148, 19)

	return &SARAircraftPosition{
		Altitude: uint16(alt),
		Speed:    uint16(speed),
		Accuracy: accuracy != 0,
		Lon:      int32(lon),
		Lat:      int32(lat),
		Course:   uint16(course),
		Second:   uint8(second),
		Regional: uint8(regional),
		Dte:      dte != 0,
		Assigned: assigned != 0,
		Raim:     raim != 0,
		Radio:    uint32(radio),
	}, nil
}

func encodeSARAircraftPosition(p *SARAircraftPosition) *bitbuf.Buf {
	b := bitbuf.New(168)
	b.Putbits(38, 12, uint64(p.Altitude))
	b.Putbits(50, 10, uint64(p.Speed))
	b.Putbits(60, 1, boolBit(p.Accuracy))
	b.PutSbits(61, 28, int64(p.Lon))
	b.PutSbits(89, 27, int64(p.Lat))
	b.Putbits(116, 12, uint64(p.Course))
	b.Putbits(128, 6, uint64(p.Second))
	b.Putbits(134, 8, uint64(p.Regional))
	b.Putbits(142, 1, boolBit(p.Dte))
	b.Putbits(146, 1, boolBit(p.Assigned))
	b.Putbits(147, 1, boolBit(p.Raim))
	b.Putbits(148, 19, uint64(p.Radio))
	return b
}

// decodeUTCDateInquiry implements message type 10 (72 bits).
func decodeUTCDateInquiry(b *bitbuf.Buf, bitlen int) (*UTCDateInquiry, error) {
	if bitlen != 72 {
		return nil, lengthError(TypeUTCDateInquiry, bitlen, "72")
	}
	dest, _ := b.Ubits(40, 30)
	return &UTCDateInquiry{DestMMSI: uint32(dest)}, nil
}

func encodeUTCDateInquiry(p *UTCDateInquiry) *bitbuf.Buf {
	b := bitbuf.New(72)
	b.Putbits(40, 30, uint64(p.DestMMSI))
	return b
}

// decodeAddressedSafety implements message type 12 (addressed);
// decodeBroadcastSafety below handles type 14 (broadcast).
func decodeAddressedSafety(b *bitbuf.Buf, bitlen int) (*SafetyMessage, error) {
	if bitlen < 72 || bitlen > 1008 {
		return nil, lengthError(TypeAddressedSafety, bitlen, "72..1008")
	}
	seqno, _ := b.Ubits(38, 2)
	dest, _ := b.Ubits(40, 30)
	retransmit, _ := b.Ubits(70, 1)
	text, err := decodeSixBitField(b, 72, (bitlen-72)/6)
	if err != nil {
		return nil, err
	}
	return &SafetyMessage{SeqNo: uint8(seqno), DestMMSI: uint32(dest), Retransmit: retransmit != 0, Text: text}, nil
}

func encodeAddressedSafety(p *SafetyMessage, chars int) (*bitbuf.Buf, int, error) {
	total := 72 + chars*6
	b := bitbuf.New(total)
	b.Putbits(38, 2, uint64(p.SeqNo))
	b.Putbits(40, 30, uint64(p.DestMMSI))
	b.Putbits(70, 1, boolBit(p.Retransmit))
	if err := encodeSixBitField(b, 72, chars, p.Text); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

func decodeBroadcastSafety(b *bitbuf.Buf, bitlen int) (*SafetyMessage, error) {
	if bitlen < 40 || bitlen > 1008 {
		return nil, lengthError(TypeBroadcastSafety, bitlen, "40..1008")
	}
	text, err := decodeSixBitField(b, 40, (bitlen-40)/6)
	if err != nil {
		return nil, err
	}
	return &SafetyMessage{Text: text}, nil
}

func encodeBroadcastSafety(p *SafetyMessage, chars int) (*bitbuf.Buf, int, error) {
	total := 40 + chars*6
	b := bitbuf.New(total)
	if err := encodeSixBitField(b, 40, chars, p.Text); err != nil {
		return nil, 0, err
	}
	return b, total, nil
}

// decodeInterrogation implements message type 15 (88..168 bits).
//
// The source assigns into type1_1 twice; this follows the ITU offsets
// instead: the first station's second request at @90/@96, and the second
// station's MMSI at @110 with its request at @140/@146.
func decodeInterrogation(b *bitbuf.Buf, bitlen int) (*Interrogation, error) {
	if bitlen < 88 || bitlen > 168 {
		return nil, lengthError(TypeInterrogation, bitlen, "88..168")
	}
	mmsi1, _ := b.Ubits(40, 30)
	type1a, _ := b.Ubits(70, 6)
	offset1a, _ := b.Ubits(76, 12)

	out := &Interrogation{
		MMSI1:     uint32(mmsi1),
		Requests1: []InterrogationRequest{{MessageType: uint8(type1a), SlotOffset: uint16(offset1a)}},
	}

	if bitlen >= 110 {
		type1b, _ := b.Ubits(90, 6)
		offset1b, _ := b.Ubits(96, 12)
		out.Requests1 = append(out.Requests1, InterrogationRequest{MessageType: uint8(type1b), SlotOffset: uint16(offset1b)})
	}
	if bitlen >= 160 {
		mmsi2, _ := b.Ubits(110, 30)
		type2, _ := b.Ubits(140, 6)
		offset2, _ := b.Ubits(146, 12)
		out.MMSI2 = uint32(mmsi2)
		out.Request2 = InterrogationRequest{MessageType: uint8(type2), SlotOffset: uint16(offset2)}
		out.HasMMSI2 = true
	}
	return out, nil
}

func encodeInterrogation(p *Interrogation) (*bitbuf.Buf, int) {
	total := 88
	if len(p.Requests1) > 1 {
		total = 110
	}
	if p.HasMMSI2 {
		total = 160
	}
	b := bitbuf.New(total)
	b.Putbits(40, 30, uint64(p.MMSI1))
	b.Putbits(70, 6, uint64(p.Requests1[0].MessageType))
	b.Putbits(76, 12, uint64(p.Requests1[0].SlotOffset))
	if len(p.Requests1) > 1 {
		b.Putbits(90, 6, uint64(p.Requests1[1].MessageType))
		b.Putbits(96, 12, uint64(p.Requests1[1].SlotOffset))
	}
	if p.HasMMSI2 {
		b.Putbits(110, 30, uint64(p.MMSI2))
		b.Putbits(140, 6, uint64(p.Request2.MessageType))
		b.Putbits(146, 12, uint64(p.Request2.SlotOffset))
	}
	return b, total
}

// decodeAssignedMode implements message type 16 (96 or 144 bits).
func decodeAssignedMode(b *bitbuf.Buf, bitlen int) (*AssignedMode, error) {
	if bitlen != 96 && bitlen != 144 {
		return nil, lengthError(TypeAssignedMode, bitlen, "96,144")
	}
	mmsi1, _ := b.Ubits(40, 30)
	offset1, _ := b.Ubits(70, 12)
	increment1, _ := b.Ubits(82, 10)
	out := &AssignedMode{Slots: []AssignedModeSlot{{MMSI: uint32(mmsi1), Offset: uint16(offset1), Increment: uint16(increment1)}}}

	if bitlen == 144 {
		mmsi2, _ := b.Ubits(92, 30)
		offset2, _ := b.Ubits(122, 12)
		increment2, _ := b.Ubits(134, 10)
		out.Slots = append(out.Slots, AssignedModeSlot{MMSI: uint32(mmsi2), Offset: uint16(offset2), Increment: uint16(increment2)})
	}
	return out, nil
}

func encodeAssignedMode(p *AssignedMode) *bitbuf.Buf {
	total := 96
	if len(p.Slots) > 1 {
		total = 144
	}
	b := bitbuf.New(total)
	b.Putbits(40, 30, uint64(p.Slots[0].MMSI))
	b.Putbits(70, 12, uint64(p.Slots[0].Offset))
	b.Putbits(82, 10, uint64(p.Slots[0].Increment))
	if len(p.Slots) > 1 {
		b.Putbits(92, 30, uint64(p.Slots[1].MMSI))
		b.Putbits(122, 12, uint64(p.Slots[1].Offset))
		b.Putbits(134, 10, uint64(p.Slots[1].Increment))
	}
	return b
}

// decodeDataLinkManagement implements message type 20 (72..160 bits): 1
// to 4 repeating 30-bit reservation groups at stride 30 starting at bit
// 40 (offset 12 + number 4 + timeout 3 + increment 11).
func decodeDataLinkManagement(b *bitbuf.Buf, bitlen int) (*DataLinkManagement, error) {
	if bitlen < 72 || bitlen > 160 {
		return nil, lengthError(TypeDataLinkManagement, bitlen, "72..160")
	}
	count := (bitlen - 40) / 30
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}
	slots := make([]DataLinkSlot, 0, count)
	for i := 0; i < count; i++ {
		base := 40 + 30*i
		offset, _ := b.Ubits(base, 12)
		number, _ := b.Ubits(base+12, 4)
		timeout, _ := b.Ubits(base+16, 3)
		increment, _ := b.Ubits(base+19, 11)
		slots = append(slots, DataLinkSlot{Offset: uint16(offset), Number: uint8(number), Timeout: uint8(timeout), Increment: uint16(increment)})
	}
	return &DataLinkManagement{Slots: slots}, nil
}

func encodeDataLinkManagement(p *DataLinkManagement) (*bitbuf.Buf, int) {
	total := 40 + 30*len(p.Slots)
	b := bitbuf.New(total)
	for i, s := range p.Slots {
		base := 40 + 30*i
		b.Putbits(base, 12, uint64(s.Offset))
		b.Putbits(base+12, 4, uint64(s.Number))
		b.Putbits(base+16, 3, uint64(s.Timeout))
		b.Putbits(base+19, 11, uint64(s.Increment))
	}
	return b, total
}

// decodeGroupAssignment implements message type 23 (160 bits).
//
// The source's offsets for txrx/interval/quiet overlap; this uses the
// corrected, non-overlapping layout.
func decodeGroupAssignment(b *bitbuf.Buf, bitlen int) (*GroupAssignment, error) {
	if bitlen != 160 {
		return nil, lengthError(TypeGroupAssignment, bitlen, "160")
	}
	neLon, _ := b.Sbits(40, 18)
	neLat, _ := b.Sbits(58, 17)
	swLon, _ := b.Sbits(75, 18)
	swLat, _ := b.Sbits(93, 17)
	stationType, _ := b.Ubits(110, 4)
	shipType, _ := b.Ubits(114, 8)
	txrx, _ := b.Ubits(144, 4)
	interval, _ := b.Ubits(148, 4)
	quiet, _ := b.Ubits(152, 4)

	return &GroupAssignment{
		NELon:       int32(neLon),
		NELat:       int32(neLat),
		SWLon:       int32(swLon),
		SWLat:       int32(swLat),
		StationType: uint8(stationType),
		ShipType:    uint8(shipType),
		TxRx:        uint8(txrx),
		Interval:    uint8(interval),
		Quiet:       uint8(quiet),
	}, nil
}

func encodeGroupAssignment(p *GroupAssignment) *bitbuf.Buf {
	b := bitbuf.New(160)
	b.PutSbits(40, 18, int64(p.NELon))
	b.PutSbits(58, 17, int64(p.NELat))
	b.PutSbits(75, 18, int64(p.SWLon))
	b.PutSbits(93, 17, int64(p.SWLat))
	b.Putbits(110, 4, uint64(p.StationType))
	b.Putbits(114, 8, uint64(p.ShipType))
	b.Putbits(144, 4, uint64(p.TxRx))
	b.Putbits(148, 4, uint64(p.Interval))
	b.Putbits(152, 4, uint64(p.Quiet))
	return b
}
