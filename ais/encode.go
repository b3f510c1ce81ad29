package ais

import "github.com/tidewatch/aivdm/bitbuf"

func writeHeader(b *bitbuf.Buf, h Header) {
	b.Putbits(0, 6, uint64(h.Type))
	b.Putbits(6, 2, uint64(h.Repeat))
	b.Putbits(8, 30, uint64(h.MMSI))
}

// Encode dispatches on rec.Header.Type and writes the record into a
// freshly sized bit buffer, including the common header. It returns the
// buffer and the number of valid bits within it — which, for the
// variable-length binary/text carriers, is not necessarily b.Len()
// rounded to a byte boundary, so each branch tracks its own exact count
// rather than trusting the buffer's storage size. Type 24 is encoded via
// EncodeClassBStaticPartA/PartB instead, since one ClassBStatic record
// becomes two sentences.
func Encode(rec *AisRecord) (*bitbuf.Buf, int, error) {
	var b *bitbuf.Buf
	var bitlen int
	var err error

	switch rec.Header.Type {
	case TypePositionReportA, TypePositionReportAAssigned, TypePositionReportAResponse:
		b = encodePositionReportA(rec.PositionReportA)
		bitlen = 168
	case TypeBaseStation, TypeUTCDateResponse:
		b = encodeBaseStationReport(rec.BaseStation)
		bitlen = 168
	case TypeStaticAndVoyage:
		b, err = encodeStaticAndVoyage(rec.StaticAndVoyage)
		bitlen = 424
	case TypeAddressedBinary:
		b, bitlen, err = encodeAddressedBinary(rec.AddressedBinary)
	case TypeBinaryAck:
		b = encodeSafetyAck(rec.BinaryAck)
		bitlen = 40 + 32*len(rec.BinaryAck.MMSIs)
	case TypeBroadcastBinary:
		b, bitlen, err = encodeBroadcastBinary(rec.BroadcastBinary)
	case TypeSARAircraftPosition:
		b = encodeSARAircraftPosition(rec.SARAircraftPosition)
		bitlen = 168
	case TypeUTCDateInquiry:
		b = encodeUTCDateInquiry(rec.UTCDateInquiry)
		bitlen = 72
	case TypeAddressedSafety:
		chars := sixBitTextWidth(rec.AddressedSafety.Text)
		b, bitlen, err = encodeAddressedSafety(rec.AddressedSafety, chars)
	case TypeSafetyAck:
		b = encodeSafetyAck(rec.SafetyAck)
		bitlen = 40 + 32*len(rec.SafetyAck.MMSIs)
	case TypeBroadcastSafety:
		chars := sixBitTextWidth(rec.BroadcastSafety.Text)
		b, bitlen, err = encodeBroadcastSafety(rec.BroadcastSafety, chars)
	case TypeInterrogation:
		b, bitlen = encodeInterrogation(rec.Interrogation)
	case TypeAssignedMode:
		b = encodeAssignedMode(rec.AssignedMode)
		bitlen = 96
		if len(rec.AssignedMode.Slots) > 1 {
			bitlen = 144
		}
	case TypeGnssBinary:
		b, bitlen, err = encodeGnssBinary(rec.GnssBinary)
	case TypeClassBPosition:
		b = encodeClassBPosition(rec.ClassBPosition)
		bitlen = 168
	case TypeClassBExtended:
		b, err = encodeClassBExtended(rec.ClassBExtended)
		bitlen = 312
	case TypeDataLinkManagement:
		b, bitlen = encodeDataLinkManagement(rec.DataLinkManagement)
	case TypeAidToNavigation:
		b, bitlen, err = encodeAidToNavigation(rec.AidToNavigation)
	case TypeChannelManagement:
		b, err = encodeChannelManagement(rec.ChannelManagement)
		bitlen = 168
	case TypeGroupAssignment:
		b = encodeGroupAssignment(rec.GroupAssignment)
		bitlen = 160
	case TypeSingleSlotBinary:
		b, bitlen, err = encodeSingleSlotBinary(rec.SingleSlotBinary)
	case TypeMultiSlotBinary:
		b, bitlen, err = encodeMultiSlotBinary(rec.MultiSlotBinary)
	default:
		return nil, 0, unsupportedError(rec.Header.Type)
	}
	if err != nil {
		return nil, 0, err
	}
	writeHeader(b, rec.Header)
	return b, bitlen, nil
}

// EncodeClassBStaticPartA writes message type 24 Part A for a record's
// staged shipname.
func EncodeClassBStaticPartA(header Header, shipname string) (*bitbuf.Buf, int, error) {
	b, err := encodeClassBStaticPartA(shipname)
	if err != nil {
		return nil, 0, err
	}
	writeHeader(b, header)
	return b, 160, nil
}

// EncodeClassBStaticPartB writes message type 24 Part B for p.
func EncodeClassBStaticPartB(header Header, p *ClassBStatic) (*bitbuf.Buf, int, error) {
	b, err := encodeClassBStaticPartB(p, header.MMSI)
	if err != nil {
		return nil, 0, err
	}
	writeHeader(b, header)
	return b, 168, nil
}

// sixBitTextWidth rounds a text field's encoded length up to a whole
// character count; at least 1 to keep the payload non-empty.
func sixBitTextWidth(s string) int {
	if len(s) == 0 {
		return 1
	}
	return len(s)
}
