package ais

import "github.com/tidewatch/aivdm/bitbuf"

// DecodeHeader reads the three fields common to every message type.
func DecodeHeader(b *bitbuf.Buf) (Header, error) {
	t, err := b.Ubits(0, 6)
	if err != nil {
		return Header{}, err
	}
	repeat, err := b.Ubits(6, 2)
	if err != nil {
		return Header{}, err
	}
	m, err := b.Ubits(8, 30)
	if err != nil {
		return Header{}, err
	}
	return Header{Type: MessageType(t), Repeat: uint8(repeat), MMSI: uint32(m)}, nil
}

// Decode dispatches on the message type encoded in the first six bits of
// b and populates an AisRecord. bitlen is the number of valid bits in b
// (which may be shorter than b.Len(), the buffer's byte-rounded
// capacity). Type 24 is handled by package frame, which must stage Part
// A's shipname across sentences before Part B can be decoded; Decode
// rejects it as unsupported so callers do not bypass that reassembly.
func Decode(b *bitbuf.Buf, bitlen int) (*AisRecord, error) {
	header, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}
	rec := &AisRecord{Header: header}

	switch header.Type {
	case TypePositionReportA, TypePositionReportAAssigned, TypePositionReportAResponse:
		p, err := decodePositionReportA(b, bitlen, header.Type)
		if err != nil {
			return rec, err
		}
		rec.PositionReportA = p
	case TypeBaseStation, TypeUTCDateResponse:
		p, err := decodeBaseStationReport(b, bitlen, header.Type)
		if err != nil {
			return rec, err
		}
		rec.BaseStation = p
	case TypeStaticAndVoyage:
		p, err := decodeStaticAndVoyage(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.StaticAndVoyage = p
	case TypeAddressedBinary:
		p, err := decodeAddressedBinary(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.AddressedBinary = p
	case TypeBinaryAck:
		p, err := decodeSafetyAck(b, bitlen, TypeBinaryAck)
		if err != nil {
			return rec, err
		}
		rec.BinaryAck = p
	case TypeBroadcastBinary:
		p, err := decodeBroadcastBinary(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.BroadcastBinary = p
	case TypeSARAircraftPosition:
		p, err := decodeSARAircraftPosition(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.SARAircraftPosition = p
	case TypeUTCDateInquiry:
		p, err := decodeUTCDateInquiry(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.UTCDateInquiry = p
	case TypeAddressedSafety:
		p, err := decodeAddressedSafety(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.AddressedSafety = p
	case TypeSafetyAck:
		p, err := decodeSafetyAck(b, bitlen, TypeSafetyAck)
		if err != nil {
			return rec, err
		}
		rec.SafetyAck = p
	case TypeBroadcastSafety:
		p, err := decodeBroadcastSafety(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.BroadcastSafety = p
	case TypeInterrogation:
		p, err := decodeInterrogation(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.Interrogation = p
	case TypeAssignedMode:
		p, err := decodeAssignedMode(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.AssignedMode = p
	case TypeGnssBinary:
		p, err := decodeGnssBinary(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.GnssBinary = p
	case TypeClassBPosition:
		p, err := decodeClassBPosition(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.ClassBPosition = p
	case TypeClassBExtended:
		p, err := decodeClassBExtended(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.ClassBExtended = p
	case TypeDataLinkManagement:
		p, err := decodeDataLinkManagement(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.DataLinkManagement = p
	case TypeAidToNavigation:
		p, err := decodeAidToNavigation(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.AidToNavigation = p
	case TypeChannelManagement:
		p, err := decodeChannelManagement(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.ChannelManagement = p
	case TypeGroupAssignment:
		p, err := decodeGroupAssignment(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.GroupAssignment = p
	case TypeSingleSlotBinary:
		p, err := decodeSingleSlotBinary(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.SingleSlotBinary = p
	case TypeMultiSlotBinary:
		p, err := decodeMultiSlotBinary(b, bitlen)
		if err != nil {
			return rec, err
		}
		rec.MultiSlotBinary = p
	default:
		return rec, unsupportedError(header.Type)
	}
	return rec, nil
}

// DecodeClassBStaticPartA decodes message type 24 Part A, returning the
// staged shipname for the caller to hold until Part B arrives.
func DecodeClassBStaticPartA(b *bitbuf.Buf, bitlen int) (string, error) {
	return decodeClassBStaticPartA(b, bitlen)
}

// DecodeClassBStaticPartB decodes message type 24 Part B into a
// ClassBStatic record; the caller fills in Shipname from whatever Part A
// staged (empty if none arrived).
func DecodeClassBStaticPartB(b *bitbuf.Buf, bitlen int, stationMMSI uint32) (*ClassBStatic, error) {
	return decodeClassBStaticPartB(b, bitlen, stationMMSI)
}

// PartNumber reads the type-24 sub-bit (ubits(38,2)) that distinguishes
// Part A (0) from Part B (1).
func PartNumber(b *bitbuf.Buf) (uint8, error) {
	v, err := b.Ubits(38, 2)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
