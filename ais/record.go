// Package ais implements the ITU-R M.1371 message decoder and encoder:
// given an assembled bit payload (see package frame) it produces a typed
// AisRecord, and given a record it produces the bits for re-framing.
//
// The tagged-variant shape mirrors how github.com/aldas/go-nmea-client's
// canboat.decoded couples a discriminator (a PGN/Field pair) to exactly
// one populated value; here the discriminator is MessageType and the
// payload lives in one of AisRecord's pointer fields.
package ais

// MessageType is the 6-bit ITU-R M.1371 message type identifier.
type MessageType uint8

const (
	TypePositionReportA         MessageType = 1
	TypePositionReportAAssigned MessageType = 2
	TypePositionReportAResponse MessageType = 3
	TypeBaseStation             MessageType = 4
	TypeStaticAndVoyage         MessageType = 5
	TypeAddressedBinary         MessageType = 6
	TypeBinaryAck               MessageType = 7
	TypeBroadcastBinary         MessageType = 8
	TypeSARAircraftPosition     MessageType = 9
	TypeUTCDateInquiry          MessageType = 10
	TypeUTCDateResponse         MessageType = 11
	TypeAddressedSafety         MessageType = 12
	TypeSafetyAck               MessageType = 13
	TypeBroadcastSafety         MessageType = 14
	TypeInterrogation           MessageType = 15
	TypeAssignedMode            MessageType = 16
	TypeGnssBinary              MessageType = 17
	TypeClassBPosition          MessageType = 18
	TypeClassBExtended          MessageType = 19
	TypeDataLinkManagement      MessageType = 20
	TypeAidToNavigation         MessageType = 21
	TypeChannelManagement       MessageType = 22
	TypeGroupAssignment         MessageType = 23
	TypeClassBStaticPartA       MessageType = 24 // sub-type resolved by PartNumber
	TypeClassBStaticPartB       MessageType = 24
	TypeSingleSlotBinary        MessageType = 25
	TypeMultiSlotBinary         MessageType = 26
)

// Header carries the three fields common to every AIS message.
type Header struct {
	Type   MessageType
	Repeat uint8
	MMSI   uint32
}

// AisRecord is the tagged-variant record produced by Decode. Exactly one
// payload field is non-nil, selected by Header.Type (type 24 always
// surfaces as ClassBStatic, since Part A alone never yields a record).
type AisRecord struct {
	Header

	PositionReportA     *PositionReportA
	BaseStation         *BaseStationReport
	StaticAndVoyage     *StaticAndVoyage
	AddressedBinary     *AddressedBinary
	BinaryAck           *SafetyAck
	BroadcastBinary     *BroadcastBinary
	SARAircraftPosition *SARAircraftPosition
	UTCDateInquiry      *UTCDateInquiry
	AddressedSafety     *SafetyMessage
	SafetyAck           *SafetyAck
	BroadcastSafety     *SafetyMessage
	Interrogation       *Interrogation
	AssignedMode        *AssignedMode
	GnssBinary          *GnssBinary
	ClassBPosition      *ClassBPositionReport
	ClassBExtended      *ClassBExtendedReport
	DataLinkManagement  *DataLinkManagement
	AidToNavigation     *AidToNavigationReport
	ChannelManagement   *ChannelManagement
	GroupAssignment     *GroupAssignment
	ClassBStatic        *ClassBStatic
	SingleSlotBinary    *SingleSlotBinary
	MultiSlotBinary     *MultiSlotBinary
}

// PositionReportA is the payload of message types 1, 2 and 3.
type PositionReportA struct {
	Status   uint8
	Turn     int8
	Speed    uint16
	Accuracy bool
	Lon      int32
	Lat      int32
	Course   uint16
	Heading  uint16
	Second   uint8
	Maneuver uint8
	Raim     bool
	Radio    uint32
}

// BaseStationReport is the payload of message types 4 and 11.
type BaseStationReport struct {
	Year     uint16
	Month    uint8
	Day      uint8
	Hour     uint8
	Minute   uint8
	Second   uint8
	Accuracy bool
	Lon      int32
	Lat      int32
	Epfd     uint8
	Raim     bool
	Radio    uint32
}

// StaticAndVoyage is the payload of message type 5.
type StaticAndVoyage struct {
	AisVersion  uint8
	IMO         uint32
	Callsign    string
	Shipname    string
	Shiptype    uint8
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
	Epfd        uint8
	Month       uint8
	Day         uint8
	Hour        uint8
	Minute      uint8
	Draught     uint8
	Destination string
	Dte         bool
}

// BinaryBlob is shared by the binary-payload message variants: a
// bit-exact count and a big-endian blob holding those bits, left-packed
// into whole bytes.
type BinaryBlob struct {
	BitCount int
	Data     []byte
}

// AddressedBinary is the payload of message type 6.
type AddressedBinary struct {
	SeqNo      uint8
	DestMMSI   uint32
	Retransmit bool
	AppID      uint16
	Payload    BinaryBlob
}

// BroadcastBinary is the payload of message type 8.
type BroadcastBinary struct {
	AppID   uint16
	Payload BinaryBlob
}

// SafetyAck is the payload of message types 7 and 13: up to four MMSIs
// being acknowledged.
type SafetyAck struct {
	MMSIs []uint32
}

// SARAircraftPosition is the payload of message type 9.
type SARAircraftPosition struct {
	Altitude uint16
	Speed    uint16
	Accuracy bool
	Lon      int32
	Lat      int32
	Course   uint16
	Second   uint8
	Regional uint8
	Dte      bool
	Assigned bool
	Raim     bool
	Radio    uint32
}

// UTCDateInquiry is the payload of message type 10.
type UTCDateInquiry struct {
	DestMMSI uint32
}

// SafetyMessage is the payload of message types 12 (addressed) and 14
// (broadcast); DestMMSI/Retransmit are zero for broadcast.
type SafetyMessage struct {
	SeqNo      uint8
	DestMMSI   uint32
	Retransmit bool
	Text       string
}

// InterrogationRequest is one (type, offset) slot in an Interrogation.
type InterrogationRequest struct {
	MessageType uint8
	SlotOffset  uint16
}

// Interrogation is the payload of message type 15.
type Interrogation struct {
	MMSI1     uint32
	Requests1 []InterrogationRequest // 1 or 2 entries
	MMSI2     uint32                 // zero if absent
	Request2  InterrogationRequest
	HasMMSI2  bool
}

// AssignedModeSlot is one station's assignment within message type 16.
type AssignedModeSlot struct {
	MMSI      uint32
	Offset    uint16
	Increment uint16
}

// AssignedMode is the payload of message type 16.
type AssignedMode struct {
	Slots []AssignedModeSlot // 1 or 2 entries
}

// GnssBinary is the payload of message type 17.
type GnssBinary struct {
	Lon     int32
	Lat     int32
	Payload BinaryBlob
}

// ClassBPositionReport is the payload of message type 18.
type ClassBPositionReport struct {
	Speed    uint16
	Accuracy bool
	Lon      int32
	Lat      int32
	Course   uint16
	Heading  uint16
	Second   uint8
	Regional uint8
	CsUnit   bool
	Display  bool
	Dsc      bool
	Band     bool
	Msg22    bool
	Assigned bool
	Raim     bool
	Radio    uint32
}

// ClassBExtendedReport is the payload of message type 19.
type ClassBExtendedReport struct {
	Speed       uint16
	Accuracy    bool
	Lon         int32
	Lat         int32
	Course      uint16
	Heading     uint16
	Second      uint8
	Regional    uint8
	Shipname    string
	Shiptype    uint8
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
	Epfd        uint8
	Raim        bool
	Dte         bool
	Assigned    bool
}

// DataLinkSlot is one repeating reservation group within message type 20.
type DataLinkSlot struct {
	Offset    uint16
	Number    uint8
	Timeout   uint8
	Increment uint16
}

// DataLinkManagement is the payload of message type 20.
type DataLinkManagement struct {
	Slots []DataLinkSlot // 1..4 entries
}

// AidToNavigationReport is the payload of message type 21.
type AidToNavigationReport struct {
	AidType     uint8
	Name        string
	Accuracy    bool
	Lon         int32
	Lat         int32
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
	Epfd        uint8
	Second      uint8
	OffPosition bool
	Regional    uint8
	Raim        bool
	VirtualAid  bool
	Assigned    bool
}

// ChannelArea is the area-rectangle form of message type 22.
type ChannelArea struct {
	NELon, NELat int32
	SWLon, SWLat int32
}

// ChannelAddressed is the addressed-stations form of message type 22.
type ChannelAddressed struct {
	Dest1, Dest2 uint32
}

// ChannelManagement is the payload of message type 22; exactly one of
// Area or Addressed is populated, per Addressed's own boolean.
type ChannelManagement struct {
	ChannelA, ChannelB uint16
	TxRx               uint8
	Power              bool
	Area               *ChannelArea
	Addressed          *ChannelAddressed
	BandA, BandB       bool
	ZoneSize           uint8
}

// GroupAssignment is the payload of message type 23.
type GroupAssignment struct {
	NELon, NELat int32
	SWLon, SWLat int32
	StationType  uint8
	ShipType     uint8
	TxRx         uint8
	Interval     uint8
	Quiet        uint8
}

// ClassBStatic is the reassembled payload of message type 24 (Part A +
// Part B); produced only once Part B arrives.
type ClassBStatic struct {
	Shipname       string
	Shiptype       uint8
	VendorID       string
	Callsign       string
	MothershipMMSI uint32 // set iff auxiliary craft (mmsi.IsAuxiliaryCraft)
	ToBow          uint16
	ToStern        uint16
	ToPort         uint8
	ToStarboard    uint8
}

// SingleSlotBinary is the payload of message type 25.
type SingleSlotBinary struct {
	Addressed  bool
	Structured bool
	DestMMSI   uint32
	AppID      uint16
	Payload    BinaryBlob
}

// MultiSlotBinary is the payload of message type 26.
type MultiSlotBinary struct {
	Addressed  bool
	Structured bool
	DestMMSI   uint32
	AppID      uint16
	Payload    BinaryBlob
	Radio      uint32
}
