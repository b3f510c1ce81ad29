package ais_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/aivdm/ais"
)

func TestRoundTrip_PositionReportA(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypePositionReportA, Repeat: 1, MMSI: 366123456},
		PositionReportA: &ais.PositionReportA{
			Status:   5,
			Turn:     -10,
			Speed:    105,
			Accuracy: true,
			Lon:      -73500000,
			Lat:      40700000,
			Course:   1234,
			Heading:  88,
			Second:   32,
			Maneuver: 1,
			Raim:     true,
			Radio:    5000,
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 168, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.Header, got.Header)
	assert.Equal(t, rec.PositionReportA, got.PositionReportA)
}

func TestRoundTrip_StaticAndVoyage(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeStaticAndVoyage, MMSI: 366999371},
		StaticAndVoyage: &ais.StaticAndVoyage{
			AisVersion:  0,
			IMO:         9074729,
			Callsign:    "3FOF8",
			Shipname:    "EVER GIVEN",
			Shiptype:    70,
			ToBow:       225,
			ToStern:     70,
			ToPort:      1,
			ToStarboard: 31,
			Epfd:        1,
			Month:       3,
			Day:         23,
			Hour:        12,
			Minute:      30,
			Draught:     122,
			Destination: "ROTTERDAM",
			Dte:         false,
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 424, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.StaticAndVoyage, got.StaticAndVoyage)
}

func TestRoundTrip_AddressedBinary(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeAddressedBinary, MMSI: 235009850},
		AddressedBinary: &ais.AddressedBinary{
			SeqNo:      2,
			DestMMSI:   235009851,
			Retransmit: true,
			AppID:      235,
			Payload:    ais.BinaryBlob{BitCount: 17, Data: []byte{0xAB, 0x80, 0x00}},
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 105, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.AddressedBinary, got.AddressedBinary)
}

func TestRoundTrip_SingleSlotBinary_AddressedAndStructured(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeSingleSlotBinary, MMSI: 366999001},
		SingleSlotBinary: &ais.SingleSlotBinary{
			Addressed:  true,
			Structured: true,
			DestMMSI:   366999002,
			AppID:      42,
			Payload:    ais.BinaryBlob{BitCount: 24, Data: []byte{0x12, 0x34, 0x56}},
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 40+30+16+24, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.SingleSlotBinary, got.SingleSlotBinary)
}

func TestRoundTrip_SingleSlotBinary_NeitherAddressedNorStructured(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeSingleSlotBinary, MMSI: 366999001},
		SingleSlotBinary: &ais.SingleSlotBinary{
			Payload: ais.BinaryBlob{BitCount: 8, Data: []byte{0xFF}},
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 48, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.SingleSlotBinary, got.SingleSlotBinary)
}

func TestRoundTrip_ChannelManagement_Area(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeChannelManagement, MMSI: 2320045},
		ChannelManagement: &ais.ChannelManagement{
			ChannelA: 2087,
			ChannelB: 2088,
			TxRx:     0,
			Power:    true,
			Area:     &ais.ChannelArea{NELon: 1000, NELat: 2000, SWLon: -1000, SWLat: -2000},
			BandA:    true,
			ZoneSize: 3,
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 168, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.ChannelManagement, got.ChannelManagement)
}

// TestEncodeChannelManagement_AreaBitOffsets checks the raw encoded bits
// against the ITU-R M.1371 type 22 area layout (NELon@69/18, NELat@87/17,
// SWLon@104/18, SWLat@122/17) rather than only round-tripping through
// Decode, since a consistent off-by-one in both encode and decode would
// otherwise cancel out undetected.
func TestEncodeChannelManagement_AreaBitOffsets(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeChannelManagement, MMSI: 2320045},
		ChannelManagement: &ais.ChannelManagement{
			ChannelA: 2087,
			ChannelB: 2088,
			Area:     &ais.ChannelArea{NELon: 1000, NELat: 2000, SWLon: -1000, SWLat: -2000},
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 168, bitlen)

	neLon, err := buf.Sbits(69, 18)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, neLon)

	neLat, err := buf.Sbits(87, 17)
	require.NoError(t, err)
	assert.EqualValues(t, 2000, neLat)

	swLon, err := buf.Sbits(104, 18)
	require.NoError(t, err)
	assert.EqualValues(t, -1000, swLon)

	swLat, err := buf.Sbits(122, 17)
	require.NoError(t, err)
	assert.EqualValues(t, -2000, swLat)
}

func TestRoundTrip_ChannelManagement_Addressed(t *testing.T) {
	rec := &ais.AisRecord{
		Header: ais.Header{Type: ais.TypeChannelManagement, MMSI: 2320045},
		ChannelManagement: &ais.ChannelManagement{
			ChannelA:  2087,
			ChannelB:  2088,
			Addressed: &ais.ChannelAddressed{Dest1: 366999001, Dest2: 366999002},
		},
	}

	buf, bitlen, err := ais.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, 168, bitlen)

	got, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	assert.Equal(t, rec.ChannelManagement, got.ChannelManagement)
}

func TestRoundTrip_ClassBStatic_PartAThenPartB(t *testing.T) {
	header := ais.Header{Type: 24, MMSI: 366999123}

	bufA, bitlenA, err := ais.EncodeClassBStaticPartA(header, "EXAMPLE")
	require.NoError(t, err)
	require.Equal(t, 160, bitlenA)

	shipname, err := ais.DecodeClassBStaticPartA(bufA, bitlenA)
	require.NoError(t, err)
	assert.Equal(t, "EXAMPLE", shipname)

	want := &ais.ClassBStatic{
		Shipname:    "EXAMPLE",
		Shiptype:    36,
		VendorID:    "ABC",
		Callsign:    "N1234",
		ToBow:       20,
		ToStern:     5,
		ToPort:      3,
		ToStarboard: 3,
	}
	bufB, bitlenB, err := ais.EncodeClassBStaticPartB(header, want)
	require.NoError(t, err)
	require.Equal(t, 168, bitlenB)

	gotB, err := ais.DecodeClassBStaticPartB(bufB, bitlenB, header.MMSI)
	require.NoError(t, err)
	gotB.Shipname = shipname
	assert.Equal(t, want, gotB)
}

func TestRoundTrip_ClassBStatic_AuxiliaryCraftMothership(t *testing.T) {
	header := ais.Header{Type: 24, MMSI: 982320456} // auxiliary craft MMSI

	want := &ais.ClassBStatic{
		Shiptype:       35,
		VendorID:       "XY",
		Callsign:       "AUX1",
		MothershipMMSI: 366999123,
	}
	buf, bitlen, err := ais.EncodeClassBStaticPartB(header, want)
	require.NoError(t, err)

	got, err := ais.DecodeClassBStaticPartB(buf, bitlen, header.MMSI)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
