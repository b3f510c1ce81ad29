package ais_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/aivdm/ais"
	"github.com/tidewatch/aivdm/bitbuf"
	"github.com/tidewatch/aivdm/sixbit"
)

// bufFromSymbols packs six-bit symbols into a big-endian bit buffer, the
// same concatenation step package frame performs after dearmoring each
// sentence's payload.
func bufFromSymbols(symbols []uint8) *bitbuf.Buf {
	buf := bitbuf.New(len(symbols) * 6)
	for i, s := range symbols {
		buf.Putbits(i*6, 6, uint64(s))
	}
	return buf
}

func payloadToBuf(t *testing.T, payload string, pad int) (*bitbuf.Buf, int) {
	t.Helper()
	symbols, err := sixbit.DearmorString(payload)
	require.NoError(t, err)
	bitlen := len(symbols)*6 - pad
	return bufFromSymbols(symbols), bitlen
}

func TestDecode_Type1SinglePart(t *testing.T) {
	buf, bitlen := payloadToBuf(t, "15RTgt0PAso;90TKcjM8h6g208CQ", 0)

	rec, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	require.NotNil(t, rec.PositionReportA)
	assert.EqualValues(t, 1, rec.Header.Type)
	assert.EqualValues(t, 0, rec.Header.Repeat)
	assert.EqualValues(t, 371798000, rec.Header.MMSI)
}

func TestDecode_Type5TwoPart(t *testing.T) {
	const part1 = "55?MbV02;H;s<HtKR20EHE:0@T4@Dn2222222216L961O5Gf0NSQEp6ClRp8"
	const part2 = "88888888880"

	s1, err := sixbit.DearmorString(part1)
	require.NoError(t, err)
	s2, err := sixbit.DearmorString(part2)
	require.NoError(t, err)
	all := append(append([]uint8{}, s1...), s2...)
	bitlen := len(all)*6 - 2

	buf := bufFromSymbols(all)
	rec, err := ais.Decode(buf, bitlen)
	require.NoError(t, err)
	require.NotNil(t, rec.StaticAndVoyage)
	assert.EqualValues(t, 5, rec.Header.Type)
}

func TestDecode_LengthOutOfRange(t *testing.T) {
	buf, bitlen := payloadToBuf(t, "15RTgt0PAso;90TKcjM8h6g20", 0) // truncated type-1 payload
	_, err := ais.Decode(buf, bitlen)
	require.Error(t, err)
	var decErr *ais.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ais.LengthOutOfRange, decErr.Kind)
}

func TestDecode_UnsupportedType(t *testing.T) {
	buf := bitbuf.New(40)
	buf.Putbits(0, 6, 63) // no message type uses 63
	_, err := ais.Decode(buf, 40)
	require.Error(t, err)
	var decErr *ais.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ais.UnsupportedType, decErr.Kind)
}
