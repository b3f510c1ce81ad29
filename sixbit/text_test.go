package sixbit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tidewatch/aivdm/sixbit"
)

func TestEncodeDecodeText_RoundTrip(t *testing.T) {
	codes, err := sixbit.EncodeText("NAUTICA", 20)
	require.NoError(t, err)
	require.Len(t, codes, 20)

	s, err := sixbit.DecodeText(codes)
	require.NoError(t, err)
	assert.Equal(t, "NAUTICA", s)
}

func TestDecodeText_TruncatesAtAtPadding(t *testing.T) {
	codes, err := sixbit.EncodeText("AB@CD", 7) // '@' is code 0
	require.NoError(t, err)
	s, err := sixbit.DecodeText(codes)
	require.NoError(t, err)
	assert.Equal(t, "AB", s)
}

func TestDecodeText_TrimsTrailingSpaces(t *testing.T) {
	codes, err := sixbit.EncodeText("TUG  ", 7)
	require.NoError(t, err)
	for i := 5; i < 7; i++ {
		codes[i] = 0 // pad with '@'
	}
	s, err := sixbit.DecodeText(codes)
	require.NoError(t, err)
	assert.Equal(t, "TUG", s)
}

func TestEncodeText_PadsShortFieldsWithSpaceCode(t *testing.T) {
	codes, err := sixbit.EncodeText("AB", 5)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 32, 32, 32}, codes)
}

func TestEncodeText_LowercaseFoldsToUppercase(t *testing.T) {
	codes, err := sixbit.EncodeText("tug", 3)
	require.NoError(t, err)
	s, err := sixbit.DecodeText(codes)
	require.NoError(t, err)
	assert.Equal(t, "TUG", s)
}

func TestEncodeText_RejectsUnrepresentableCharacter(t *testing.T) {
	_, err := sixbit.EncodeText("TUG~", 4)
	assert.Error(t, err)
}

func TestEncodeText_TruncatesLongerThanWidth(t *testing.T) {
	codes, err := sixbit.EncodeText("TOOLONGNAME", 4)
	require.NoError(t, err)
	require.Len(t, codes, 4)
	s, err := sixbit.DecodeText(codes)
	require.NoError(t, err)
	assert.Equal(t, "TOOL", s)
}

func TestEncodeDecodeText_Property_RoundTripOnRepresentableStrings(t *testing.T) {
	// '@' is excluded: it is the encoding's own terminator/pad code, so a
	// string containing one mid-sequence is not expected to round-trip.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^- !\"#$%&'()*+,-./0123456789:;<=>?"
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		runes := rapid.SliceOfN(rapid.SampledFrom([]byte(alphabet)), n, n).Draw(t, "runes")
		s := string(runes)

		codes, err := sixbit.EncodeText(s, n)
		require.NoError(t, err)
		got, err := sixbit.DecodeText(codes)
		require.NoError(t, err)
		assert.Equal(t, strings.TrimRight(s, " "), got)
	})
}
