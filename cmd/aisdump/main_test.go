package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/aivdm/internal/testutil"
)

func TestRun_DecodesAndCountsRejections(t *testing.T) {
	reader := &testutil.MockReaderWriter{
		Reads: []testutil.ReadResult{
			{Read: []byte("!AIVDM,1,1,,A,15RTgt0PAso;90TKcjM8h6g208CQ,0*4A\nnot a sentence\n")},
		},
	}

	var out bytes.Buffer
	logger := log.New(io.Discard)

	decoded, errored, err := run(reader, &out, logger, "text")
	require.NoError(t, err)
	assert.EqualValues(t, 1, decoded)
	assert.EqualValues(t, 1, errored)
	assert.Contains(t, out.String(), "mmsi=371798000")
}

func TestRun_JSONOutput(t *testing.T) {
	reader := &testutil.MockReaderWriter{
		Reads: []testutil.ReadResult{
			{Read: []byte("!AIVDM,1,1,,A,15RTgt0PAso;90TKcjM8h6g208CQ,0*4A\n")},
		},
	}

	var out bytes.Buffer
	logger := log.New(io.Discard)

	decoded, _, err := run(reader, &out, logger, "json")
	require.NoError(t, err)
	assert.EqualValues(t, 1, decoded)
	assert.Contains(t, out.String(), `"MMSI":371798000`)
}
