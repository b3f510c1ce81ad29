// Package frame parses AIVDM/AIVDO NMEA-0183 sentences, drives the
// multi-sentence reassembly state machine, and re-frames encoded
// messages back into sentences. It is the one package in this module
// that touches ASCII text; bit-level work is delegated to bitbuf, sixbit
// and ais.
//
// NMEA2000 over CAN has no analogous ASCII grammar to crib from, so the
// grammar here is new; its failures are reported as *ais.DecodeError
// values carrying an ais.ErrorKind (see errors.go), the same taxonomy
// the payload decoder uses.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentence is one parsed AIVDM/AIVDO line.
type Sentence struct {
	Talker    string // "AIVDM" or "AIVDO"
	FragCount int
	FragNum   int
	SeqID     int
	HasSeqID  bool
	Channel   byte
	Payload   string
	Pad       int
	Checksum  byte
}

var validChannels = map[byte]bool{'A': true, 'B': true, '1': true, '2': true}

// ParseSentence parses one line of the form
// "!AIVDM,<fragCount>,<fragNum>,<seqId>,<channel>,<payload>,<pad>*<hex>".
// A trailing CRLF, if present, is trimmed before parsing.
func ParseSentence(line string) (*Sentence, error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) == 0 || line[0] != '!' {
		return nil, badFraming("sentence must start with '!'")
	}
	star := strings.LastIndexByte(line, '*')
	if star < 0 || star+3 != len(line) {
		return nil, badFraming("missing or malformed checksum delimiter")
	}

	body := line[1:star]
	hexSum := line[star+1:]
	checksum, err := strconv.ParseUint(hexSum, 16, 8)
	if err != nil {
		return nil, badFraming(fmt.Sprintf("invalid checksum digits %q", hexSum))
	}

	computed := byte(0)
	for i := 0; i < len(body); i++ {
		computed ^= body[i]
	}
	if computed != byte(checksum) {
		return nil, badChecksum()
	}

	fields := strings.Split(body, ",")
	if len(fields) != 7 {
		return nil, badFraming(fmt.Sprintf("expected 7 comma-separated fields, got %d", len(fields)))
	}

	talker := fields[0]
	if talker != "AIVDM" && talker != "AIVDO" {
		return nil, badFraming(fmt.Sprintf("unknown sentence tag %q", talker))
	}

	fragCount, err := strconv.Atoi(fields[1])
	if err != nil || fragCount < 1 {
		return nil, badFraming("invalid fragment count")
	}
	fragNum, err := strconv.Atoi(fields[2])
	if err != nil || fragNum < 1 {
		return nil, badFraming("invalid fragment number")
	}

	s := &Sentence{Talker: talker, FragCount: fragCount, FragNum: fragNum}

	if fields[3] != "" {
		seqID, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, badFraming("invalid sequence id")
		}
		s.SeqID = seqID
		s.HasSeqID = true
	} else if fragCount != 1 {
		return nil, badFraming("sequence id required when fragCount > 1")
	}

	if len(fields[4]) != 1 || !validChannels[fields[4][0]] {
		return nil, badFraming(fmt.Sprintf("invalid channel %q", fields[4]))
	}
	s.Channel = fields[4][0]
	s.Payload = fields[5]

	pad, err := strconv.Atoi(fields[6])
	if err != nil || pad < 0 || pad > 5 {
		return nil, badPad(fmt.Sprintf("pad digit %q not in 0..5", fields[6]))
	}
	s.Pad = pad
	s.Checksum = byte(checksum)

	return s, nil
}

// FormatChecksum computes the XOR checksum of an AIVDM sentence body
// (everything between '!' and '*') as two uppercase hex digits.
func FormatChecksum(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("%02X", sum)
}
