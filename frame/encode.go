package frame

import (
	"fmt"
	"strconv"

	"github.com/tidewatch/aivdm/ais"
	"github.com/tidewatch/aivdm/bitbuf"
	"github.com/tidewatch/aivdm/sixbit"
)

// firstFragmentChars is the number of six-bit characters the encoder
// puts in the first sentence of a two-part message (360 bits), leaving
// the remainder — 11 characters for a 424-bit type 5 record — to the
// second.
const firstFragmentChars = 60

// Encode turns rec into the sentence or sentences that, fed back through
// Decode in order, reproduce rec. channel is written into field 5 as-is
// (A/B/1/2); seqID is used only when a record needs two sentences. Type
// 24 always yields two independent single-fragment sentences (Part A,
// Part B), never a two-of-two sequence, since ITU-R M.1371 frames them
// as standalone transmissions.
func Encode(rec *ais.AisRecord, tag string, channel byte, seqID uint8) ([]string, error) {
	if rec.Header.Type == 24 {
		return encodeClassBStatic(rec, tag, channel)
	}

	buf, bitlen, err := ais.Encode(rec)
	if err != nil {
		return nil, err
	}

	charCount := (bitlen + 5) / 6
	if charCount <= firstFragmentChars+2 {
		pad := charCount*6 - bitlen
		sentence, err := buildSentence(tag, buf, 0, bitlen, channel, 1, 1, 0, false, pad)
		if err != nil {
			return nil, err
		}
		return []string{sentence}, nil
	}

	firstBits := firstFragmentChars * 6
	first, err := buildSentence(tag, buf, 0, firstBits, channel, 2, 1, seqID, true, 0)
	if err != nil {
		return nil, err
	}
	remainingBits := bitlen - firstBits
	remainingChars := (remainingBits + 5) / 6
	pad := remainingChars*6 - remainingBits
	second, err := buildSentence(tag, buf, firstBits, remainingBits, channel, 2, 2, seqID, true, pad)
	if err != nil {
		return nil, err
	}
	return []string{first, second}, nil
}

func encodeClassBStatic(rec *ais.AisRecord, tag string, channel byte) ([]string, error) {
	p := rec.ClassBStatic
	bufA, bitlenA, err := ais.EncodeClassBStaticPartA(rec.Header, p.Shipname)
	if err != nil {
		return nil, err
	}
	padA := ((bitlenA+5)/6)*6 - bitlenA
	sentenceA, err := buildSentence(tag, bufA, 0, bitlenA, channel, 1, 1, 0, false, padA)
	if err != nil {
		return nil, err
	}

	bufB, bitlenB, err := ais.EncodeClassBStaticPartB(rec.Header, p)
	if err != nil {
		return nil, err
	}
	sentenceB, err := buildSentence(tag, bufB, 0, bitlenB, channel, 1, 1, 0, false, 0)
	if err != nil {
		return nil, err
	}
	return []string{sentenceA, sentenceB}, nil
}

func buildSentence(tag string, buf *bitbuf.Buf, start, length int, channel byte, fragCount, fragNum int, seqID uint8, hasSeqID bool, pad int) (string, error) {
	symbols := bitsToSymbols(buf, start, length)
	payload, err := sixbit.ArmorSymbols(symbols)
	if err != nil {
		return "", err
	}
	seqField := ""
	if hasSeqID {
		seqField = strconv.Itoa(int(seqID))
	}
	body := fmt.Sprintf("%s,%d,%d,%s,%c,%s,%d", tag, fragCount, fragNum, seqField, channel, payload, pad)
	return fmt.Sprintf("!%s*%s", body, FormatChecksum(body)), nil
}

// bitsToSymbols reads length bits from buf starting at start and packs
// them into six-bit symbols, zero-padding the final symbol's low bits
// when length is not a multiple of 6 — the same padding the transmitter
// accounts for with the sentence's pad digit.
func bitsToSymbols(buf *bitbuf.Buf, start, length int) []uint8 {
	n := (length + 5) / 6
	symbols := make([]uint8, n)
	for i := 0; i < n; i++ {
		remaining := length - i*6
		width := 6
		if remaining < 6 {
			width = remaining
		}
		v, _ := buf.Ubits(start+i*6, width)
		if width < 6 {
			v <<= uint(6 - width)
		}
		symbols[i] = uint8(v)
	}
	return symbols
}
