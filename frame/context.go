package frame

import (
	"github.com/tidewatch/aivdm/ais"
	"github.com/tidewatch/aivdm/bitbuf"
	"github.com/tidewatch/aivdm/sixbit"
)

// maxAssemblyBits bounds the reassembly buffer: 2048 bits holds the
// longest payload any message type allows (1008 bits, types 6, 8, 12
// and 14) twice over, while still catching a runaway fragment count
// before it grows unbounded.
const maxAssemblyBits = 2048

// AssemblyContext holds the state of one multi-sentence reassembly
// stream. Interleaving sentences from more than one logical channel onto
// the same context produces garbage; callers keep one context per
// channel.
type AssemblyContext struct {
	await      uint8
	part       uint8
	bits       *bitbuf.Buf
	bitlen     int
	hasSeqID   bool
	sequenceID uint8

	shipname24A string
}

// NewAssemblyContext returns an empty, Idle context.
func NewAssemblyContext() *AssemblyContext {
	return &AssemblyContext{bits: bitbuf.New(maxAssemblyBits)}
}

func (c *AssemblyContext) resetAccumulator() {
	c.bits = bitbuf.New(maxAssemblyBits)
	c.bitlen = 0
	c.await = 0
	c.part = 0
	c.hasSeqID = false
	c.sequenceID = 0
}

// OutcomeKind discriminates the result of feeding one sentence to Decode.
type OutcomeKind int

const (
	Incomplete OutcomeKind = iota
	Message
	Partial24A
	OutcomeError
)

// Outcome is the result of Decode. Record is populated for Message (the
// full record), and may also carry a partially-populated record (common
// header only) alongside a LengthOutOfRange or UnsupportedType error, per
// the error propagation policy: such failures still let a caller route
// by MMSI.
type Outcome struct {
	Kind   OutcomeKind
	Record *ais.AisRecord
	Err    error
}

// Decode feeds one AIVDM/AIVDO sentence into ctx's reassembly state
// machine. It mutates ctx and returns the outcome of processing that
// single sentence: a message may take several calls (and several
// Incomplete outcomes) to complete.
func Decode(sentence string, ctx *AssemblyContext) Outcome {
	s, err := ParseSentence(sentence)
	if err != nil {
		ctx.resetAccumulator()
		return Outcome{Kind: OutcomeError, Err: err}
	}

	if s.FragNum == 1 {
		ctx.resetAccumulator()
		ctx.await = uint8(s.FragCount)
		ctx.part = 1
		ctx.hasSeqID = s.HasSeqID
		if s.HasSeqID {
			ctx.sequenceID = uint8(s.SeqID)
		}
	} else {
		mismatch := ctx.part == 0 ||
			uint8(s.FragCount) != ctx.await ||
			s.HasSeqID != ctx.hasSeqID ||
			(s.HasSeqID && uint8(s.SeqID) != ctx.sequenceID) ||
			uint8(s.FragNum) != ctx.part+1
		if mismatch {
			ctx.resetAccumulator()
			return Outcome{Kind: OutcomeError, Err: reassemblyMismatch("fragment arrived out of order")}
		}
		ctx.part = uint8(s.FragNum)
	}

	symbols, err := sixbit.DearmorString(s.Payload)
	if err != nil {
		ctx.resetAccumulator()
		return Outcome{Kind: OutcomeError, Err: badArmor(err)}
	}
	if ctx.bitlen+len(symbols)*6 > maxAssemblyBits {
		ctx.resetAccumulator()
		return Outcome{Kind: OutcomeError, Err: badFraming("assembled payload exceeds maximum size")}
	}
	for i, sym := range symbols {
		_ = ctx.bits.Putbits(ctx.bitlen+i*6, 6, uint64(sym))
	}
	ctx.bitlen += len(symbols) * 6

	if ctx.part != ctx.await {
		return Outcome{Kind: Incomplete}
	}

	bitlen := ctx.bitlen - s.Pad
	if bitlen < 0 {
		ctx.resetAccumulator()
		return Outcome{Kind: OutcomeError, Err: badPad("pad exceeds carried bit count")}
	}
	buf := ctx.bits
	outcome := decodeAssembled(buf, bitlen, ctx)
	ctx.resetAccumulator()
	return outcome
}

// decodeAssembled dispatches a fully-reassembled bit payload to the
// message decoder, special-casing type 24's Part A/B split which the ais
// package itself refuses to handle.
func decodeAssembled(buf *bitbuf.Buf, bitlen int, ctx *AssemblyContext) Outcome {
	header, err := ais.DecodeHeader(buf)
	if err != nil {
		return Outcome{Kind: OutcomeError, Err: err}
	}

	if header.Type != 24 {
		rec, err := ais.Decode(buf, bitlen)
		if err != nil {
			return Outcome{Kind: OutcomeError, Record: rec, Err: err}
		}
		return Outcome{Kind: Message, Record: rec}
	}

	part, err := ais.PartNumber(buf)
	if err != nil {
		return Outcome{Kind: OutcomeError, Err: err}
	}

	if part == 0 {
		shipname, err := ais.DecodeClassBStaticPartA(buf, bitlen)
		if err != nil {
			return Outcome{Kind: OutcomeError, Err: err}
		}
		ctx.shipname24A = shipname
		return Outcome{Kind: Partial24A}
	}

	body, err := ais.DecodeClassBStaticPartB(buf, bitlen, header.MMSI)
	if err != nil {
		return Outcome{Kind: OutcomeError, Err: err}
	}
	body.Shipname = ctx.shipname24A
	ctx.shipname24A = ""
	return Outcome{Kind: Message, Record: &ais.AisRecord{Header: header, ClassBStatic: body}}
}
