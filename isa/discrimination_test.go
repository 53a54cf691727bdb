package isa

import "testing"

// Discrimination laws (spec §8): on a real sample of one ISA in a
// known-confusable pair, the other ISA's scorer must score at most 60% of
// the true ISA's score.

func repeatBytes(pattern []byte, totalLen int) []byte {
	out := make([]byte, 0, totalLen)
	for len(out) < totalLen {
		out = append(out, pattern...)
	}
	return out[:totalLen]
}

func assertDiscriminates(t *testing.T, trueName string, trueScore int64, otherName string, otherScore int64) {
	t.Helper()
	if trueScore <= 0 {
		t.Fatalf("%s scorer produced non-positive score %d on its own canonical sample", trueName, trueScore)
	}
	if float64(otherScore) > 0.6*float64(trueScore) {
		t.Errorf("%s scored %d on %s's sample, want <= 60%% of %d (%.1f)", otherName, otherScore, trueName, trueScore, 0.6*float64(trueScore))
	}
}

func TestDiscriminateHc11VsHcs12(t *testing.T) {
	hc11Sample := repeatBytes([]byte{0x8D, 0x39}, 40) // BSR; RTS
	hcs12Sample := repeatBytes([]byte{0x07, 0x3D}, 40) // BSR; RTS

	hc11OnOwn := scoreHc11(hc11Sample, Little)
	hcs12OnHc11 := scoreHcs12(hc11Sample, Little)
	assertDiscriminates(t, "Hc11", hc11OnOwn, "Hcs12", hcs12OnHc11)

	hcs12OnOwn := scoreHcs12(hcs12Sample, Little)
	hc11OnHcs12 := scoreHc11(hcs12Sample, Little)
	assertDiscriminates(t, "Hcs12", hcs12OnOwn, "Hc11", hc11OnHcs12)
}

func TestDiscriminateHcs12VsC166(t *testing.T) {
	hcs12Sample := repeatBytes([]byte{0x07, 0x3D}, 40) // BSR; RTS
	c166Sample := repeatBytes([]byte{0xCB, 0x00}, 40)  // RET stream

	hcs12OnOwn := scoreHcs12(hcs12Sample, Little)
	c166OnHcs12 := scoreC166(hcs12Sample, Little)
	assertDiscriminates(t, "Hcs12", hcs12OnOwn, "C166", c166OnHcs12)

	c166OnOwn := scoreC166(c166Sample, Little)
	hcs12OnC166 := scoreHcs12(c166Sample, Little)
	assertDiscriminates(t, "C166", c166OnOwn, "Hcs12", hcs12OnC166)
}

func TestDiscriminateC166VsSh(t *testing.T) {
	c166Sample := repeatBytes([]byte{0xCB, 0x00}, 40)       // RET stream
	shSample := repeatBytes([]byte{0x0B, 0x00, 0x09, 0x00}, 40) // RTS; NOP delay slot

	c166OnOwn := scoreC166(c166Sample, Little)
	shOnC166 := scoreSh(c166Sample, Little)
	assertDiscriminates(t, "C166", c166OnOwn, "Sh", shOnC166)

	shOnOwn := scoreSh(shSample, Little)
	c166OnSh := scoreC166(shSample, Little)
	assertDiscriminates(t, "Sh", shOnOwn, "C166", c166OnSh)
}

func TestDiscriminateAvrVsMsp430VsThumb(t *testing.T) {
	// AVR: RET (0x9508) followed by CALL (0x940E), little-endian halfwords.
	avrSample := repeatBytes([]byte{0x08, 0x95, 0x0E, 0x94}, 40)

	avrOnOwn := scoreAvr(avrSample, Little)
	msp430OnAvr := scoreMsp430(avrSample, Little)
	thumbOnAvr := scoreThumb(avrSample, Little)
	assertDiscriminates(t, "Avr", avrOnOwn, "Msp430", msp430OnAvr)
	assertDiscriminates(t, "Avr", avrOnOwn, "Thumb", thumbOnAvr)
}
