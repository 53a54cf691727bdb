package isa

// ScorerFunc is the per-ISA scoring contract (spec C2): a pure function
// from a byte slice (and the endianness being probed, for bi-endian
// ISAs) to a non-negative score. Implementations never panic and never
// read out of bounds; readers.go's bounded accessors enforce that.
type ScorerFunc func(data []byte, end Endianness) int64

// registryEntry is one row of the architecture registry (C4): a scorer
// bound to one (Isa, endianness, bitwidth) tuple. Bi-endian ISAs appear
// as two rows sharing the same ScorerFunc.
type registryEntry struct {
	isa      IsaKind
	end      Endianness
	bitwidth int
	score    ScorerFunc
	fast     bool // cheap enough to always run, even in FastMode
}

// registry is the static architecture list driving the rank-off. Order
// does not matter; ScoreAll sorts its output afterward.
var registry = []registryEntry{
	{IsaX86, Little, 32, scoreX86_32, true},
	{IsaX86_64, Little, 64, scoreX86_64, true},

	{IsaArm, Little, 32, scoreArm, true},
	{IsaArm, Big, 32, scoreArm, true},
	{IsaAArch64, Little, 64, scoreAArch64, true},
	{IsaAArch64, Big, 64, scoreAArch64, true},

	{IsaRiscV32, Little, 32, scoreRiscV32, true},
	{IsaRiscV64, Little, 64, scoreRiscV64, true},

	{IsaMips, Little, 32, scoreMips, true},
	{IsaMips, Big, 32, scoreMips, true},
	{IsaMips64, Little, 64, scoreMips64, true},
	{IsaMips64, Big, 64, scoreMips64, true},

	{IsaPpc, Little, 32, scorePpc, true},
	{IsaPpc, Big, 32, scorePpc, true},
	{IsaPpc64, Little, 64, scorePpc64, true},
	{IsaPpc64, Big, 64, scorePpc64, true},

	{IsaSparc, Big, 32, scoreSparc, true},
	{IsaSparc64, Big, 64, scoreSparc64, true},

	{IsaS390x, Big, 64, scoreS390x, false},
	{IsaM68k, Big, 32, scoreM68k, false},

	{IsaSh, Little, 32, scoreSh, false},
	{IsaSh, Big, 32, scoreSh, false},

	{IsaAlpha, Little, 64, scoreAlpha, false},
	{IsaLoongArch32, Little, 32, scoreLoongArch32, false},
	{IsaLoongArch64, Little, 64, scoreLoongArch64, false},
	{IsaHexagon, Little, 32, scoreHexagon, false},

	{IsaAvr, Little, 8, scoreAvr, true},
	{IsaMsp430, Little, 16, scoreMsp430, true},

	{IsaParisc, Big, 32, scoreParisc, false},
	{IsaArc, Little, 32, scoreArc, false},
	{IsaXtensa, Little, 32, scoreXtensa, false},
	{IsaXtensa, Big, 32, scoreXtensa, false},
	{IsaMicroBlaze, Big, 32, scoreMicroBlaze, false},
	{IsaMicroBlaze, Little, 32, scoreMicroBlaze, false},
	{IsaNios2, Little, 32, scoreNios2, false},
	{IsaOpenRisc, Big, 32, scoreOpenRisc, false},
	{IsaLanai, Big, 32, scoreLanai, false},

	{IsaJvm, Big, 32, scoreJvm, false},
	{IsaWasm, Little, 32, scoreWasm, false},
	{IsaDalvik, Little, 16, scoreDalvik, false},

	{IsaBlackfin, Little, 32, scoreBlackfin, false},
	{IsaIa64, Little, 64, scoreIa64, false},
	{IsaVax, Little, 32, scoreVax, false},
	{IsaI860, Little, 32, scoreI860, false},
	{IsaCellSpu, Big, 32, scoreCellSpu, false},
	{IsaTricore, Little, 32, scoreTricore, false},

	{IsaHcs12, Big, 16, scoreHcs12, true},
	{IsaHc11, Big, 16, scoreHc11, true},
	{IsaC166, Little, 16, scoreC166, true},
	{IsaV850, Little, 32, scoreV850, false},
	{IsaRl78, Little, 16, scoreRl78, false},

	{IsaZ80, Little, 8, scoreZ80, false},
	{IsaW65816, Little, 16, scoreW65816, false},
}
