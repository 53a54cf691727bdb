package formats

import (
	"bytes"
	"encoding/binary"

	"github.com/19h/isa-classifier-sub000/isa"
)

// Linux/U-Boot boot-image magics and the U-Boot ih_type/ih_arch enumerations
// needed to map a uImage header to an Isa. Values are from the public
// U-Boot image.h header and the Flattened Image Tree and Device Tree Blob
// specifications.
const (
	uImageMagic      = 0x27051956
	fitMagic         = 0xD00DFEED
	dtbMagic         = 0xD00DFEED // FIT and plain DTB share the FDT magic
	zImageSetupMagic = 0x53726448 // "HdrS", the Linux setup header signature
)

func init() {
	isa.RegisterFormatSniffer(SniffUBoot)
	isa.RegisterFormatSniffer(SniffFIT)
	isa.RegisterFormatSniffer(SniffDTB)
	isa.RegisterFormatSniffer(SniffZImage)
}

// uBootArchToIsa maps the ih_arch byte from a legacy U-Boot image header
// (image.h's IH_ARCH_* enumeration).
func uBootArchToIsa(arch byte) (isa.Isa, int, isa.Endianness) {
	switch arch {
	case 2:
		return isa.Of(isa.IsaArm), 32, isa.Little
	case 3:
		return isa.Of(isa.IsaX86), 32, isa.Little
	case 5:
		return isa.Of(isa.IsaMips), 32, isa.Big
	case 6:
		return isa.Of(isa.IsaMips), 32, isa.Little // reported as 32-bit; SniffUBoot does not refine the bitwidth
	case 12:
		return isa.Of(isa.IsaPpc), 32, isa.Big
	case 16:
		return isa.Of(isa.IsaSh), 32, isa.Little
	case 22:
		return isa.Of(isa.IsaAArch64), 64, isa.Little
	case 24:
		return isa.Of(isa.IsaRiscV32), 32, isa.Little
	default:
		return isa.UnknownIsa(uint32(arch)), 0, isa.Little
	}
}

// SniffUBoot parses a legacy U-Boot "uImage" header: a big-endian fixed
// 64-byte struct starting with the magic 0x27051956, carrying ih_arch at
// offset 28.
func SniffUBoot(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 64 {
		return isa.ClassificationResult{}, false
	}
	magic := binary.BigEndian.Uint32(data[0:4])
	if magic != uImageMagic {
		return isa.ClassificationResult{}, false
	}

	ihArch := data[28]
	kind, bitwidth, end := uBootArchToIsa(ihArch)

	return isa.ClassificationResult{
		Isa:        kind,
		Bitwidth:   bitwidth,
		Endianness: end,
		Source:     isa.SourceHeader,
		Format:     isa.FormatKernelImage,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   uint32(ihArch),
			ScannedBytes: 64,
		},
		Variant: "uImage",
	}, true
}

// SniffFIT recognizes a Flattened Image Tree blob by its FDT magic. FIT
// wraps a device tree structure describing one or more kernel/ramdisk/dtb
// components; the architecture lives in the tree's string-table content
// rather than a fixed-offset field, which this classifier does not parse —
// it reports the container format without committing to an Isa, leaving
// heuristic scoring of the embedded payload to the caller. A plain DTB
// shares the same FDT magic as a FIT blob, so this sniffer only claims the
// file when it also finds the "images" node name FIT always carries;
// otherwise it defers to SniffDTB.
func SniffFIT(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 16 {
		return isa.ClassificationResult{}, false
	}
	magic := binary.BigEndian.Uint32(data[0:4])
	if magic != fitMagic {
		return isa.ClassificationResult{}, false
	}
	scanLen := len(data)
	if scanLen > 8192 {
		scanLen = 8192
	}
	if !bytes.Contains(data[:scanLen], []byte("images")) {
		return isa.ClassificationResult{}, false
	}

	totalSize := binary.BigEndian.Uint32(data[4:8])
	return isa.ClassificationResult{
		Isa:        isa.UnknownIsa(0),
		Bitwidth:   0,
		Endianness: isa.Big,
		Source:     isa.SourceHeader,
		Format:     isa.FormatKernelImage,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   totalSize,
			ScannedBytes: scanLen,
		},
		Variant: "FIT",
	}, true
}

// SniffDTB recognizes a Device Tree Blob by its FDT magic and populates
// metadata from the fixed header, reporting FormatKernelImage with an
// unknown Isa since a DTB describes the hardware, not the code it boots.
func SniffDTB(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 40 {
		return isa.ClassificationResult{}, false
	}
	magic := binary.BigEndian.Uint32(data[0:4])
	if magic != dtbMagic {
		return isa.ClassificationResult{}, false
	}
	totalSize := binary.BigEndian.Uint32(data[4:8])

	return isa.ClassificationResult{
		Isa:        isa.UnknownIsa(0),
		Bitwidth:   0,
		Endianness: isa.Big,
		Source:     isa.SourceHeader,
		Format:     isa.FormatKernelImage,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   totalSize,
			ScannedBytes: 40,
		},
		Variant: "DTB",
	}, true
}

// SniffZImage recognizes a Linux x86 zImage/bzImage by the "HdrS" setup
// signature at offset 0x202, which every bootable x86 kernel image since
// the 2.0 boot protocol carries regardless of compression.
func SniffZImage(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 0x206 {
		return isa.ClassificationResult{}, false
	}
	if data[0] != 0xEB && data[0] != 0xE9 {
		// Real-mode jump at the very start of the boot sector (short or
		// near jump); not load-bearing on its own but cheap to check first.
		return isa.ClassificationResult{}, false
	}
	sig := binary.LittleEndian.Uint32(data[0x202:0x206])
	if sig != zImageSetupMagic {
		return isa.ClassificationResult{}, false
	}

	return isa.ClassificationResult{
		Isa:        isa.Of(isa.IsaX86),
		Bitwidth:   32,
		Endianness: isa.Little,
		Source:     isa.SourceHeader,
		Format:     isa.FormatKernelImage,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   zImageSetupMagic,
			ScannedBytes: 0x206,
		},
		Variant: "zImage",
	}, true
}
