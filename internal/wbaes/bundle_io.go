package wbaes

import (
	"encoding/binary"
	"fmt"
)

// BundleSize is the fixed length of a serialized EncryptionTable:
// 2*221184 bytes of XOR-reduction tables, 4096 bytes of last-round box,
// and 2*147456 bytes of 32-bit Ty-box/MBL tables.
const BundleSize = 2*networkRounds*gatesPerRound*16*16 + tablesPerRound*256 + 2*networkRounds*tablesPerRound*256*4

// Serialize writes the bundle to its fixed 741376-byte little-endian wire
// layout, in the order r1_xor_tables, r2_xor_tables, last_box, mbl_tables,
// ty_boxes.
func (t *EncryptionTable) Serialize() []byte {
	buf := make([]byte, BundleSize)
	off := 0

	off = writeXorTables(buf, off, &t.R1XorTables)
	off = writeXorTables(buf, off, &t.R2XorTables)

	for n := 0; n < tablesPerRound; n++ {
		copy(buf[off:], t.LastBox[n][:])
		off += 256
	}

	off = writeWordTables(buf, off, &t.MBLTables)
	off = writeWordTables(buf, off, &t.TyBoxes)

	return buf
}

// Deserialize parses a bundle from its fixed wire layout, returning an Io
// error (without touching t) if data is not exactly BundleSize bytes.
func (t *EncryptionTable) Deserialize(data []byte) error {
	if len(data) != BundleSize {
		return &Io{Op: "deserializing bundle", Err: fmt.Errorf("expected %d bytes, got %d", BundleSize, len(data))}
	}

	var out EncryptionTable
	off := 0
	off = readXorTables(data, off, &out.R1XorTables)
	off = readXorTables(data, off, &out.R2XorTables)

	for n := 0; n < tablesPerRound; n++ {
		copy(out.LastBox[n][:], data[off:off+256])
		off += 256
	}

	off = readWordTables(data, off, &out.MBLTables)
	_ = readWordTables(data, off, &out.TyBoxes)

	*t = out
	return nil
}

func writeXorTables(buf []byte, off int, tabs *[networkRounds][gatesPerRound][16][16]byte) int {
	for r := 0; r < networkRounds; r++ {
		for k := 0; k < gatesPerRound; k++ {
			for x := 0; x < 16; x++ {
				copy(buf[off:], tabs[r][k][x][:])
				off += 16
			}
		}
	}
	return off
}

func readXorTables(data []byte, off int, tabs *[networkRounds][gatesPerRound][16][16]byte) int {
	for r := 0; r < networkRounds; r++ {
		for k := 0; k < gatesPerRound; k++ {
			for x := 0; x < 16; x++ {
				copy(tabs[r][k][x][:], data[off:off+16])
				off += 16
			}
		}
	}
	return off
}

func writeWordTables(buf []byte, off int, tabs *[networkRounds][tablesPerRound][256]uint32) int {
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			for x := 0; x < 256; x++ {
				binary.LittleEndian.PutUint32(buf[off:], tabs[r][n][x])
				off += 4
			}
		}
	}
	return off
}

func readWordTables(data []byte, off int, tabs *[networkRounds][tablesPerRound][256]uint32) int {
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			for x := 0; x < 256; x++ {
				tabs[r][n][x] = binary.LittleEndian.Uint32(data[off:])
				off += 4
			}
		}
	}
	return off
}
