package ucwire

// CRC-8/MAXIM: polynomial 0x31 (0x8C reflected), init 0x00, no final xor.
// Both ends of the link must agree on this; it is part of the wire contract
// and is deliberately not configurable per Codec.
var crcTable = makeCRCTable()

func makeCRCTable() [256]byte {
	var t [256]byte
	for i := range t {
		crc := byte(i)
		for j := 0; j < 8; j++ {
			if crc&0x01 != 0 {
				crc = crc>>1 ^ 0x8C
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Checksum computes the CRC-8/MAXIM of p. Checksum(nil) is 0.
func Checksum(p []byte) byte {
	var crc byte
	for _, b := range p {
		crc = crcTable[crc^b]
	}
	return crc
}

// VerifyChecksum reports whether p checksums to want.
func VerifyChecksum(p []byte, want byte) bool {
	return Checksum(p) == want
}
