package pix

import "fmt"

const (
	crcInit       = 0xFFFF
	crcPolynomial = 0x1021
)

// CRC16 computes CRC-16/CCITT-FALSE over the bytes of data, MSB first.
// The register is wider than 16 bits and only masked once at the end; bits
// pushed above bit 15 never flow back into the low half.
func CRC16(data string) uint16 {
	crc := uint32(crcInit)
	for i := 0; i < len(data); i++ {
		crc ^= uint32(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return uint16(crc & 0xFFFF)
}

// Checksum renders CRC16(data) as four uppercase hex digits.
func Checksum(data string) string {
	return fmt.Sprintf("%04X", CRC16(data))
}
