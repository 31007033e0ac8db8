package audio

import (
	"encoding/binary"
)

const WAVHeaderSize = 44

// WAVHeader builds the canonical 44 byte RIFF/WAVE header for dataSize bytes
// of linear PCM samples.
func WAVHeader(p PCMParameters, dataSize int) []byte {
	blockAlign := p.NumChannels * (p.BitsPerSample / 8)
	byteRate := p.SampleRate * blockAlign

	h := make([]byte, WAVHeaderSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataSize))
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1)
	binary.LittleEndian.PutUint16(h[22:24], uint16(p.NumChannels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(p.SampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], uint16(p.BitsPerSample))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))

	return h
}
