package mesh

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Binary STL layout: an 80-byte header, a little-endian uint32 facet count,
// then 50 bytes per facet (normal and three vertices as float32 triplets,
// plus a 16-bit attribute word).
const (
	HeaderSize = 80
	RecordSize = 50
)

type facetRecord struct {
	Normal  [3]float32
	A, B, C [3]float32
	Attr    uint16
}

// WriteBinary writes the triangles as a binary STL stream. The comment is
// truncated into the 80-byte header; viewers ignore it.
func WriteBinary(w io.Writer, comment string, tris []Triangle) error {
	bw := bufio.NewWriter(w)

	var header [HeaderSize]byte
	copy(header[:], comment)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}
	for _, t := range tris {
		rec := facetRecord{
			Normal: toF32(t.Normal),
			A:      toF32(t.A),
			B:      toF32(t.B),
			C:      toF32(t.C),
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func toF32(v Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
