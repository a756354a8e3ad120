package mesh

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFacet(t *testing.T, data []byte) facetRecord {
	t.Helper()
	var rec facetRecord
	require.NoError(t, binary.Read(bytes.NewReader(data), binary.LittleEndian, &rec))
	return rec
}

func TestWriteBinary_Layout(t *testing.T) {
	tris := []Triangle{
		newTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}),
		newTriangle(Vec3{0, 0, 1}, Vec3{1, 0, 1}, Vec3{0, 1, 1}),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, "test solid", tris))

	data := buf.Bytes()
	require.Len(t, data, HeaderSize+4+len(tris)*RecordSize)

	assert.Equal(t, []byte("test solid"), data[:10])
	count := binary.LittleEndian.Uint32(data[HeaderSize : HeaderSize+4])
	assert.Equal(t, uint32(len(tris)), count)

	first := decodeFacet(t, data[HeaderSize+4:HeaderSize+4+RecordSize])
	assert.Equal(t, [3]float32{0, 0, 1}, first.Normal)
	assert.Equal(t, [3]float32{0, 0, 0}, first.A)
	assert.Equal(t, [3]float32{1, 0, 0}, first.B)
	assert.Equal(t, [3]float32{0, 1, 0}, first.C)
	assert.Equal(t, uint16(0), first.Attr)
}

func TestWriteBinary_TruncatesLongHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, strings.Repeat("x", 200), nil))
	require.Len(t, buf.Bytes(), HeaderSize+4)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf.Bytes()[HeaderSize:]))
}

func TestNewTriangle_NormalFollowsWinding(t *testing.T) {
	tri := newTriangle(Vec3{0, 0, 0}, Vec3{0, 1, 0}, Vec3{1, 0, 0})
	assert.InDelta(t, -1.0, tri.Normal.Z, 1e-12)
}
