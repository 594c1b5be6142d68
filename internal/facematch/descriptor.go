package facematch

import (
	"encoding/binary"
	"math"
)

// DescriptorDim is the descriptor length produced by the reference model.
const DescriptorDim = 128

// Descriptor is a fixed-length face embedding produced by the external
// model runtime. Treated as an immutable value after creation.
type Descriptor []float32

// Distance returns the Euclidean distance between two descriptors.
// Symmetric, zero iff the vectors are identical. An absent or
// length-mismatched descriptor can never match: the distance is +Inf.
func Distance(a, b Descriptor) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// EncodeDescriptor converts a descriptor to little-endian float32 bytes for
// BLOB storage.
func EncodeDescriptor(d Descriptor) []byte {
	buf := make([]byte, len(d)*4)
	for i, f := range d {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// DecodeDescriptor converts a BLOB back to a descriptor.
func DecodeDescriptor(data []byte) Descriptor {
	n := len(data) / 4
	if n == 0 {
		return nil
	}
	d := make(Descriptor, n)
	for i := 0; i < n; i++ {
		d[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return d
}
