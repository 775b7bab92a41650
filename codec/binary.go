package codec

// EncodeBinary returns value unchanged; vbin8/vbin32 carry opaque bytes
// with no transformation.
func EncodeBinary(value []byte) []byte {
	return value
}

// DecodeBinary returns data unchanged.
func DecodeBinary(data []byte) []byte {
	return data
}
