// Package endian provides byte order utilities for ICC binary encoding.
//
// The ICC profile format is big-endian throughout, so almost all users should
// obtain their engine from GetBigEndianEngine():
//
//	import "github.com/arloliu/iccenc/endian"
//
//	engine := endian.GetBigEndianEngine()
//	w := encoding.NewBufferWriter(engine)
//
// The package combines ByteOrder and AppendByteOrder from encoding/binary
// into a single EndianEngine interface. Using the append form avoids the
// intermediate scratch buffer that ByteOrder alone would require:
//
//	buf = engine.AppendUint32(buf, value) // single append, no scratch copy
//
// GetLittleEndianEngine is provided for tooling that inspects host-order
// data; nothing in the ICC wire format ever uses it.
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// The interface is satisfied by binary.BigEndian and binary.LittleEndian,
// so it interoperates with any code written against the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
//
// This is the byte order mandated by the ICC specification for every field
// of a profile, and the engine every encoder in this module should be
// constructed with.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
