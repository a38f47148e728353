// Package profile assembles complete ICC profiles: the 128-byte header, the
// tag table, and the tag data blocks.
//
// A Profile is a plain value describing the header fields plus a map from
// tag signatures to raw tag data. Tag data blocks are produced with the
// builder functions in this package (GammaCurveTagData,
// ParametricCurveTagData, ResponseCurveSet16TagData, ...), which wrap the
// low-level curve encoders
// from the encoding package in their on-disk tag containers.
//
//	p := profile.New(format.DisplayClass, format.GraySpace)
//	p.SetTag(format.GrayTRCTag, profile.GammaCurveTagData(2.2))
//	data, err := p.Encode()
//
// Encode writes everything big-endian, aligns tag data to 4-byte
// boundaries, shares the storage of byte-identical tag data blocks, and for
// version 4 profiles embeds the MD5 profile ID the specification requires.
package profile
