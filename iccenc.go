// Package iccenc encodes ICC colour profiles and their curve tag data.
//
// The module is a serialization layer: it turns in-memory descriptions of
// tone curves, parametric curves, response curves and segmented curves into
// the exact big-endian byte layout the ICC profile format mandates, and
// assembles complete profiles around them.
//
// # Package Structure
//
//   - encoding: the primitive writer and the curve encoders. Use it
//     directly when producing raw tag bodies for an external container.
//   - profile: complete profiles, the tag table, and tag data builders.
//   - embed: iCCP chunk and APP2 segment payloads for embedding profiles
//     into PNG and JPEG files.
//   - format: the signature and enumeration constants of the format.
//   - endian: the byte-order engine the encoders are built on.
//
// # Basic Usage
//
// Building a monochrome display profile with a gamma 2.2 tone curve:
//
//	p := iccenc.MonochromeProfile("Gray gamma 2.2", "no copyright", 2.2)
//	data, err := p.Encode()
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("gray.icc", data, 0o644)
//
// This package provides convenient top-level wrappers around the profile
// package, simplifying the most common use cases. For fine-grained control
// over header fields and tag contents, use the profile and encoding
// packages directly.
package iccenc

import (
	"github.com/arloliu/iccenc/encoding"
	"github.com/arloliu/iccenc/format"
	"github.com/arloliu/iccenc/profile"
)

// D50 is the PCS illuminant white point.
var D50 = encoding.XYZNumber{X: 0.9642, Y: 1.0, Z: 0.8249}

// MonochromeProfile builds a v4 display profile for a single-channel gray
// device with the given gamma tone reproduction curve.
func MonochromeProfile(description, copyright string, gamma float64) *profile.Profile {
	p := profile.New(format.DisplayClass, format.GraySpace)
	p.SetTag(format.ProfileDescriptionTag, profile.MultiLocalizedUnicodeTagData(
		profile.LocalizedString{Language: "en", Country: "US", Value: description},
	))
	p.SetTag(format.CopyrightTag, profile.MultiLocalizedUnicodeTagData(
		profile.LocalizedString{Language: "en", Country: "US", Value: copyright},
	))
	p.SetTag(format.MediaWhitePointTag, profile.XYZTagData(D50))
	p.SetTag(format.GrayTRCTag, profile.GammaCurveTagData(gamma))

	return p
}

// SRGBToneCurve returns the sRGB transfer function as an ICC parametric
// curve (IEC 61966-2-1).
func SRGBToneCurve() *encoding.ParametricCurve {
	return &encoding.ParametricCurve{
		Type: encoding.ParametricSRGB,
		G:    2.4,
		A:    1.0 / 1.055,
		B:    0.055 / 1.055,
		C:    1.0 / 12.92,
		D:    0.04045,
	}
}
