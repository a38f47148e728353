package profile

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/iccenc/encoding"
	"github.com/arloliu/iccenc/endian"
	"github.com/arloliu/iccenc/errs"
	"github.com/arloliu/iccenc/format"
)

// Tag data builders. Each returns a complete tag data block, starting with
// the block's type signature and 4 reserved bytes, ready for Profile.SetTag.

func newTagWriter() *encoding.BufferWriter {
	return encoding.NewBufferWriter(endian.GetBigEndianEngine())
}

// finish copies the writer's bytes into a caller-owned slice and releases
// the writer's pooled buffer.
func finish(w *encoding.BufferWriter) []byte {
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	w.Reset()

	return out
}

func writeTagHeader(w *encoding.BufferWriter, sig format.TypeSignature) {
	w.WriteUInt32(uint32(sig))
	w.WriteEmpty(4)
}

// IdentityCurveTagData builds a 'curv' block with a zero entry count, which
// the format defines as the identity curve.
func IdentityCurveTagData() []byte {
	w := newTagWriter()
	writeTagHeader(w, format.CurveType)
	w.WriteUInt32(0)

	return finish(w)
}

// GammaCurveTagData builds a 'curv' block with a single entry: the gamma
// exponent as a u8Fixed8 number.
func GammaCurveTagData(gamma float64) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.CurveType)
	w.WriteUInt32(1)
	w.WriteUFix8(gamma)

	return finish(w)
}

// SampledCurveTagData builds a 'curv' block from a table of uint16 samples,
// evenly spaced over the curve's input range.
func SampledCurveTagData(table []uint16) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.CurveType)
	w.WriteUInt32(uint32(len(table)))
	for _, v := range table {
		w.WriteUInt16(v)
	}

	return finish(w)
}

// ParametricCurveTagData builds a 'para' block around a parametric curve.
func ParametricCurveTagData(curve *encoding.ParametricCurve) ([]byte, error) {
	w := newTagWriter()
	writeTagHeader(w, format.ParametricCurveType)
	if _, err := encoding.WriteParametricCurve(w, curve); err != nil {
		w.Reset()
		return nil, err
	}

	return finish(w), nil
}

// ResponseCurveSet16TagData builds an 'rcs2' block: one response curve per
// measurement unit, all describing a device with channelCount channels.
//
// Every curve must have channelCount response arrays and as many XYZ patch
// values; a mismatch fails with errs.ErrChannelMismatch.
func ResponseCurveSet16TagData(channelCount uint16, curves ...*encoding.ResponseCurve) ([]byte, error) {
	for i, curve := range curves {
		if curve.Channels() != int(channelCount) || len(curve.XYZValues) != curve.Channels() {
			return nil, fmt.Errorf("response curve %d (%v): %w", i, curve.CurveType, errs.ErrChannelMismatch)
		}
	}

	w := newTagWriter()
	writeTagHeader(w, format.ResponseCurveSet16Type)
	w.WriteUInt16(channelCount)
	w.WriteUInt16(uint16(len(curves)))

	// Offsets are relative to the start of the tag data block and point
	// past the offset table we are about to write.
	offset := 8 + 4 + 4*len(curves)
	for _, curve := range curves {
		w.WriteUInt32(uint32(offset))
		offset += responseCurveSize(curve)
	}

	for _, curve := range curves {
		encoding.WriteResponseCurve(w, curve)
	}

	return finish(w), nil
}

// responseCurveSize is the encoded size of one response curve: the
// measurement signature, the per-channel counts and XYZ values, and the
// response numbers of every channel.
func responseCurveSize(curve *encoding.ResponseCurve) int {
	size := 4 + 16*curve.Channels()
	for _, channel := range curve.ResponseArrays {
		size += 6 * len(channel)
	}

	return size
}

// CurveSetElementData builds a 'cvst' processing element holding one
// segmented curve per channel. The element can be placed into a
// multi-process elements tag with MultiProcessElementsTagData.
//
// Curve segments inside a curve set are the only place the ICC format uses
// the segmented curve encoding, so this is where an unknown segment variant
// surfaces as errs.ErrInvalidProfileFormat.
func CurveSetElementData(channels uint16, curves ...*encoding.OneDimensionalCurve) ([]byte, error) {
	w := newTagWriter()
	writeTagHeader(w, format.CurveSetElementType)
	w.WriteUInt16(channels)
	w.WriteUInt16(channels)

	// Position table: offset and size per curve, relative to the element
	// start, with every curve aligned to 4 bytes.
	type position struct{ offset, size int }
	positions := make([]position, 0, len(curves))

	scratch := newTagWriter()
	defer scratch.Reset()

	offset := 8 + 4 + 8*len(curves)
	for i, curve := range curves {
		start := scratch.Len()
		n, err := encoding.WriteOneDimensionalCurve(scratch, curve)
		if err != nil {
			w.Reset()
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		if pad := (4 - n%4) % 4; pad > 0 {
			scratch.WriteEmpty(pad)
		}
		positions = append(positions, position{offset: offset, size: n})
		offset += scratch.Len() - start
	}

	for _, pos := range positions {
		w.WriteUInt32(uint32(pos.offset))
		w.WriteUInt32(uint32(pos.size))
	}
	w.WriteBytes(scratch.Bytes())

	return finish(w), nil
}

// MultiProcessElementsTagData builds an 'mpet' block from pre-built
// processing element blocks such as CurveSetElementData output.
func MultiProcessElementsTagData(inChannels, outChannels uint16, elements ...[]byte) ([]byte, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("multi process elements tag: %w", errs.ErrEmptyProfile)
	}

	w := newTagWriter()
	writeTagHeader(w, format.MultiProcessElementsType)
	w.WriteUInt16(inChannels)
	w.WriteUInt16(outChannels)
	w.WriteUInt32(uint32(len(elements)))

	// Position table: offset and size per element, relative to the start of
	// the tag data block, each element aligned to 4 bytes.
	offset := 8 + 8 + 8*len(elements)
	for _, element := range elements {
		w.WriteUInt32(uint32(offset))
		w.WriteUInt32(uint32(len(element)))
		offset += (len(element) + 3) &^ 3
	}

	for _, element := range elements {
		w.WriteBytes(element)
		if pad := (4 - len(element)%4) % 4; pad > 0 {
			w.WriteEmpty(pad)
		}
	}

	return finish(w), nil
}

// TextTagData builds a 'text' block: 7-bit ASCII with a NUL terminator.
func TextTagData(text string) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.TextType)
	w.WriteASCII(text)
	w.WriteEmpty(1)

	return finish(w)
}

// LocalizedString is one record of a multi-localized Unicode tag. Language
// and Country are two-letter ISO codes ("en", "US"); Country may be empty.
type LocalizedString struct {
	Language string
	Country  string
	Value    string
}

// MultiLocalizedUnicodeTagData builds an 'mluc' block from the given
// records. Values are stored as UTF-16BE without a byte order mark.
func MultiLocalizedUnicodeTagData(records ...LocalizedString) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.MultiLocalizedUnicodeType)
	w.WriteUInt32(uint32(len(records)))
	w.WriteUInt32(12) // record size

	encoded := make([][]uint16, len(records))
	for i, rec := range records {
		encoded[i] = utf16.Encode([]rune(rec.Value))
	}

	offset := 8 + 8 + 12*len(records)
	for i, rec := range records {
		w.WriteASCII(isoCode(rec.Language))
		w.WriteASCII(isoCode(rec.Country))
		w.WriteUInt32(uint32(2 * len(encoded[i])))
		w.WriteUInt32(uint32(offset))
		offset += 2 * len(encoded[i])
	}

	for _, units := range encoded {
		for _, u := range units {
			w.WriteUInt16(u)
		}
	}

	return finish(w)
}

// isoCode pads or truncates a country/language code to exactly two bytes.
func isoCode(code string) string {
	switch {
	case len(code) >= 2:
		return code[:2]
	case len(code) == 1:
		return code + "\x00"
	default:
		return "\x00\x00"
	}
}

// XYZTagData builds an 'XYZ ' block from one or more tristimulus values.
func XYZTagData(values ...encoding.XYZNumber) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.XYZType)
	for _, v := range values {
		w.WriteXYZ(v)
	}

	return finish(w)
}

// S15Fixed16ArrayTagData builds an 'sf32' block, used for example by the
// chromatic adaption matrix tag.
func S15Fixed16ArrayTagData(values ...float64) []byte {
	w := newTagWriter()
	writeTagHeader(w, format.S15Fixed16ArrayType)
	for _, v := range values {
		w.WriteFix16(v)
	}

	return finish(w)
}
