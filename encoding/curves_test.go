package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/iccenc/endian"
	"github.com/arloliu/iccenc/errs"
	"github.com/arloliu/iccenc/format"
)

func appendSingle(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(v)))
}

func appendFix16(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(int32(math.Round(v*65536.0))))
}

func TestWriteParametricCurve_TypeGamma(t *testing.T) {
	w := newTestWriter(t)

	n, err := WriteParametricCurve(w, &ParametricCurve{Type: ParametricGamma, G: 2.2})
	require.NoError(t, err)
	require.Equal(t, 8, n)

	// type, reserved padding, then G as s15Fixed16 and nothing else
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x02, 0x33, 0x33,
	}, w.Bytes())
}

func TestWriteParametricCurve_TypeFull(t *testing.T) {
	w := newTestWriter(t)

	curve := &ParametricCurve{Type: ParametricFull, G: 1, A: 2, B: 3, C: 4, D: 5, E: 6, F: 7}
	n, err := WriteParametricCurve(w, curve)
	require.NoError(t, err)
	require.Equal(t, 32, n)

	expected := []byte{0x00, 0x04, 0x00, 0x00}
	for _, p := range []float64{1, 2, 3, 4, 5, 6, 7} {
		expected = appendFix16(expected, p)
	}
	require.Equal(t, expected, w.Bytes())
}

func TestWriteParametricCurve_LengthPerType(t *testing.T) {
	// header + 4 bytes per present field, field counts {1,3,4,5,7}
	lengths := map[ParametricCurveType]int{
		ParametricGamma:      4 + 4*1,
		ParametricCIE122:     4 + 4*3,
		ParametricIEC61966_3: 4 + 4*4,
		ParametricSRGB:       4 + 4*5,
		ParametricFull:       4 + 4*7,
	}

	for typ, want := range lengths {
		w := newTestWriter(t)
		n, err := WriteParametricCurve(w, &ParametricCurve{Type: typ})
		require.NoError(t, err)
		require.Equal(t, want, n, "type %d", typ)
		require.Equal(t, want, w.Len(), "type %d", typ)
	}
}

func TestWriteParametricCurve_FieldOrder(t *testing.T) {
	// Fields appear in G, A, B, C, D order for the sRGB-style type.
	w := newTestWriter(t)

	curve := &ParametricCurve{Type: ParametricSRGB, G: 2.4, A: 0.9479, B: 0.0521, C: 0.0774, D: 0.0405}
	_, err := WriteParametricCurve(w, curve)
	require.NoError(t, err)

	expected := []byte{0x00, 0x03, 0x00, 0x00}
	for _, p := range []float64{2.4, 0.9479, 0.0521, 0.0774, 0.0405} {
		expected = appendFix16(expected, p)
	}
	require.Equal(t, expected, w.Bytes())
}

func TestWriteParametricCurve_UnknownType(t *testing.T) {
	w := newTestWriter(t)

	n, err := WriteParametricCurve(w, &ParametricCurve{Type: 5, G: 1})
	require.ErrorIs(t, err, errs.ErrUnknownCurveType)
	require.Equal(t, 4, n) // only the header reaches the wire
	require.Equal(t, []byte{0x00, 0x05, 0x00, 0x00}, w.Bytes())
}

func TestWriteFormulaCurveElement_TypeGamma(t *testing.T) {
	w := newTestWriter(t)

	el := &FormulaCurveElement{Type: FormulaGamma, Gamma: 2.2, A: 1, B: 2, C: 3, D: 9, E: 9}
	n, err := WriteFormulaCurveElement(w, el)
	require.NoError(t, err)
	require.Equal(t, 4+4*4, n)

	expected := []byte{0x00, 0x01, 0x00, 0x00}
	for _, p := range []float64{2.2, 1, 2, 3} {
		expected = appendSingle(expected, p)
	}
	require.Equal(t, expected, w.Bytes()) // D and E are skipped, not zero-filled
}

func TestWriteFormulaCurveElement_TypeLog(t *testing.T) {
	w := newTestWriter(t)

	el := &FormulaCurveElement{Type: FormulaLog, Gamma: 1.8, A: 1, B: 2, C: 3, D: 4, E: 9}
	n, err := WriteFormulaCurveElement(w, el)
	require.NoError(t, err)
	require.Equal(t, 4+4*5, n)

	expected := []byte{0x00, 0x02, 0x00, 0x00}
	for _, p := range []float64{1.8, 1, 2, 3, 4} {
		expected = appendSingle(expected, p)
	}
	require.Equal(t, expected, w.Bytes())
}

func TestWriteFormulaCurveElement_TypeExponent(t *testing.T) {
	w := newTestWriter(t)

	el := &FormulaCurveElement{Type: FormulaExponent, Gamma: 9, A: 1, B: 2, C: 3, D: 4, E: 5}
	n, err := WriteFormulaCurveElement(w, el)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	// no Gamma for the exponent type
	expected := []byte{0x00, 0x03, 0x00, 0x00}
	for _, p := range []float64{1, 2, 3, 4, 5} {
		expected = appendSingle(expected, p)
	}
	require.Equal(t, expected, w.Bytes())
}

func TestWriteFormulaCurveElement_UnknownType(t *testing.T) {
	for _, typ := range []FormulaCurveType{0, 4, 99} {
		w := newTestWriter(t)
		n, err := WriteFormulaCurveElement(w, &FormulaCurveElement{Type: typ})
		require.ErrorIs(t, err, errs.ErrUnknownCurveType)
		require.Equal(t, 4, n)
	}
}

func TestWriteSampledCurveElement(t *testing.T) {
	w := newTestWriter(t)

	el := &SampledCurveElement{Entries: []float64{0, 0.25, 0.5, 0.75, 1}}
	n := WriteSampledCurveElement(w, el)
	require.Equal(t, 4+4*5, n)

	expected := binary.BigEndian.AppendUint32(nil, 5)
	for _, e := range el.Entries {
		expected = appendSingle(expected, e)
	}
	require.Equal(t, expected, w.Bytes())
}

func TestWriteSampledCurveElement_Empty(t *testing.T) {
	w := newTestWriter(t)

	n := WriteSampledCurveElement(w, &SampledCurveElement{})
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())
}

func TestWriteSampledCurveElement_RoundTrip(t *testing.T) {
	w := newTestWriter(t)

	entries := []float64{0.1, 0.2, 1.0 / 3.0, 123456.789}
	WriteSampledCurveElement(w, &SampledCurveElement{Entries: entries})

	engine := endian.GetBigEndianEngine()
	data := w.Bytes()
	require.Equal(t, uint32(len(entries)), engine.Uint32(data[0:4]))

	// Each entry decodes back to the float32-narrowed copy of the original.
	for i, want := range entries {
		bits := engine.Uint32(data[4+4*i : 8+4*i])
		require.Equal(t, float32(want), math.Float32frombits(bits))
	}
}

func TestWriteCurveSegment_Formula(t *testing.T) {
	w := newTestWriter(t)

	seg := &FormulaCurveElement{Type: FormulaGamma, Gamma: 2.2, A: 1, B: 0, C: 0}
	n, err := WriteCurveSegment(w, seg)
	require.NoError(t, err)
	require.Equal(t, 8+20, n)

	// 'parf' signature, 4 reserved bytes, then the formula payload
	require.Equal(t, []byte{'p', 'a', 'r', 'f', 0, 0, 0, 0}, w.Bytes()[0:8])
	require.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, w.Bytes()[8:12])
}

func TestWriteCurveSegment_Sampled(t *testing.T) {
	w := newTestWriter(t)

	n, err := WriteCurveSegment(w, &SampledCurveElement{Entries: []float64{1}})
	require.NoError(t, err)
	require.Equal(t, 8+4+4, n)
	require.Equal(t, []byte{'s', 'a', 'm', 'f', 0, 0, 0, 0}, w.Bytes()[0:8])
}

// bogusSegment is a curve segment variant unknown to the encoder.
type bogusSegment struct{}

func (bogusSegment) SegmentSignature() format.CurveSegmentSignature {
	return format.CurveSegmentSignature(0x64656164) // 'dead'
}

func TestWriteCurveSegment_UnknownSignature(t *testing.T) {
	w := newTestWriter(t)

	n, err := WriteCurveSegment(w, bogusSegment{})
	require.ErrorIs(t, err, errs.ErrInvalidProfileFormat)

	// Exactly the 8-byte header is written before the failure is raised.
	require.Equal(t, 8, n)
	require.Equal(t, []byte{'d', 'e', 'a', 'd', 0, 0, 0, 0}, w.Bytes())
}

func TestWriteOneDimensionalCurve(t *testing.T) {
	w := newTestWriter(t)

	curve := &OneDimensionalCurve{
		BreakPoints: []float64{0.5},
		Segments: []CurveSegment{
			&SampledCurveElement{Entries: []float64{0, 1}},
			&FormulaCurveElement{Type: FormulaGamma, Gamma: 2.2, A: 1, B: 0, C: 0},
		},
	}

	n, err := WriteOneDimensionalCurve(w, curve)
	require.NoError(t, err)

	// count + reserved, one break point, then both segments
	seg1 := 8 + 4 + 4*2
	seg2 := 8 + 4 + 4*4
	require.Equal(t, 4+4*1+seg1+seg2, n)
	require.Equal(t, n, w.Len())

	require.Equal(t, []byte{0x00, 0x02, 0x00, 0x00}, w.Bytes()[0:4])
	require.Equal(t, appendSingle(nil, 0.5), w.Bytes()[4:8])
	require.Equal(t, []byte{'s', 'a', 'm', 'f'}, w.Bytes()[8:12])
	require.Equal(t, []byte{'p', 'a', 'r', 'f'}, w.Bytes()[8+seg1:12+seg1])
}

func TestWriteOneDimensionalCurve_SegmentError(t *testing.T) {
	w := newTestWriter(t)

	curve := &OneDimensionalCurve{
		BreakPoints: []float64{0.5},
		Segments: []CurveSegment{
			&SampledCurveElement{Entries: []float64{0}},
			bogusSegment{},
		},
	}

	n, err := WriteOneDimensionalCurve(w, curve)
	require.ErrorIs(t, err, errs.ErrInvalidProfileFormat)

	// header + break point + first segment + the failed segment's header
	require.Equal(t, 4+4+(8+4+4)+8, n)
}

func TestWriteOneDimensionalCurve_MalformedCountsWrittenAsGiven(t *testing.T) {
	// Break point count is not validated against the segment count.
	w := newTestWriter(t)

	curve := &OneDimensionalCurve{
		BreakPoints: []float64{0.1, 0.2, 0.3},
		Segments:    []CurveSegment{&SampledCurveElement{}},
	}

	n, err := WriteOneDimensionalCurve(w, curve)
	require.NoError(t, err)
	require.Equal(t, 4+4*3+(8+4), n)
	require.Equal(t, []byte{0x00, 0x01}, w.Bytes()[0:2])
}

func TestWriteResponseCurve_ThreePassLayout(t *testing.T) {
	w := newTestWriter(t)

	curve := &ResponseCurve{
		CurveType: format.StatusA,
		ResponseArrays: [][]ResponseNumber{
			{{DeviceCode: 1, Measurement: 0.25}, {DeviceCode: 2, Measurement: 0.5}},
			{{DeviceCode: 3, Measurement: 0.75}},
		},
		XYZValues: []XYZNumber{
			{X: 0.9642, Y: 1.0, Z: 0.8249},
			{X: 0.5, Y: 0.5, Z: 0.5},
		},
	}

	n := WriteResponseCurve(w, curve)
	require.Equal(t, 4+4*2+12*2+6*3, n)

	// All counts first, then all XYZ vectors, then all response numbers.
	var expected []byte
	expected = binary.BigEndian.AppendUint32(expected, uint32(format.StatusA))
	expected = binary.BigEndian.AppendUint32(expected, 2)
	expected = binary.BigEndian.AppendUint32(expected, 1)
	for _, xyz := range curve.XYZValues {
		expected = appendFix16(expected, xyz.X)
		expected = appendFix16(expected, xyz.Y)
		expected = appendFix16(expected, xyz.Z)
	}
	for _, channel := range curve.ResponseArrays {
		for _, rn := range channel {
			expected = binary.BigEndian.AppendUint16(expected, rn.DeviceCode)
			expected = appendFix16(expected, rn.Measurement)
		}
	}

	if diff := cmp.Diff(expected, w.Bytes()); diff != "" {
		t.Fatalf("response curve layout mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteResponseCurve_NoChannels(t *testing.T) {
	w := newTestWriter(t)

	n := WriteResponseCurve(w, &ResponseCurve{CurveType: format.DIN})
	require.Equal(t, 4, n)
	require.Equal(t, binary.BigEndian.AppendUint32(nil, uint32(format.DIN)), w.Bytes())
}

func TestResponseCurve_Channels(t *testing.T) {
	curve := &ResponseCurve{ResponseArrays: make([][]ResponseNumber, 3)}
	require.Equal(t, 3, curve.Channels())
}
