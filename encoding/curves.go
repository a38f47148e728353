package encoding

import (
	"fmt"

	"github.com/arloliu/iccenc/errs"
)

// Field emission for parametric and formula curves is a closed mapping from
// type code to an ordered field list, evaluated once per call. Fields absent
// for a code are skipped entirely, never zero-filled, and unknown codes are
// rejected so a corrupt field set can never reach the wire.

// WriteOneDimensionalCurve writes a segmented curve: a uint16 segment count,
// 2 reserved bytes, every break point as an IEEE-754 single in order, then
// every segment encoded via WriteCurveSegment in order.
//
// The break-point / segment count relationship is not validated; malformed
// input is written as given. It returns the total number of bytes written
// and the first segment encoding error, if any.
func WriteOneDimensionalCurve(w Writer, curve *OneDimensionalCurve) (int, error) {
	count := w.WriteUInt16(uint16(len(curve.Segments)))
	count += w.WriteEmpty(2)

	for _, bp := range curve.BreakPoints {
		count += w.WriteSingle(bp)
	}

	for i, seg := range curve.Segments {
		n, err := WriteCurveSegment(w, seg)
		count += n
		if err != nil {
			return count, fmt.Errorf("curve segment %d: %w", i, err)
		}
	}

	return count, nil
}

// WriteResponseCurve writes one response curve of a response curve set.
//
// The wire layout is three-pass, as the format mandates: the measurement
// unit signature, then the per-channel measurement counts, then the
// per-channel XYZ patch values, and only then the response numbers of every
// channel. The passes are grouped, not interleaved per channel.
//
// The channel count is implied by len(curve.ResponseArrays); the caller is
// responsible for XYZValues matching it.
func WriteResponseCurve(w Writer, curve *ResponseCurve) int {
	count := w.WriteUInt32(uint32(curve.CurveType))

	for _, channel := range curve.ResponseArrays {
		count += w.WriteUInt32(uint32(len(channel)))
	}

	for _, xyz := range curve.XYZValues {
		count += w.WriteXYZ(xyz)
	}

	for _, channel := range curve.ResponseArrays {
		for _, rn := range channel {
			count += w.WriteResponseNumber(rn)
		}
	}

	return count
}

// parametricFieldCount maps each parametric curve type to the number of
// parameters present on the wire, taken in G, A, B, C, D, E, F order.
var parametricFieldCount = map[ParametricCurveType]int{
	ParametricGamma:      1,
	ParametricCIE122:     3,
	ParametricIEC61966_3: 4,
	ParametricSRGB:       5,
	ParametricFull:       7,
}

// WriteParametricCurve writes a parametric curve: the uint16 type code,
// 2 reserved bytes, then the parameters selected by the type code as
// s15Fixed16 numbers, strictly in G, A, B, C, D, E, F order. Parameters
// outside the selected set contribute no bytes.
//
// A type code outside [0,4] is rejected with errs.ErrUnknownCurveType after
// the 4-byte header has been written.
func WriteParametricCurve(w Writer, curve *ParametricCurve) (int, error) {
	count := w.WriteUInt16(uint16(curve.Type))
	count += w.WriteEmpty(2)

	n, ok := parametricFieldCount[curve.Type]
	if !ok {
		return count, fmt.Errorf("parametric curve type %d: %w", curve.Type, errs.ErrUnknownCurveType)
	}

	params := [7]float64{curve.G, curve.A, curve.B, curve.C, curve.D, curve.E, curve.F}
	for _, p := range params[:n] {
		count += w.WriteFix16(p)
	}

	return count, nil
}

// WriteCurveSegment writes one curve segment: its 4-byte signature, 4
// reserved bytes, then the variant payload.
//
// A segment that is neither a FormulaCurveElement nor a SampledCurveElement
// fails with errs.ErrInvalidProfileFormat after the 8-byte header has been
// written. This error is not recoverable in place; it must abort the
// enclosing profile write.
func WriteCurveSegment(w Writer, segment CurveSegment) (int, error) {
	count := w.WriteUInt32(uint32(segment.SegmentSignature()))
	count += w.WriteEmpty(4)

	switch seg := segment.(type) {
	case *FormulaCurveElement:
		n, err := WriteFormulaCurveElement(w, seg)
		return count + n, err
	case *SampledCurveElement:
		return count + WriteSampledCurveElement(w, seg), nil
	default:
		return count, fmt.Errorf("curve segment %v: %w", segment.SegmentSignature(), errs.ErrInvalidProfileFormat)
	}
}

// WriteFormulaCurveElement writes a formula curve segment payload: the
// uint16 type code, 2 reserved bytes, then the coefficients selected by the
// type code as IEEE-754 singles. The order is Gamma, A, B, C, D, E with
// absent coefficients skipped: types 1 and 2 carry Gamma, every type carries
// A, B and C, types 2 and 3 carry D, and only type 3 carries E.
//
// A type code outside {1,2,3} is rejected with errs.ErrUnknownCurveType
// after the 4-byte header has been written.
func WriteFormulaCurveElement(w Writer, element *FormulaCurveElement) (int, error) {
	count := w.WriteUInt16(uint16(element.Type))
	count += w.WriteEmpty(2)

	switch element.Type {
	case FormulaGamma, FormulaLog, FormulaExponent:
	default:
		return count, fmt.Errorf("formula curve type %d: %w", element.Type, errs.ErrUnknownCurveType)
	}

	if element.Type == FormulaGamma || element.Type == FormulaLog {
		count += w.WriteSingle(element.Gamma)
	}

	count += w.WriteSingle(element.A)
	count += w.WriteSingle(element.B)
	count += w.WriteSingle(element.C)

	if element.Type == FormulaLog || element.Type == FormulaExponent {
		count += w.WriteSingle(element.D)
	}

	if element.Type == FormulaExponent {
		count += w.WriteSingle(element.E)
	}

	return count, nil
}

// WriteSampledCurveElement writes a sampled curve segment payload: a uint32
// entry count followed by every entry as an IEEE-754 single, in order.
func WriteSampledCurveElement(w Writer, element *SampledCurveElement) int {
	count := w.WriteUInt32(uint32(len(element.Entries)))

	for _, entry := range element.Entries {
		count += w.WriteSingle(entry)
	}

	return count
}
