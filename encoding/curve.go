package encoding

import "github.com/arloliu/iccenc/format"

// XYZNumber is a tristimulus colour value. On the wire each component is an
// s15Fixed16 number, 12 bytes in total.
type XYZNumber struct {
	X float64
	Y float64
	Z float64
}

// ResponseNumber is a single measurement of a response curve set: the device
// code of the measured patch and the measurement value. On the wire it is a
// uint16 followed by an s15Fixed16 number.
type ResponseNumber struct {
	DeviceCode  uint16
	Measurement float64
}

// OneDimensionalCurve is a piecewise curve made of an ordered list of
// segments. BreakPoints holds the x-coordinates where one segment ends and
// the next begins; a curve with n segments has n-1 break points. The encoder
// writes both lists as given and does not verify the count relationship.
type OneDimensionalCurve struct {
	BreakPoints []float64
	Segments    []CurveSegment
}

// CurveSegment is one segment of a segmented curve. Exactly two variants
// exist in the ICC format, FormulaCurveElement ('parf') and
// SampledCurveElement ('samf'); the segment encoder writes the variant's
// signature followed by its payload and rejects any other implementation
// with errs.ErrInvalidProfileFormat.
type CurveSegment interface {
	SegmentSignature() format.CurveSegmentSignature
}

// FormulaCurveType selects the functional form of a formula curve segment
// and, with it, the set of coefficient fields present on the wire.
type FormulaCurveType uint16

const (
	// FormulaGamma is Y = (a*X + b)^gamma + c. Fields: Gamma, A, B, C.
	FormulaGamma FormulaCurveType = 1
	// FormulaLog is Y = a*log10(b*X^gamma + c) + d. Fields: Gamma, A, B, C, D.
	FormulaLog FormulaCurveType = 2
	// FormulaExponent is Y = a*b^(c*X + d) + e. Fields: A, B, C, D, E.
	FormulaExponent FormulaCurveType = 3
)

// FormulaCurveElement is a curve segment defined by one of three closed
// formula shapes. A, B and C are meaningful for every type; Gamma, D and E
// only for the types listed on the FormulaCurveType constants. Fields
// outside the selected set are ignored by the encoder even if populated.
type FormulaCurveElement struct {
	Type  FormulaCurveType
	Gamma float64
	A     float64
	B     float64
	C     float64
	D     float64
	E     float64
}

// SegmentSignature returns the 'parf' curve segment signature.
func (e *FormulaCurveElement) SegmentSignature() format.CurveSegmentSignature {
	return format.FormulaCurveSegment
}

// SampledCurveElement is a curve segment defined by a list of sampled
// values, each narrowed to an IEEE-754 single on the wire.
type SampledCurveElement struct {
	Entries []float64
}

// SegmentSignature returns the 'samf' curve segment signature.
func (e *SampledCurveElement) SegmentSignature() format.CurveSegmentSignature {
	return format.SampledCurveSegment
}

// ResponseCurve describes the device response for one measurement unit of a
// response curve set. ResponseArrays holds one measurement list per device
// channel; XYZValues holds the measured patch value per channel and must
// have the same length as ResponseArrays.
type ResponseCurve struct {
	CurveType      format.CurveMeasurementSignature
	ResponseArrays [][]ResponseNumber
	XYZValues      []XYZNumber
}

// Channels returns the number of device channels of the response curve.
func (c *ResponseCurve) Channels() int {
	return len(c.ResponseArrays)
}

// ParametricCurveType selects the functional form of a parametric curve and
// the set of parameter fields present on the wire.
type ParametricCurveType uint16

const (
	// ParametricGamma is Y = X^g. Fields: G.
	ParametricGamma ParametricCurveType = 0
	// ParametricCIE122 is Y = (a*X + b)^g for X >= -b/a, else 0.
	// Fields: G, A, B.
	ParametricCIE122 ParametricCurveType = 1
	// ParametricIEC61966_3 is Y = (a*X + b)^g + c for X >= -b/a, else c.
	// Fields: G, A, B, C.
	ParametricIEC61966_3 ParametricCurveType = 2
	// ParametricSRGB is Y = (a*X + b)^g for X >= d, else c*X.
	// Fields: G, A, B, C, D.
	ParametricSRGB ParametricCurveType = 3
	// ParametricFull is Y = (a*X + b)^g + e for X >= d, else c*X + f.
	// Fields: G, A, B, C, D, E, F.
	ParametricFull ParametricCurveType = 4
)

// ParametricCurve is a one-dimensional curve defined by one of the five
// closed parametric forms of the ICC format. Fields outside the set selected
// by Type are ignored by the encoder even if populated.
type ParametricCurve struct {
	Type ParametricCurveType
	G    float64
	A    float64
	B    float64
	C    float64
	D    float64
	E    float64
	F    float64
}
