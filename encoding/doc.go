// Package encoding implements the low-level byte encoders for ICC curve
// structures.
//
// The package has two layers:
//
//   - The Writer interface and its BufferWriter implementation provide the
//     primitive numeric encodings of the ICC format: big-endian unsigned
//     integers, s15Fixed16 / u16Fixed16 / u8Fixed8 fixed-point numbers,
//     IEEE-754 single-precision floats, XYZ tristimulus vectors, response
//     numbers and reserved zero padding. Every write returns the number of
//     bytes emitted so callers can track stream position without querying
//     the sink.
//
//   - The Write* curve encoders serialize the in-memory curve model
//     (OneDimensionalCurve, ResponseCurve, ParametricCurve and the two
//     curve segment variants) into the exact byte layout mandated by the
//     ICC tag data format. The encoders are stateless pure transforms; all
//     state lives in the Writer they are handed.
//
// Field presence in parametric and formula curves is driven entirely by the
// curve's type code: a field that is absent for a given code contributes no
// bytes at all, it is not zero-filled. Getting this per-code field set wrong
// produces a profile that still looks structurally valid but is silently
// corrupt, which is why the mappings here are closed tables that reject
// unknown codes instead of guessing.
//
// # Usage
//
//	w := encoding.NewBufferWriter(endian.GetBigEndianEngine())
//	defer w.Reset()
//
//	n, err := encoding.WriteParametricCurve(w, &encoding.ParametricCurve{
//	    Type: encoding.ParametricSRGB,
//	    G:    2.4, A: 1 / 1.055, B: 0.055 / 1.055, C: 1 / 12.92, D: 0.04045,
//	})
//	// n == 24, w.Bytes() holds the 'para' body (type, reserved, G..D)
//
// A single Writer must not be shared by concurrent encoder calls: byte order
// within the sink is the entire contract. Encoders themselves hold no state
// and are safe to call concurrently with distinct writers.
package encoding
