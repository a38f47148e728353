// Package format defines the signatures and enumerations of the ICC binary
// profile format.
//
// Almost every structure in an ICC profile is identified by a four-byte
// signature: the ASCII bytes of a short mnemonic ('curv', 'para', 'acsp'...)
// interpreted as a big-endian uint32. This package declares the signature
// values used by the encoders in this module as typed constants, together
// with String renderings for diagnostics.
package format

// render formats a four-byte signature the way the ICC specification prints
// them: as the quoted ASCII mnemonic when printable, as hex otherwise.
func render(v uint32) string {
	b := []byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			const hexdigits = "0123456789ABCDEF"
			out := make([]byte, 0, 10)
			out = append(out, '0', 'x')
			for _, c := range b {
				out = append(out, hexdigits[c>>4], hexdigits[c&0xF])
			}

			return string(out)
		}
	}

	return "'" + string(b) + "'"
}
