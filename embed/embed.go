// Package embed produces the container payloads used to carry ICC profiles
// inside image files.
//
// PNG stores a profile in an iCCP chunk: a Latin-1 profile name, a
// compression method byte, and the profile zlib-deflated. JPEG stores a
// profile across one or more APP2 marker segments, each prefixed with the
// "ICC_PROFILE" identifier and a sequence/total byte pair.
//
// The package only builds (and, for round-tripping, parses) the payloads;
// writing the surrounding chunk or marker framing is the image encoder's
// job.
package embed

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/iccenc/errs"
)

const (
	// MaxProfileNameLen is the PNG limit on iCCP profile names.
	MaxProfileNameLen = 79

	// jpegIdentifier prefixes every APP2 ICC segment, NUL included.
	jpegIdentifier = "ICC_PROFILE\x00"

	// JPEGChunkCapacity is the profile capacity of one APP2 segment: the
	// 65533-byte marker payload limit minus the identifier and the
	// sequence/total bytes.
	JPEGChunkCapacity = 65533 - len(jpegIdentifier) - 2

	// maxJPEGChunks is bounded by the one-byte sequence number.
	maxJPEGChunks = 255
)

// PNGChunkPayload builds the body of a PNG iCCP chunk: the profile name,
// a NUL separator, the compression method (0, deflate) and the
// zlib-compressed profile.
//
// The name must satisfy the PNG restrictions: 1 to 79 printable Latin-1
// characters with no leading, trailing or consecutive spaces.
func PNGChunkPayload(name string, profile []byte) ([]byte, error) {
	if len(profile) == 0 {
		return nil, errs.ErrEmptyProfile
	}
	if err := validateProfileName(name); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(name) + 2 + len(profile)/2)
	buf.WriteString(name)
	buf.WriteByte(0) // name terminator
	buf.WriteByte(0) // compression method: deflate

	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(profile); err != nil {
		return nil, fmt.Errorf("compress profile: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress profile: %w", err)
	}

	return buf.Bytes(), nil
}

// ParsePNGChunkPayload decodes an iCCP chunk body built by PNGChunkPayload,
// returning the profile name and the inflated profile.
func ParsePNGChunkPayload(payload []byte) (string, []byte, error) {
	sep := bytes.IndexByte(payload, 0)
	if sep < 0 || sep+2 > len(payload) {
		return "", nil, fmt.Errorf("iCCP payload: %w", errs.ErrInvalidProfileName)
	}
	name := string(payload[:sep])
	if err := validateProfileName(name); err != nil {
		return "", nil, err
	}
	if payload[sep+1] != 0 {
		return "", nil, fmt.Errorf("iCCP payload: unsupported compression method %d", payload[sep+1])
	}

	zr, err := zlib.NewReader(bytes.NewReader(payload[sep+2:]))
	if err != nil {
		return "", nil, fmt.Errorf("decompress profile: %w", err)
	}
	defer zr.Close()

	profile, err := io.ReadAll(zr)
	if err != nil {
		return "", nil, fmt.Errorf("decompress profile: %w", err)
	}

	return name, profile, nil
}

// JPEGSegments splits a profile into APP2 marker segment payloads. Each
// payload starts with the "ICC_PROFILE" identifier followed by the 1-based
// chunk sequence number and the total chunk count.
func JPEGSegments(profile []byte) ([][]byte, error) {
	if len(profile) == 0 {
		return nil, errs.ErrEmptyProfile
	}

	total := (len(profile) + JPEGChunkCapacity - 1) / JPEGChunkCapacity
	if total > maxJPEGChunks {
		return nil, fmt.Errorf("profile of %d bytes needs %d APP2 segments: %w",
			len(profile), total, errs.ErrProfileTooLarge)
	}

	segments := make([][]byte, 0, total)
	for i := 0; i < total; i++ {
		chunk := profile[i*JPEGChunkCapacity:]
		if len(chunk) > JPEGChunkCapacity {
			chunk = chunk[:JPEGChunkCapacity]
		}

		seg := make([]byte, 0, len(jpegIdentifier)+2+len(chunk))
		seg = append(seg, jpegIdentifier...)
		seg = append(seg, byte(i+1), byte(total))
		seg = append(seg, chunk...)
		segments = append(segments, seg)
	}

	return segments, nil
}

// validateProfileName checks the PNG iCCP name restrictions.
func validateProfileName(name string) error {
	if len(name) == 0 || len(name) > MaxProfileNameLen {
		return fmt.Errorf("name %q: %w", name, errs.ErrInvalidProfileName)
	}
	if name[0] == ' ' || name[len(name)-1] == ' ' {
		return fmt.Errorf("name %q: %w", name, errs.ErrInvalidProfileName)
	}

	prevSpace := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		printable := (c >= 32 && c <= 126) || (c >= 161)
		if !printable {
			return fmt.Errorf("name %q: %w", name, errs.ErrInvalidProfileName)
		}
		if c == ' ' {
			if prevSpace {
				return fmt.Errorf("name %q: %w", name, errs.ErrInvalidProfileName)
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
	}

	return nil
}
