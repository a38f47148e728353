package profile

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/arloliu/iccenc/encoding"
	"github.com/arloliu/iccenc/endian"
	"github.com/arloliu/iccenc/errs"
	"github.com/arloliu/iccenc/format"
	"github.com/arloliu/iccenc/internal/hash"
	"github.com/arloliu/iccenc/internal/options"
)

// HeaderSize is the size of the fixed profile header in bytes.
const HeaderSize = 128

// tagTableEntrySize is the size of one tag table entry:
// signature, offset and size, each a uint32.
const tagTableEntrySize = 12

// d50 is the PCS illuminant written into every profile header. The ICC
// format fixes the PCS white point to D50 regardless of the media white
// point stored in the 'wtpt' tag.
var d50 = encoding.XYZNumber{X: 0.9642, Y: 1.0, Z: 0.8249}

// Profile describes an ICC profile: the header fields and the tag data
// blocks. The zero value is not usable; construct profiles with New so the
// header carries a valid version and magic defaults.
type Profile struct {
	PreferredCMM       uint32
	Version            format.Version         // byte offset 8-11
	Class              format.ProfileClass    // byte offset 12-15
	ColorSpace         format.ColorSpace      // byte offset 16-19, device colour space
	PCS                format.ColorSpace      // byte offset 20-23, XYZSpace or LabSpace
	CreationDate       time.Time              // byte offset 24-35, encoded as dateTimeNumber
	PrimaryPlatform    format.PrimaryPlatform // byte offset 40-43
	Flags              uint32                 // byte offset 44-47
	DeviceManufacturer uint32                 // byte offset 48-51
	DeviceModel        uint32                 // byte offset 52-55
	DeviceAttributes   uint64                 // byte offset 56-63
	RenderingIntent    format.RenderingIntent // byte offset 64-67
	Creator            uint32                 // byte offset 80-83

	// Tags maps tag signatures to their raw tag data blocks, including the
	// 4-byte type signature and reserved bytes each block starts with.
	Tags map[format.TagSignature][]byte
}

// New creates a profile with the given device class and colour space.
// The version defaults to 4.4.0, the PCS to XYZ, the rendering intent to
// perceptual and the creation date to the current time in UTC.
func New(class format.ProfileClass, colorSpace format.ColorSpace) *Profile {
	return &Profile{
		Version:      format.Version4_4_0,
		Class:        class,
		ColorSpace:   colorSpace,
		PCS:          format.XYZSpace,
		CreationDate: time.Now().UTC(),
		Tags:         make(map[format.TagSignature][]byte),
	}
}

// SetTag stores a tag data block under the given signature, replacing any
// previous block.
func (p *Profile) SetTag(sig format.TagSignature, data []byte) {
	if p.Tags == nil {
		p.Tags = make(map[format.TagSignature][]byte)
	}
	p.Tags[sig] = data
}

// TagCount returns the number of tags currently set.
func (p *Profile) TagCount() int {
	return len(p.Tags)
}

type encodeConfig struct {
	creationTime  time.Time
	omitProfileID bool
}

// EncodeOption configures a single Encode call.
type EncodeOption = options.Option[*encodeConfig]

// WithCreationTime overrides the profile creation date for this encode.
// Useful for reproducible output.
func WithCreationTime(t time.Time) EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.creationTime = t
	})
}

// WithoutProfileID skips the MD5 profile ID computation and leaves the ID
// field zero, which the format permits for any version.
func WithoutProfileID() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.omitProfileID = true
	})
}

// Encode converts the profile to its binary ICC form.
//
// Tags are laid out in ascending signature order, each data block aligned
// to a 4-byte boundary. Byte-identical data blocks are stored once and
// shared by every tag that carries them. For version 4 profiles the MD5
// profile ID is computed over the output with the flags, rendering intent
// and ID fields zeroed, as the specification requires.
func (p *Profile) Encode(opts ...EncodeOption) ([]byte, error) {
	if p.Version == 0 {
		return nil, errs.ErrInvalidVersion
	}

	cfg := &encodeConfig{creationTime: p.CreationDate}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	tags, size, err := p.layoutTags()
	if err != nil {
		return nil, err
	}

	w := encoding.NewProfileBufferWriter(endian.GetBigEndianEngine())
	defer w.Reset()

	p.writeHeader(w, cfg.creationTime, uint32(size))

	// tag table
	w.WriteUInt32(uint32(len(tags)))
	for _, tag := range tags {
		w.WriteUInt32(uint32(tag.sig))
		w.WriteUInt32(tag.offset)
		w.WriteUInt32(uint32(len(tag.data)))
	}

	// tag data, 4-byte aligned, duplicates written once
	for _, tag := range tags {
		if tag.shared {
			continue
		}
		if pad := int(tag.offset) - w.Len(); pad > 0 {
			w.WriteEmpty(pad)
		}
		w.WriteBytes(tag.data)
	}
	if pad := size - w.Len(); pad > 0 {
		w.WriteEmpty(pad)
	}

	out := make([]byte, size)
	copy(out, w.Bytes())

	if p.Version >= format.Version4_0_0 && !cfg.omitProfileID {
		// The ID is the MD5 of the profile with the flags, rendering intent
		// and ID fields zeroed.
		sum := md5.Sum(out)
		copy(out[84:100], sum[:])
	}
	binary.BigEndian.PutUint32(out[44:48], p.Flags)
	binary.BigEndian.PutUint32(out[64:68], uint32(p.RenderingIntent))

	return out, nil
}

// tagLayout is one resolved tag table entry.
type tagLayout struct {
	sig    format.TagSignature
	data   []byte
	offset uint32
	shared bool // data block stored at another tag's offset
}

// layoutTags orders the tags, assigns data offsets with 4-byte alignment,
// shares byte-identical blocks and returns the total profile size.
func (p *Profile) layoutTags() ([]tagLayout, int, error) {
	tags := make([]tagLayout, 0, len(p.Tags))
	for sig, data := range p.Tags {
		if uint64(len(data)) > math.MaxUint32 {
			return nil, 0, fmt.Errorf("tag %v: %w", sig, errs.ErrTagDataTooLarge)
		}
		tags = append(tags, tagLayout{sig: sig, data: data})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].sig < tags[j].sig })

	pos := HeaderSize + 4 + len(tags)*tagTableEntrySize
	seen := make(map[uint64][]int, len(tags)) // data identity -> tag indexes
	for i := range tags {
		id := hash.TagDataID(tags[i].data)
		for _, j := range seen[id] {
			if bytes.Equal(tags[i].data, tags[j].data) {
				tags[i].offset = tags[j].offset
				tags[i].shared = true
				break
			}
		}
		if !tags[i].shared {
			tags[i].offset = uint32(pos)
			pos += (len(tags[i].data) + 3) &^ 3
			seen[id] = append(seen[id], i)
		}
	}

	return tags, pos, nil
}

// writeHeader writes the 128-byte profile header. The flags, rendering
// intent and profile ID fields are written as zero; Encode patches the
// first two after the profile ID has been computed.
func (p *Profile) writeHeader(w encoding.Writer, created time.Time, size uint32) {
	w.WriteUInt32(size)
	w.WriteUInt32(p.PreferredCMM)
	w.WriteUInt32(uint32(p.Version))
	w.WriteUInt32(uint32(p.Class))
	w.WriteUInt32(uint32(p.ColorSpace))
	w.WriteUInt32(uint32(p.PCS))
	writeDateTime(w, created)
	w.WriteUInt32(format.ProfileFileSignature)
	w.WriteUInt32(uint32(p.PrimaryPlatform))
	w.WriteUInt32(0) // flags, patched after ID computation
	w.WriteUInt32(p.DeviceManufacturer)
	w.WriteUInt32(p.DeviceModel)
	w.WriteUInt64(p.DeviceAttributes)
	w.WriteUInt32(0) // rendering intent, patched after ID computation
	w.WriteXYZ(d50)
	w.WriteUInt32(p.Creator)
	w.WriteEmpty(16) // profile ID
	w.WriteEmpty(28) // reserved
}

// writeDateTime writes an ICC dateTimeNumber: six uint16 values for the
// UTC year, month, day, hour, minute and second.
func writeDateTime(w encoding.Writer, t time.Time) int {
	t = t.UTC()

	n := w.WriteUInt16(uint16(t.Year()))
	n += w.WriteUInt16(uint16(t.Month()))
	n += w.WriteUInt16(uint16(t.Day()))
	n += w.WriteUInt16(uint16(t.Hour()))
	n += w.WriteUInt16(uint16(t.Minute()))
	n += w.WriteUInt16(uint16(t.Second()))

	return n
}
