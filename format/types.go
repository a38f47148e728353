package format

import "fmt"

type (
	// TagSignature identifies a tag in the profile tag table.
	TagSignature uint32
	// TypeSignature identifies the type of a tag data block.
	TypeSignature uint32
	// CurveSegmentSignature identifies the variant of a curve segment inside
	// a segmented one-dimensional curve.
	CurveSegmentSignature uint32
	// CurveMeasurementSignature identifies the measurement unit of a
	// response curve set ("rcs2" tag data).
	CurveMeasurementSignature uint32
	// ProfileClass is the device class of a profile.
	ProfileClass uint32
	// ColorSpace is a colour space signature.
	ColorSpace uint32
	// PrimaryPlatform is the platform a profile was created for.
	PrimaryPlatform uint32
	// RenderingIntent selects the colour rendering intent of a profile.
	RenderingIntent uint32
	// Version is a version of the ICC profile format.
	Version uint32
)

// ProfileFileSignature is the magic number at byte offset 36 of every
// profile header ("acsp").
const ProfileFileSignature uint32 = 0x61637370

// Tag signatures used by this module.
const (
	ProfileDescriptionTag TagSignature = 0x64657363 // "desc"
	CopyrightTag          TagSignature = 0x63707274 // "cprt"
	MediaWhitePointTag    TagSignature = 0x77747074 // "wtpt"
	MediaBlackPointTag    TagSignature = 0x626B7074 // "bkpt"
	GrayTRCTag            TagSignature = 0x6B545243 // "kTRC"
	RedTRCTag             TagSignature = 0x72545243 // "rTRC"
	GreenTRCTag           TagSignature = 0x67545243 // "gTRC"
	BlueTRCTag            TagSignature = 0x62545243 // "bTRC"
	RedMatrixColumnTag    TagSignature = 0x7258595A // "rXYZ"
	GreenMatrixColumnTag  TagSignature = 0x6758595A // "gXYZ"
	BlueMatrixColumnTag   TagSignature = 0x6258595A // "bXYZ"
	ChromaticAdaptionTag  TagSignature = 0x63686164 // "chad"
	LuminanceTag          TagSignature = 0x6C756D69 // "lumi"
	OutputResponseTag     TagSignature = 0x72657370 // "resp"
	DToB0Tag              TagSignature = 0x44324230 // "D2B0"
	BToD0Tag              TagSignature = 0x42324430 // "B2D0"
)

// Type signatures of the tag data blocks this module can produce.
const (
	CurveType                 TypeSignature = 0x63757276 // "curv"
	ParametricCurveType       TypeSignature = 0x70617261 // "para"
	ResponseCurveSet16Type    TypeSignature = 0x72637332 // "rcs2"
	MultiLocalizedUnicodeType TypeSignature = 0x6D6C7563 // "mluc"
	TextType                  TypeSignature = 0x74657874 // "text"
	XYZType                   TypeSignature = 0x58595A20 // "XYZ "
	S15Fixed16ArrayType       TypeSignature = 0x73663332 // "sf32"
	MultiProcessElementsType  TypeSignature = 0x6D706574 // "mpet"
	CurveSetElementType       TypeSignature = 0x63767374 // "cvst"
)

// Curve segment signatures. These select the payload shape of a segment in a
// segmented curve and are written verbatim on the wire.
const (
	FormulaCurveSegment CurveSegmentSignature = 0x70617266 // "parf"
	SampledCurveSegment CurveSegmentSignature = 0x73616D66 // "samf"
)

// Measurement unit signatures for response curve sets.
const (
	StatusA    CurveMeasurementSignature = 0x53746141 // "StaA"
	StatusE    CurveMeasurementSignature = 0x53746145 // "StaE"
	StatusI    CurveMeasurementSignature = 0x53746149 // "StaI"
	StatusT    CurveMeasurementSignature = 0x53746154 // "StaT"
	StatusM    CurveMeasurementSignature = 0x5374614D // "StaM"
	DIN        CurveMeasurementSignature = 0x444E2020 // "DN  "
	DINPol     CurveMeasurementSignature = 0x444E2050 // "DN P"
	DINNarrow  CurveMeasurementSignature = 0x444E4E20 // "DNN "
	DINNarrowP CurveMeasurementSignature = 0x444E4E50 // "DNNP"
)

// Profile / device classes.
const (
	InputClass      ProfileClass = 0x73636E72 // "scnr"
	DisplayClass    ProfileClass = 0x6D6E7472 // "mntr"
	OutputClass     ProfileClass = 0x70727472 // "prtr"
	LinkClass       ProfileClass = 0x6C696E6B // "link"
	ColorSpaceClass ProfileClass = 0x73706163 // "spac"
	AbstractClass   ProfileClass = 0x61627374 // "abst"
	NamedColorClass ProfileClass = 0x6E6D636C // "nmcl"
)

// Colour space signatures.
const (
	XYZSpace    ColorSpace = 0x58595A20 // "XYZ "
	LabSpace    ColorSpace = 0x4C616220 // "Lab "
	LuvSpace    ColorSpace = 0x4C757620 // "Luv "
	YCbCrSpace  ColorSpace = 0x59436272 // "YCbr"
	RGBSpace    ColorSpace = 0x52474220 // "RGB "
	GraySpace   ColorSpace = 0x47524159 // "GRAY"
	HSVSpace    ColorSpace = 0x48535620 // "HSV "
	CMYKSpace   ColorSpace = 0x434D594B // "CMYK"
	CMYSpace    ColorSpace = 0x434D5920 // "CMY "
)

// Primary platform signatures.
const (
	ApplePlatform     PrimaryPlatform = 0x4150504C // "APPL"
	MicrosoftPlatform PrimaryPlatform = 0x4D534654 // "MSFT"
	SGIPlatform       PrimaryPlatform = 0x53474920 // "SGI "
	SunPlatform       PrimaryPlatform = 0x53554E57 // "SUNW"
)

// Rendering intents.
const (
	Perceptual           RenderingIntent = 0
	RelativeColorimetric RenderingIntent = 1
	Saturation           RenderingIntent = 2
	AbsoluteColorimetric RenderingIntent = 3
)

// Well-known versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x02100000
	Version2_4_0 Version = 0x02400000
	Version4_0_0 Version = 0x04000000
	Version4_2_0 Version = 0x04200000
	Version4_3_0 Version = 0x04300000
	Version4_4_0 Version = 0x04400000
)

func (s TagSignature) String() string { return render(uint32(s)) }

func (s TypeSignature) String() string { return render(uint32(s)) }

func (s CurveSegmentSignature) String() string { return render(uint32(s)) }

func (s CurveMeasurementSignature) String() string { return render(uint32(s)) }

func (s PrimaryPlatform) String() string { return render(uint32(s)) }

func (c ProfileClass) String() string {
	switch c {
	case InputClass:
		return "Input"
	case DisplayClass:
		return "Display"
	case OutputClass:
		return "Output"
	case LinkClass:
		return "DeviceLink"
	case ColorSpaceClass:
		return "ColorSpace"
	case AbstractClass:
		return "Abstract"
	case NamedColorClass:
		return "NamedColor"
	default:
		return render(uint32(c))
	}
}

func (c ColorSpace) String() string { return render(uint32(c)) }

func (r RenderingIntent) String() string {
	switch r {
	case Perceptual:
		return "Perceptual"
	case RelativeColorimetric:
		return "RelativeColorimetric"
	case Saturation:
		return "Saturation"
	case AbsoluteColorimetric:
		return "AbsoluteColorimetric"
	default:
		return "Unknown"
	}
}

func (v Version) String() string {
	major := int(v >> 24)
	minor := int(v >> 20 & 0xF)
	bugfix := int(v >> 16 & 0xF)

	return fmt.Sprintf("%d.%d.%d", major, minor, bugfix)
}
