package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureValues(t *testing.T) {
	// The signature constants are the big-endian ASCII of their mnemonics.
	require.Equal(t, uint32(0x70617266), uint32(FormulaCurveSegment)) // 'parf'
	require.Equal(t, uint32(0x73616D66), uint32(SampledCurveSegment)) // 'samf'
	require.Equal(t, uint32(0x63757276), uint32(CurveType))           // 'curv'
	require.Equal(t, uint32(0x70617261), uint32(ParametricCurveType)) // 'para'
	require.Equal(t, uint32(0x72637332), uint32(ResponseCurveSet16Type))
	require.Equal(t, uint32(0x61637370), ProfileFileSignature)
}

func TestSignatureString(t *testing.T) {
	require.Equal(t, "'parf'", FormulaCurveSegment.String())
	require.Equal(t, "'samf'", SampledCurveSegment.String())
	require.Equal(t, "'curv'", CurveType.String())
	require.Equal(t, "'StaA'", StatusA.String())
	require.Equal(t, "'desc'", ProfileDescriptionTag.String())

	// Non-printable signatures fall back to hex.
	require.Equal(t, "0x00000001", TagSignature(1).String())
}

func TestProfileClassString(t *testing.T) {
	require.Equal(t, "Display", DisplayClass.String())
	require.Equal(t, "Output", OutputClass.String())
	require.Equal(t, "'zzzz'", ProfileClass(0x7A7A7A7A).String())
}

func TestRenderingIntentString(t *testing.T) {
	require.Equal(t, "Perceptual", Perceptual.String())
	require.Equal(t, "AbsoluteColorimetric", AbsoluteColorimetric.String())
	require.Equal(t, "Unknown", RenderingIntent(9).String())
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "4.4.0", Version4_4_0.String())
	require.Equal(t, "2.1.0", Version2_1_0.String())
}
