package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/adapters/pattern"
	"go.trai.ch/hoop/internal/core/domain"
)

func TestDSTWriter_RoundTrip(t *testing.T) {
	src := dstFile("rose",
		dstRecord(10, 20, 0),
		dstRecord(-5, 3, 0),
		dstRecord(100, -100, 0x80),
		dstRecord(0, 0, 0xC0),
		dstRecord(1, 1, 0),
		[]byte{0, 0, 0xF3},
	)
	p, err := pattern.DSTReader{}.Read(src)
	require.NoError(t, err)

	out, err := pattern.DSTWriter{}.Encode(p, "rose")
	require.NoError(t, err)

	again, err := pattern.DSTReader{}.Read(out)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestDSTWriter_SplitsLongMoves(t *testing.T) {
	p := &domain.Pattern{Stitches: []domain.Stitch{
		{X: 300, Y: -250, Command: domain.CommandStitch},
		{X: 300, Y: -250, Command: domain.CommandEnd},
	}}

	out, err := pattern.DSTWriter{}.Encode(p, "")
	require.NoError(t, err)
	require.Len(t, out, 512+4*3)
	assert.Equal(t, []byte{0, 0, 0xF3}, out[len(out)-3:])

	decoded, err := pattern.DSTReader{}.Read(out)
	require.NoError(t, err)
	assert.Equal(t, []domain.Stitch{
		{X: 100, Y: -83, Command: domain.CommandJump},
		{X: 200, Y: -166, Command: domain.CommandJump},
		{X: 300, Y: -250, Command: domain.CommandStitch},
		{X: 300, Y: -250, Command: domain.CommandEnd},
	}, decoded.Stitches)
}

func TestDSTWriter_Header(t *testing.T) {
	p := &domain.Pattern{Stitches: []domain.Stitch{
		{X: 300, Y: -250, Command: domain.CommandStitch},
		{X: 300, Y: -250, Command: domain.CommandColorChange},
		{X: 290, Y: -250, Command: domain.CommandStitch},
	}}

	out, err := pattern.DSTWriter{}.Encode(p, "tulip")
	require.NoError(t, err)

	header := string(out[:512])
	assert.Equal(t, "LA:tulip           \r", header[:20])
	for _, field := range []string{
		"ST:      5\r",
		"CO:  1\r",
		"+X:  300\r",
		"-X:    0\r",
		"+Y:    0\r",
		"-Y:  250\r",
		"AX:+  290\r",
		"AY:-  250\r",
		"PD:******\r\x1a",
	} {
		assert.Contains(t, header, field)
	}
}

func TestDSTWriter_DropsTrimsAndSanitizesLabel(t *testing.T) {
	p := &domain.Pattern{Stitches: []domain.Stitch{
		{X: 5, Y: 5, Command: domain.CommandStitch},
		{X: 5, Y: 5, Command: domain.CommandTrim},
		{X: 9, Y: 5, Command: domain.CommandStitch},
	}}

	out, err := pattern.DSTWriter{}.Encode(p, "ünicode-name-too-long")
	require.NoError(t, err)

	decoded, err := pattern.DSTReader{}.Read(out)
	require.NoError(t, err)
	assert.Equal(t, "nicode-name-too-", decoded.Extras["name"])
	assert.Equal(t, []domain.Stitch{
		{X: 5, Y: 5, Command: domain.CommandStitch},
		{X: 9, Y: 5, Command: domain.CommandStitch},
		{X: 9, Y: 5, Command: domain.CommandEnd},
	}, decoded.Stitches)
}

func TestDSTWriter_FromPES(t *testing.T) {
	pes, err := pattern.PESReader{}.Read(pesFile("tulip", []byte{5}, []byte{0x0A, 0x14, 0x7B, 0x03, 0xFF, 0x00}))
	require.NoError(t, err)

	out, err := pattern.DSTWriter{}.Encode(pes, pes.Extras["name"])
	require.NoError(t, err)

	dst, err := pattern.NewRegistry().TryParse(out)
	require.NoError(t, err)
	assert.Equal(t, pes.Stitches, dst.Stitches)
	assert.Equal(t, "tulip", dst.Extras["name"])
}

func TestDSTWriter_NilPattern(t *testing.T) {
	_, err := pattern.DSTWriter{}.Encode(nil, "x")
	require.ErrorContains(t, err, domain.ErrPatternEncodeFailed.Error())
}
