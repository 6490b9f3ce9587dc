package pattern

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dstMaxDelta        = 121
	dstRecordBase      = 0x03
	dstJumpFlag        = 0x80
	dstColorChangeFlag = 0xC0
	dstSequinFlag      = 0x40
	dstEndFlags        = 0xF3
	dstHeaderEnd       = 0x1A
)

var _ ports.PatternEncoder = DSTWriter{}

// DSTWriter encodes patterns as Tajima DST files.
type DSTWriter struct{}

// Encode writes the 512-byte header followed by one record per displacement.
// Moves longer than 121 units are split into jumps. DST has no trim command, so trims are
// dropped and stops become color changes.
func (DSTWriter) Encode(p *domain.Pattern, label string) ([]byte, error) {
	if p == nil {
		return nil, zerr.With(domain.ErrPatternEncodeFailed, "format", "dst")
	}

	var (
		records       []byte
		x, y          int
		count, colors int
		minX, maxX    int
		minY, maxY    int
	)
	emit := func(dx, dy int, flags byte) {
		rec := dstEncodeRecord(dx, dy, flags)
		records = append(records, rec[:]...)
		x += dx
		y += dy
		count++
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	for _, s := range p.Stitches {
		if s.Command == domain.CommandEnd {
			break
		}

		var flags byte
		switch s.Command {
		case domain.CommandTrim:
			continue
		case domain.CommandJump:
			flags = dstJumpFlag
		case domain.CommandColorChange, domain.CommandStop:
			flags = dstColorChangeFlag
			colors++
		case domain.CommandSequinMode:
			flags = dstSequinFlag
		}

		tx, ty := int(math.Round(s.X)), int(math.Round(s.Y))
		dx, dy := tx-x, ty-y
		steps := max(ceilDiv(abs(dx), dstMaxDelta), ceilDiv(abs(dy), dstMaxDelta), 1)
		startX, startY := x, y
		for i := 1; i < steps; i++ {
			emit(startX+dx*i/steps-x, startY+dy*i/steps-y, dstJumpFlag)
		}
		emit(tx-x, ty-y, flags)
	}
	records = append(records, 0, 0, dstEndFlags)

	header := dstHeader(label, count, colors, [4]int{maxX, -minX, maxY, -minY}, x, y)
	return append(header, records...), nil
}

// dstEncodeRecord sets the balanced-ternary bits of one displacement.
func dstEncodeRecord(dx, dy int, flags byte) [dstRecordSize]byte {
	rec := [dstRecordSize]byte{2: dstRecordBase | flags}
	dstSetBits(&rec, dx, dstXBits)
	dstSetBits(&rec, dy, dstYBits)
	return rec
}

func dstSetBits(rec *[dstRecordSize]byte, v int, bits []dstBit) {
	for w := 1; w <= 81; w *= 3 {
		d := ((v % 3) + 3) % 3
		if d == 2 {
			d = -1
		}
		v = (v - d) / 3
		if d == 0 {
			continue
		}
		for _, b := range bits {
			if b.value == float64(d*w) {
				rec[b.byteIndex] |= b.mask
				break
			}
		}
	}
}

// dstHeader renders the fixed-width text header. extents holds +X, -X, +Y and -Y.
func dstHeader(label string, stitches, colors int, extents [4]int, endX, endY int) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "LA:%-16s\r", dstHeaderLabel(label))
	fmt.Fprintf(&b, "ST:%7d\r", stitches)
	fmt.Fprintf(&b, "CO:%3d\r", colors)
	fmt.Fprintf(&b, "+X:%5d\r", extents[0])
	fmt.Fprintf(&b, "-X:%5d\r", extents[1])
	fmt.Fprintf(&b, "+Y:%5d\r", extents[2])
	fmt.Fprintf(&b, "-Y:%5d\r", extents[3])
	fmt.Fprintf(&b, "AX:%s%5d\r", sign(endX), abs(endX))
	fmt.Fprintf(&b, "AY:%s%5d\r", sign(endY), abs(endY))
	b.WriteString("MX:+    0\r")
	b.WriteString("MY:+    0\r")
	b.WriteString("PD:******\r")
	b.WriteByte(dstHeaderEnd)

	header := make([]byte, dstHeaderSize)
	for i := range header {
		header[i] = ' '
	}
	copy(header, b.Bytes())
	return header
}

// dstHeaderLabel keeps the printable ASCII of label, cut to the header field.
func dstHeaderLabel(label string) string {
	label = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return -1
		}
		return r
	}, label)
	if len(label) > dstLabelSize {
		label = label[:dstLabelSize]
	}
	return label
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) string {
	if v < 0 {
		return "-"
	}
	return "+"
}
