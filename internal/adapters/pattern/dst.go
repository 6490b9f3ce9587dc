package pattern

import (
	"bytes"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
)

const (
	dstHeaderSize = 512
	dstRecordSize = 3
	dstLabelSize  = 16
)

// dstBit is one balanced-ternary digit of a DST displacement.
type dstBit struct {
	byteIndex int
	mask      byte
	value     float64
}

var (
	dstXBits = []dstBit{
		{2, 1 << 2, 81}, {2, 1 << 3, -81},
		{1, 1 << 2, 27}, {1, 1 << 3, -27},
		{0, 1 << 2, 9}, {0, 1 << 3, -9},
		{1, 1 << 0, 3}, {1, 1 << 1, -3},
		{0, 1 << 0, 1}, {0, 1 << 1, -1},
	}
	// Y is stored inverted.
	dstYBits = []dstBit{
		{2, 1 << 5, -81}, {2, 1 << 4, 81},
		{1, 1 << 5, -27}, {1, 1 << 4, 27},
		{0, 1 << 5, -9}, {0, 1 << 4, 9},
		{1, 1 << 7, -3}, {1, 1 << 6, 3},
		{0, 1 << 7, -1}, {0, 1 << 6, 1},
	}
)

// DSTReader decodes Tajima DST files.
type DSTReader struct{}

// Sniff reports whether data starts with a DST header.
func (DSTReader) Sniff(data []byte) bool {
	return len(data) >= dstHeaderSize && bytes.HasPrefix(data, []byte("LA:"))
}

// Read decodes the stitch records that follow the 512-byte header.
func (DSTReader) Read(data []byte) (*domain.Pattern, error) {
	if len(data) < dstHeaderSize {
		return nil, domain.ErrPatternTruncated
	}

	p := &domain.Pattern{Extras: make(map[string]string)}
	if label := dstLabel(data); label != "" {
		p.Extras["name"] = label
	}

	var x, y float64
	blocks := 0
	open := false
	for off := dstHeaderSize; off+dstRecordSize <= len(data); off += dstRecordSize {
		rec := data[off : off+dstRecordSize]
		b2 := rec[2]
		if b2&0xF3 == 0xF3 {
			p.Stitches = append(p.Stitches, domain.Stitch{X: x, Y: y, Command: domain.CommandEnd})
			break
		}

		x += dstDelta(rec, dstXBits)
		y += dstDelta(rec, dstYBits)

		command := domain.CommandStitch
		switch {
		case b2&0xC3 == 0xC3:
			command = domain.CommandColorChange
			open = false
		case b2&0x43 == 0x43:
			command = domain.CommandSequinMode
		case b2&0x83 == 0x83:
			command = domain.CommandJump
		default:
			if !open {
				blocks++
				open = true
			}
		}
		p.Stitches = append(p.Stitches, domain.Stitch{X: x, Y: y, Command: command})
	}

	// DST carries no thread table; every color block gets a placeholder.
	p.Threads = make([]domain.Thread, blocks)
	return p, nil
}

func dstDelta(rec []byte, bits []dstBit) float64 {
	var d float64
	for _, b := range bits {
		if rec[b.byteIndex]&b.mask != 0 {
			d += b.value
		}
	}
	return d
}

func dstLabel(data []byte) string {
	label := data[3 : 3+dstLabelSize]
	if i := bytes.IndexByte(label, '\r'); i >= 0 {
		label = label[:i]
	}
	return strings.TrimSpace(string(label))
}
