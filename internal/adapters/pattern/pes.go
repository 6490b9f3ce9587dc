package pattern

import (
	"bytes"
	"encoding/binary"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	pesMagic         = "#PES"
	pesPECOffsetAt   = 8
	pecLabelOffset   = 3
	pecLabelSize     = 16
	pecColorCountAt  = 48
	pecStitchOffset  = 528
	pecColorChangeHi = 0xFE
	pecColorChangeLo = 0xB0
	pecEndHi         = 0xFF
	pecEndLo         = 0x00
	pecLongFormFlag  = 0x80
	pecTrimFlag      = 0x20
	pecJumpFlag      = 0x10
)

// PESReader decodes Brother PES files through their embedded PEC stitch block.
type PESReader struct{}

// Sniff reports whether data starts with the PES magic.
func (PESReader) Sniff(data []byte) bool {
	return bytes.HasPrefix(data, []byte(pesMagic))
}

// Read decodes the PEC section of a PES file.
func (PESReader) Read(data []byte) (*domain.Pattern, error) {
	if len(data) < pesPECOffsetAt+4 {
		return nil, domain.ErrPatternTruncated
	}
	pec := int(binary.LittleEndian.Uint32(data[pesPECOffsetAt:]))
	if pec < 0 || pec+pecStitchOffset > len(data) {
		return nil, zerr.With(domain.ErrPatternTruncated, "pec_offset", pec)
	}

	p := &domain.Pattern{Extras: make(map[string]string)}
	label := data[pec+pecLabelOffset : pec+pecLabelOffset+pecLabelSize]
	if name := strings.TrimSpace(strings.TrimRight(string(label), "\x00\r")); name != "" {
		p.Extras["name"] = name
	}

	colors := int(data[pec+pecColorCountAt]) + 1
	palette := data[pec+pecColorCountAt+1:]
	if colors > len(palette) {
		return nil, zerr.With(domain.ErrPatternTruncated, "colors", colors)
	}
	for _, idx := range palette[:colors] {
		p.Threads = append(p.Threads, pecThread(idx))
	}

	p.Stitches = readPECStitches(data[pec+pecStitchOffset:])
	return p, nil
}

func readPECStitches(block []byte) []domain.Stitch {
	var stitches []domain.Stitch
	var x, y float64
	pos := 0
	next := func() (byte, bool) {
		if pos >= len(block) {
			return 0, false
		}
		b := block[pos]
		pos++
		return b, true
	}

	for {
		val1, ok1 := next()
		val2, ok2 := next()
		if !ok1 || !ok2 || (val1 == pecEndHi && val2 == pecEndLo) {
			break
		}
		if val1 == pecColorChangeHi && val2 == pecColorChangeLo {
			pos++
			stitches = append(stitches, domain.Stitch{X: x, Y: y, Command: domain.CommandColorChange})
			continue
		}

		var dx, dy int
		jump, trim := false, false
		if val1&pecLongFormFlag != 0 {
			trim = val1&pecTrimFlag != 0
			jump = val1&pecJumpFlag != 0
			dx = signed12(int(val1)<<8 | int(val2))
			var ok bool
			if val2, ok = next(); !ok {
				break
			}
		} else {
			dx = signed7(val1)
		}

		if val2&pecLongFormFlag != 0 {
			trim = trim || val2&pecTrimFlag != 0
			jump = jump || val2&pecJumpFlag != 0
			val3, ok := next()
			if !ok {
				break
			}
			dy = signed12(int(val2)<<8 | int(val3))
		} else {
			dy = signed7(val2)
		}

		if trim && !jump {
			stitches = append(stitches, domain.Stitch{X: x, Y: y, Command: domain.CommandTrim})
		}
		x += float64(dx)
		y += float64(dy)
		command := domain.CommandStitch
		if jump || trim {
			command = domain.CommandJump
		}
		stitches = append(stitches, domain.Stitch{X: x, Y: y, Command: command})
	}

	return append(stitches, domain.Stitch{X: x, Y: y, Command: domain.CommandEnd})
}

func signed7(b byte) int {
	if b > 0x3F {
		return int(b) - 0x80
	}
	return int(b)
}

func signed12(v int) int {
	v &= 0x0FFF
	if v > 0x07FF {
		return v - 0x1000
	}
	return v
}
