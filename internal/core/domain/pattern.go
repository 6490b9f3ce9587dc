package domain

// Stitch command codes.
const (
	CommandStitch      = 0
	CommandJump        = 1
	CommandTrim        = 2
	CommandStop        = 3
	CommandEnd         = 4
	CommandColorChange = 5
	CommandSequinMode  = 6
)

// Stitch is a single needle position with its command code.
type Stitch struct {
	X       float64
	Y       float64
	Command int
}

// Thread describes one color in the thread sequence.
type Thread struct {
	Color       int
	Catalog     string
	Description string
}

// Pattern is the structured form of an embroidery file.
type Pattern struct {
	Stitches []Stitch
	// Threads are kept in file order; the order is part of the production sequence.
	Threads []Thread
	Extras  map[string]string
}

// CountCommand returns how many stitches carry the given command.
func (p *Pattern) CountCommand(command int) int {
	n := 0
	for _, s := range p.Stitches {
		if s.Command == command {
			n++
		}
	}
	return n
}
