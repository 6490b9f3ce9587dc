package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MachineDirName is the folder under each worker folder that receives exported DST files.
	MachineDirName = "dst"

	// PatternDirName is the optional folder under each worker folder that holds group folders.
	PatternDirName = "pes"

	// ExportLogFile is the default name of the DST mapping log under OutputDirName.
	ExportLogFile = "dst_export_log.json"
)

// designNameRe matches <order>_<item>_<position>_<size>_<garment>_<faces>_<face>_item_<n>.pes.
// Positions may carry one underscore, as in sleeve_left.
var designNameRe = regexp.MustCompile(`^(\d+)_(\d+)_([^_]+(?:_[^_]+)?)_([^_]+)_([^_]+)_(\d+)_(\d+)_item_(\d+)\.pes$`)

// DesignName is the structured form of a production pattern file name.
type DesignName struct {
	Order      int
	Item       int
	Position   string
	Size       string
	Garment    string
	TotalFaces int
	Face       int
	ItemNum    int
}

// ParseDesignName parses name. It reports false for names outside the production scheme.
func ParseDesignName(name string) (DesignName, bool) {
	m := designNameRe.FindStringSubmatch(name)
	if m == nil {
		return DesignName{}, false
	}
	ints := make([]int, 0, 5)
	for _, s := range []string{m[1], m[2], m[6], m[7], m[8]} {
		v, err := strconv.Atoi(s)
		if err != nil {
			return DesignName{}, false
		}
		ints = append(ints, v)
	}
	return DesignName{
		Order:      ints[0],
		Item:       ints[1],
		Position:   m[3],
		Size:       m[4],
		Garment:    m[5],
		TotalFaces: ints[2],
		Face:       ints[3],
		ItemNum:    ints[4],
	}, true
}

// LabelFile returns the name of the label image printed for this design's order line.
func (d DesignName) LabelFile() string {
	return fmt.Sprintf("%d_%d_1_1_item_1.png", d.Order, d.Item)
}

// PositionCode returns the one-letter machine code of a garment position. Unknown positions
// map to F.
func PositionCode(position string) string {
	switch strings.ToLower(position) {
	case "sleeve_left":
		return "L"
	case "sleeve_right":
		return "R"
	case "back":
		return "B"
	case "chest":
		return "C"
	case "pocket":
		return "P"
	default:
		return "F"
	}
}

// MonthCode returns a for January through l for December.
func MonthCode(m time.Month) string {
	return string(rune('a' + int(m) - 1))
}

// MachineFileName returns the DST file name <order:03><label><faces><position><day:02><month>.dst.
func MachineFileName(folderOrder int, label string, totalFaces int, position string, day time.Time) string {
	return fmt.Sprintf("%03d%s%d%s%02d%s.dst",
		folderOrder, label, totalFaces, PositionCode(position), day.Day(), MonthCode(day.Month()))
}

// GroupFile is a pattern file found inside a group folder of a sorted tree.
type GroupFile struct {
	Path string
	Name string
	// Label is the worker folder the file was placed under.
	Label string
	// Group is the folder name, <NNN>_<digest>.
	Group string
	// Order is the numeric prefix of Group.
	Order int
}

// ExportFile is a group file whose name follows the production scheme.
type ExportFile struct {
	GroupFile
	Design DesignName
}

// ExportJob is one machine file produced from the files sharing a worker, item and position.
type ExportJob struct {
	DSTName     string
	Label       string
	FolderOrder int
	FolderName  string
	Item        int
	Position    string
	TotalFaces  int
	// Files are ordered by folder order and name. The first one is converted.
	Files []ExportFile
	// Path is where the DST file is written.
	Path string
	// Exported is set once the DST file was written.
	Exported bool
}

// MachineFilePath returns <root>/<label>/dst/<name>.
func MachineFilePath(root, label, name string) string {
	return filepath.Join(root, label, MachineDirName, name)
}
