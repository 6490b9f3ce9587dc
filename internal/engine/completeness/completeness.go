// Package completeness checks that every order in a folder has all of its files.
//
// Order files are named <order>_<subid>..._item_<N>.<ext>, where N is the number of items
// in the order. Design files may carry _<faces_total>_<face_index> right before item_.
package completeness

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
)

// Mode selects how a folder is counted.
type Mode uint8

const (
	// ModeDesign expects one file per face of every item.
	ModeDesign Mode = iota
	// ModeLabels expects one distinct sub id per item.
	ModeLabels
)

// ModeFor returns ModeLabels for a folder named "labels" and ModeDesign otherwise.
func ModeFor(folder string) Mode {
	if strings.EqualFold(folder, "labels") {
		return ModeLabels
	}
	return ModeDesign
}

var (
	nameRe = regexp.MustCompile(`(?i)^(\d+)_+(\d+).*item_(\d+)\.([^.]+)$`)
	faceRe = regexp.MustCompile(`(?i)_(\d+)_(\d+)_item_`)
)

// Entry is one recognized order file.
type Entry struct {
	Name       string
	Order      string
	SubID      int
	Items      int
	FacesTotal int
	FaceIndex  int
	Ext        string
}

// ParseName extracts the order fields from a file name.
func ParseName(name string) (Entry, bool) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return Entry{}, false
	}
	subID, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, false
	}
	items, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, false
	}

	e := Entry{
		Name:       name,
		Order:      m[1],
		SubID:      subID,
		Items:      items,
		FacesTotal: 1,
		FaceIndex:  1,
		Ext:        strings.ToLower(m[4]),
	}
	if f := faceRe.FindStringSubmatch(name); f != nil {
		total, errTotal := strconv.Atoi(f[1])
		index, errIndex := strconv.Atoi(f[2])
		if errTotal == nil && errIndex == nil {
			e.FacesTotal, e.FaceIndex = total, index
		}
	}
	return e, true
}

// Analyze groups names by order id and compares the announced counts with what is present.
// Names that do not follow the order naming, or whose extension is not listed, are ignored.
// An empty extension list accepts every extension. Reports are sorted by numeric order id.
func Analyze(folder string, names []string, extensions []string, mode Mode) []domain.OrderReport {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	byOrder := make(map[string][]Entry)
	for _, name := range names {
		e, ok := ParseName(name)
		if !ok {
			continue
		}
		if len(allowed) > 0 && !allowed[e.Ext] {
			continue
		}
		byOrder[e.Order] = append(byOrder[e.Order], e)
	}

	reports := make([]domain.OrderReport, 0, len(byOrder))
	for order, entries := range byOrder {
		reports = append(reports, analyzeOrder(folder, order, entries, mode))
	}
	slices.SortFunc(reports, func(a, b domain.OrderReport) int {
		return compareOrder(a.Order, b.Order)
	})
	return reports
}

func analyzeOrder(folder, order string, entries []Entry, mode Mode) domain.OrderReport {
	r := domain.OrderReport{Folder: folder, Order: order, FacesPerItem: 1}

	type faces struct {
		found    map[int]bool
		maxTotal int
	}
	perSub := make(map[int]*faces)
	for _, e := range entries {
		r.Files = append(r.Files, e.Name)
		r.ExpectedItems = max(r.ExpectedItems, e.Items)
		r.FacesPerItem = max(r.FacesPerItem, e.FacesTotal)

		f, ok := perSub[e.SubID]
		if !ok {
			f = &faces{found: make(map[int]bool)}
			perSub[e.SubID] = f
			r.SubIDs = append(r.SubIDs, e.SubID)
		}
		f.found[e.FaceIndex] = true
		f.maxTotal = max(f.maxTotal, e.FacesTotal)
	}
	slices.Sort(r.SubIDs)

	if len(r.SubIDs) < r.ExpectedItems {
		start := r.SubIDs[0]
		for s := start; s < start+r.ExpectedItems; s++ {
			if _, ok := perSub[s]; !ok {
				r.MissingSubIDs = append(r.MissingSubIDs, s)
			}
		}
	}

	if mode == ModeLabels {
		r.ExpectedFiles = r.ExpectedItems
		r.Actual = len(r.SubIDs)
		return r
	}

	r.Actual = len(entries)
	for _, sid := range r.SubIDs {
		f := perSub[sid]
		r.ExpectedFiles += f.maxTotal
		for i := 1; i <= f.maxTotal; i++ {
			if !f.found[i] {
				if r.MissingFaces == nil {
					r.MissingFaces = make(map[int][]int)
				}
				r.MissingFaces[sid] = append(r.MissingFaces[sid], i)
			}
		}
	}
	r.ExpectedFiles += len(r.MissingSubIDs) * r.FacesPerItem
	return r
}

// Mismatched returns the order ids whose reports do not match, in report order.
func Mismatched(reports []domain.OrderReport) []string {
	var ids []string
	for i := range reports {
		if reports[i].Mismatch() {
			ids = append(ids, reports[i].Order)
		}
	}
	return ids
}

func compareOrder(a, b string) int {
	ai, errA := strconv.ParseUint(a, 10, 64)
	bi, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(a, b)
}
