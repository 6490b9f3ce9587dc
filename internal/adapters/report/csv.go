package report

import (
	"encoding/csv"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

var assignmentHeader = []string{
	"name", "hash", "id_item", "person_label", "seconds", "readable", "dst_path", "group_name", "folder_order",
}

var summaryHeader = []string{
	"group_label", "file_count", "total_seconds", "total_seconds_readable",
	"adjusted_seconds", "adjusted_readable", "unique_id_items", "unique_hashes",
}

var completenessHeader = []string{
	"folder", "order", "expected_items", "faces_per_item", "expected_files", "actual",
	"subids", "missing_subids", "per_subid_missing", "filenames",
}

// WriteCSV writes the assignment rows followed by the worker summary.
func (r *Reporter) WriteCSV(path string, plan *domain.Plan, placements []domain.Placement) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, err) }()

	if err := EncodeCSV(f, plan, placements); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// EncodeCSV writes the assignment report to w.
func EncodeCSV(w io.Writer, plan *domain.Plan, placements []domain.Placement) error {
	destinations := make(map[int]string, len(placements))
	for _, p := range placements {
		destinations[p.Index] = p.Destination
	}

	cw := csv.NewWriter(w)
	rows := [][]string{assignmentHeader}
	for i := range plan.Artifacts {
		a := &plan.Artifacts[i]
		rows = append(rows, []string{
			a.Name,
			a.Digest,
			a.ItemID,
			plan.Label(a),
			formatFloat(a.Seconds),
			domain.HumanDuration(a.Seconds),
			destinations[i],
			a.GroupName(),
			strconv.Itoa(a.Sequence),
		})
	}

	if len(plan.Summaries) > 0 {
		rows = append(rows, nil, []string{"Summary"}, summaryHeader)

		var total domain.WorkerSummary
		for _, s := range plan.Summaries {
			rows = append(rows, summaryRow(s.Label, &s))
			total.FileCount += s.FileCount
			total.TotalSeconds += s.TotalSeconds
			total.AdjustedSeconds += s.AdjustedSeconds
			total.UniqueItems += s.UniqueItems
			total.UniqueDigests += s.UniqueDigests
		}
		rows = append(rows, nil, summaryRow("TOTAL", &total))
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func summaryRow(label string, s *domain.WorkerSummary) []string {
	return []string{
		label,
		strconv.Itoa(s.FileCount),
		formatFloat(s.TotalSeconds),
		domain.HumanDuration(s.TotalSeconds),
		formatFloat(s.AdjustedSeconds),
		domain.HumanDuration(s.AdjustedSeconds),
		strconv.Itoa(s.UniqueItems),
		strconv.Itoa(s.UniqueDigests),
	}
}

// WriteCompleteness writes one row per order report.
func (r *Reporter) WriteCompleteness(path string, reports []domain.OrderReport) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, err) }()

	cw := csv.NewWriter(f)
	rows := [][]string{completenessHeader}
	for i := range reports {
		rows = append(rows, completenessRow(&reports[i]))
	}
	if err := cw.WriteAll(rows); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

func completenessRow(r *domain.OrderReport) []string {
	missing := make([]string, 0, len(r.MissingFaces))
	for _, sub := range slices.Sorted(maps.Keys(r.MissingFaces)) {
		missing = append(missing, strconv.Itoa(sub)+":"+joinInts(r.MissingFaces[sub], ","))
	}

	return []string{
		r.Folder,
		r.Order,
		strconv.Itoa(r.ExpectedItems),
		strconv.Itoa(r.FacesPerItem),
		strconv.Itoa(r.ExpectedFiles),
		strconv.Itoa(r.Actual),
		joinInts(r.SubIDs, ";"),
		joinInts(r.MissingSubIDs, ";"),
		strings.Join(missing, "|"),
		strings.Join(r.Files, "|"),
	}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
