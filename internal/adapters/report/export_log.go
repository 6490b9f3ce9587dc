package report

import (
	"encoding/json"
	"io"
	"time"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExportLog maps every exported DST file to the pattern files and label images it stands for.
type ExportLog struct {
	ExportDate       string            `json:"export_date"`
	TotalDSTFiles    int               `json:"total_dst_files"`
	NamingConvention map[string]string `json:"naming_convention"`
	Mappings         []ExportMapping   `json:"mappings"`
}

// ExportMapping is one export job.
type ExportMapping struct {
	DSTName       string   `json:"dst_name"`
	Person        string   `json:"person"`
	FolderOrder   int      `json:"folder_order"`
	FolderName    string   `json:"folder_name"`
	Items         []int    `json:"items"`
	Position      string   `json:"position"`
	TotalFaces    int      `json:"total_faces"`
	PESFiles      []string `json:"pes_files"`
	LabelPatterns []string `json:"label_patterns"`
	DSTPath       string   `json:"dst_path"`
}

var namingConvention = map[string]string{
	"format": "XXXYLZDDM.dst",
	"XXX":    "folder_order (3 digits)",
	"Y":      "person label",
	"L":      "total_faces of item",
	"Z":      "position (F=front, L=sleeve_left, R=sleeve_right, B=back, C=chest, P=pocket)",
	"DD":     "day (01-31)",
	"M":      "month_code (a=Jan, b=Feb, ..., l=Dec)",
}

// NewExportLog builds the log of jobs. TotalDSTFiles counts jobs, as several jobs may share
// one file.
func NewExportLog(jobs []domain.ExportJob, exportedAt time.Time) ExportLog {
	log := ExportLog{
		ExportDate:       exportedAt.Format(time.RFC3339),
		TotalDSTFiles:    len(jobs),
		NamingConvention: namingConvention,
		Mappings:         make([]ExportMapping, len(jobs)),
	}
	for i := range jobs {
		j := &jobs[i]
		m := ExportMapping{
			DSTName:       j.DSTName,
			Person:        j.Label,
			FolderOrder:   j.FolderOrder,
			FolderName:    j.FolderName,
			Items:         []int{j.Item},
			Position:      j.Position,
			TotalFaces:    j.TotalFaces,
			PESFiles:      make([]string, len(j.Files)),
			LabelPatterns: make([]string, len(j.Files)),
			DSTPath:       j.Path,
		}
		for k, f := range j.Files {
			m.PESFiles[k] = f.Name
			m.LabelPatterns[k] = f.Design.LabelFile()
		}
		log.Mappings[i] = m
	}
	return log
}

// WriteExportLog writes the JSON mapping log of jobs to path.
func (r *Reporter) WriteExportLog(path string, jobs []domain.ExportJob, exportedAt time.Time) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, err) }()

	if err := EncodeExportLog(f, NewExportLog(jobs, exportedAt)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// EncodeExportLog writes log as indented JSON.
func EncodeExportLog(w io.Writer, log ExportLog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(log)
}
