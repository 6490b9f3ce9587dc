package export_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/core/ports/mocks"
	"go.trai.ch/hoop/internal/engine/export"
	"go.uber.org/mock/gomock"
)

var exportDay = time.Date(2026, time.October, 16, 9, 5, 3, 0, time.UTC)

type fixture struct {
	scanner *mocks.MockGroupScanner
	reader  *mocks.MockSourceReader
	parser  *mocks.MockPatternParser
	encoder *mocks.MockPatternEncoder
	placer  *mocks.MockPlacer
	logger  *mocks.MockLogger
	tracer  *mocks.MockTracer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	return &fixture{
		scanner: mocks.NewMockGroupScanner(ctrl),
		reader:  mocks.NewMockSourceReader(ctrl),
		parser:  mocks.NewMockPatternParser(ctrl),
		encoder: mocks.NewMockPatternEncoder(ctrl),
		placer:  mocks.NewMockPlacer(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		tracer:  tracer,
	}
}

func (f *fixture) exporter(parser ports.PatternParser) *export.Exporter {
	return export.New(f.scanner, f.reader, parser, f.encoder, f.placer, f.tracer, f.logger)
}

func groupFile(label, group string, order int, name string) domain.GroupFile {
	return domain.GroupFile{
		Path:  filepath.Join("/sorted", label, group, name),
		Name:  name,
		Label: label,
		Group: group,
		Order: order,
	}
}

func TestJobs(t *testing.T) {
	files := []domain.GroupFile{
		groupFile("A", "001_aaaa1111", 1, "1997_2282_front_L_Sweatshirt_1_1_item_1.pes"),
		groupFile("A", "001_aaaa1111", 1, "1998_2290_front_M_Sweatshirt_1_1_item_1.pes"),
		groupFile("A", "002_bbbb2222", 2, "2150_2448_front_L_Sweatshirt_2_1_item_1.pes"),
		groupFile("A", "003_cccc3333", 3, "2150_2448_sleeve_left_L_Sweatshirt_2_2_item_1.pes"),
		groupFile("A", "004_dddd4444", 4, "2150_2448_front_L_Sweatshirt_2_1_item_2.pes"),
		groupFile("B", "001_eeee5555", 1, "3001_10_back_S_Tee_1_1_item_1.pes"),
		groupFile("B", "001_eeee5555", 1, "notes_item.pes"),
	}

	jobs, ignored := export.Jobs("/sorted", files, exportDay)

	require.Len(t, jobs, 5)
	assert.Equal(t, []domain.GroupFile{files[6]}, ignored)

	assert.Equal(t, "001A1F16j.dst", jobs[0].DSTName)
	assert.Equal(t, 2282, jobs[0].Item)
	assert.Equal(t, filepath.Join("/sorted", "A", "dst", "001A1F16j.dst"), jobs[0].Path)

	// Duplicates of one design share the folder and therefore the DST name.
	assert.Equal(t, "001A1F16j.dst", jobs[1].DSTName)
	assert.Equal(t, 2290, jobs[1].Item)

	// The two front faces of item 2448 form one job named after the first folder.
	assert.Equal(t, "002A2F16j.dst", jobs[2].DSTName)
	assert.Equal(t, "front", jobs[2].Position)
	require.Len(t, jobs[2].Files, 2)
	assert.Equal(t, 2, jobs[2].Files[1].Design.ItemNum)
	assert.Equal(t, 2, jobs[2].TotalFaces)

	assert.Equal(t, "003A2L16j.dst", jobs[3].DSTName)
	assert.Equal(t, "sleeve_left", jobs[3].Position)
	assert.Equal(t, "003_cccc3333", jobs[3].FolderName)

	assert.Equal(t, "001B1B16j.dst", jobs[4].DSTName)
	assert.Equal(t, filepath.Join("/sorted", "B", "dst", "001B1B16j.dst"), jobs[4].Path)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	files := []domain.GroupFile{
		groupFile("A", "001_aaaa1111", 1, "1997_2282_front_L_Sweatshirt_1_1_item_1.pes"),
		groupFile("A", "001_aaaa1111", 1, "1998_2290_front_M_Sweatshirt_1_1_item_1.pes"),
		groupFile("B", "001_eeee5555", 1, "3001_10_back_S_Tee_1_1_item_1.pes"),
		groupFile("B", "001_eeee5555", 1, "stray.pes"),
	}
	pattern := &domain.Pattern{Stitches: []domain.Stitch{{X: 1, Y: 1}}}

	f.scanner.EXPECT().Groups("/sorted", []string{".pes"}).Return(files, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.reader.EXPECT().ReadFile(files[0].Path).Return([]byte("a"), nil)
	f.reader.EXPECT().ReadFile(files[2].Path).Return([]byte("b"), nil)
	f.parser.EXPECT().TryParse(gomock.Any()).Return(pattern, nil).Times(2)
	f.encoder.EXPECT().Encode(pattern, "001A1F16j").Return([]byte("dst-a"), nil)
	f.encoder.EXPECT().Encode(pattern, "001B1B16j").Return([]byte("dst-b"), nil)

	var mu sync.Mutex
	written := map[string]string{}
	f.placer.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		written[path] = string(data)
		return nil
	}).Times(2)

	jobs, err := f.exporter(f.parser).Export(context.Background(), "/sorted", exportDay)
	require.NoError(t, err)

	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.True(t, j.Exported, j.DSTName)
	}
	assert.Equal(t, map[string]string{
		filepath.Join("/sorted", "A", "dst", "001A1F16j.dst"): "dst-a",
		filepath.Join("/sorted", "B", "dst", "001B1B16j.dst"): "dst-b",
	}, written)
}

func TestExport_ConversionFailureIsReported(t *testing.T) {
	f := newFixture(t)
	files := []domain.GroupFile{
		groupFile("A", "001_aaaa1111", 1, "1997_2282_front_L_Sweatshirt_1_1_item_1.pes"),
		groupFile("A", "002_bbbb2222", 2, "1998_2290_front_M_Sweatshirt_1_1_item_1.pes"),
	}

	f.scanner.EXPECT().Groups(gomock.Any(), gomock.Any()).Return(files, nil)
	f.reader.EXPECT().ReadFile(files[0].Path).Return([]byte("bad"), nil)
	f.reader.EXPECT().ReadFile(files[1].Path).Return([]byte("good"), nil)
	f.parser.EXPECT().TryParse([]byte("bad")).Return(nil, domain.ErrPatternTruncated)
	f.parser.EXPECT().TryParse([]byte("good")).Return(&domain.Pattern{}, nil)
	f.encoder.EXPECT().Encode(gomock.Any(), "002A1F16j").Return([]byte("dst"), nil)
	f.placer.EXPECT().Write(filepath.Join("/sorted", "A", "dst", "002A1F16j.dst"), []byte("dst")).Return(nil)
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "could not convert 1997_2282_front_L_Sweatshirt_1_1_item_1.pes")
	})

	jobs, err := f.exporter(f.parser).Export(context.Background(), "/sorted", exportDay)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.False(t, jobs[0].Exported)
	assert.True(t, jobs[1].Exported)
}

func TestExport_WithoutParser(t *testing.T) {
	f := newFixture(t)
	files := []domain.GroupFile{groupFile("A", "001_aaaa1111", 1, "1997_2282_front_L_Sweatshirt_1_1_item_1.pes")}

	f.scanner.EXPECT().Groups(gomock.Any(), gomock.Any()).Return(files, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	jobs, err := f.exporter(nil).Export(context.Background(), "/sorted", exportDay)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.False(t, jobs[0].Exported)
}

func TestExport_ScanError(t *testing.T) {
	f := newFixture(t)
	scanErr := errors.New("walk failed")
	f.scanner.EXPECT().Groups(gomock.Any(), gomock.Any()).Return(nil, scanErr)

	_, err := f.exporter(f.parser).Export(context.Background(), "/sorted", exportDay)
	require.ErrorIs(t, err, scanErr)
}

func TestExport_Canceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []domain.GroupFile{groupFile("A", "001_aaaa1111", 1, "1997_2282_front_L_Sweatshirt_1_1_item_1.pes")}
	f.scanner.EXPECT().Groups(gomock.Any(), gomock.Any()).Return(files, nil)

	_, err := f.exporter(f.parser).Export(ctx, "/sorted", exportDay)
	require.ErrorIs(t, err, context.Canceled)
}
