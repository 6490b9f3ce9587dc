package domain_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("root", ".hoop", "cache", "digests.cbor.zst"), domain.DefaultDigestCachePath("root"))
	assert.Equal(t, "001_aaaa1111", domain.GroupName(1, "aaaa1111"))
	assert.Equal(t, "012_ff", domain.GroupName(12, "ff"))
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0s"},
		{59.4, "59s"},
		{59.5, "1m 0s"},
		{60.5, "1m 0s"},
		{61.5, "1m 2s"},
		{150, "2m 30s"},
		{3725, "62m 5s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.HumanDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestSettings_DefaultsAreValid(t *testing.T) {
	s := domain.DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Labels())
	assert.Equal(t, []float64{1.0, 1.0, 0.7, 0.2}, s.Weights())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *domain.Settings)
		err    error
	}{
		{"zero people", func(s *domain.Settings) { s.PeopleCount = 0 }, domain.ErrInvalidPeopleCount},
		{"zero weight", func(s *domain.Settings) { s.PersonWeights = []float64{1, 0} }, domain.ErrInvalidPersonWeight},
		{"negative reduction", func(s *domain.Settings) { s.DuplicateReduction = -1 }, domain.ErrInvalidDuplicateReduction},
		{"hash too short", func(s *domain.Settings) { s.HashLength = 0 }, domain.ErrInvalidHashLength},
		{"hash too long", func(s *domain.Settings) { s.HashLength = 65 }, domain.ErrInvalidHashLength},
		{"unknown algorithm", func(s *domain.Settings) { s.HashAlgorithm = "md5" }, domain.ErrInvalidHashAlgorithm},
		{"zero speed", func(s *domain.Settings) { s.Cost.StitchesPerMinute = 0 }, domain.ErrInvalidCostParameter},
		{"negative trim", func(s *domain.Settings) { s.Cost.TrimSeconds = -0.1 }, domain.ErrInvalidCostParameter},
		{"negative item field", func(s *domain.Settings) { s.ItemField = -1 }, domain.ErrInvalidItemField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			tt.modify(&s)
			require.ErrorContains(t, s.Validate(), tt.err.Error())
		})
	}
}

func TestSettings_ValidateReportsFirstCostField(t *testing.T) {
	s := domain.DefaultSettings()
	s.Cost.ColorChangeSeconds = -1
	s.Cost.TrimSeconds = -2
	s.Cost.JumpSeconds = -3

	for range 20 {
		err := s.Validate()
		require.ErrorContains(t, err, domain.ErrInvalidCostParameter.Error())

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, map[string]any{"color_change_seconds": -1.0}, zErr.Metadata())
	}
}

func TestSettings_LabelsAndWeightsArePadded(t *testing.T) {
	s := domain.DefaultSettings()
	s.PeopleCount = 6
	s.PersonLabels = []string{"Ana", ""}
	s.PersonWeights = []float64{2}

	assert.Equal(t, []string{"Ana", "Person_2", "Person_3", "Person_4", "Person_5", "Person_6"}, s.Labels())
	assert.Equal(t, []float64{2, 1, 1, 1, 1, 1}, s.Weights())
}

func TestSettings_Fingerprint(t *testing.T) {
	a := domain.DefaultSettings()
	b := domain.DefaultSettings()
	b.PeopleCount = 9
	b.DuplicateReduction = 10
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "worker settings do not affect analyses")

	b.HashLength = 12
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestSummarize(t *testing.T) {
	artifacts := []domain.Artifact{
		{Name: "a", ItemID: "i1", Digest: "d1", Seconds: 100, Worker: 0},
		{Name: "b", ItemID: "i2", Digest: "d1", Seconds: 100, Worker: 0},
		{Name: "c", Digest: "d2", Seconds: 50, Worker: 1},
		{Name: "d", Digest: "d3", Seconds: 999, Worker: domain.Unassigned},
	}

	got := domain.Summarize(artifacts, []string{"A", "B"}, 30)

	assert.Equal(t, []domain.WorkerSummary{
		{Label: "A", FileCount: 2, TotalSeconds: 200, AdjustedSeconds: 170, UniqueItems: 2, UniqueDigests: 1},
		{Label: "B", FileCount: 1, TotalSeconds: 50, AdjustedSeconds: 50, UniqueItems: 0, UniqueDigests: 1},
	}, got)
}

func TestSummarize_AdjustedNeverNegative(t *testing.T) {
	artifacts := []domain.Artifact{
		{Digest: "d1", Seconds: 10, Worker: 0},
		{Digest: "d1", Seconds: 10, Worker: 0},
	}

	got := domain.Summarize(artifacts, []string{"A"}, 300)
	assert.Zero(t, got[0].AdjustedSeconds)
}

func TestPlan_Label(t *testing.T) {
	p := &domain.Plan{Labels: []string{"A"}}

	assert.Equal(t, "A", p.Label(&domain.Artifact{Worker: 0}))
	assert.Equal(t, "Person_3", p.Label(&domain.Artifact{Worker: 2}))
	assert.True(t, p.Empty())
}

func TestArtifact(t *testing.T) {
	a := domain.NewArtifact(
		domain.Source{Path: "/src/x.pes", Name: "x.pes", ItemID: "7"},
		domain.Analysis{Digest: "abcd", Seconds: 3, Fidelity: domain.FidelityRaw},
	)

	assert.Equal(t, domain.Unassigned, a.Worker)
	assert.Equal(t, "raw", a.Fidelity.String())
	assert.Equal(t, "canonical", domain.FidelityCanonical.String())

	a.Sequence = 2
	assert.Equal(t, "002_abcd", a.GroupName())
}

func TestOrderReport_Mismatch(t *testing.T) {
	assert.False(t, (&domain.OrderReport{ExpectedFiles: 2, Actual: 2}).Mismatch())
	assert.True(t, (&domain.OrderReport{ExpectedFiles: 2, Actual: 3}).Mismatch())
}

func TestPattern_CountCommand(t *testing.T) {
	p := &domain.Pattern{Stitches: []domain.Stitch{
		{Command: domain.CommandStitch},
		{Command: domain.CommandJump},
		{Command: domain.CommandJump},
		{Command: domain.CommandEnd},
	}}

	assert.Equal(t, 2, p.CountCommand(domain.CommandJump))
	assert.Zero(t, p.CountCommand(domain.CommandTrim))
}

func TestParseDesignName(t *testing.T) {
	tests := []struct {
		name string
		want domain.DesignName
		ok   bool
	}{
		{
			"1997_2282_front_L_Sweatshirt_1_1_item_1.pes",
			domain.DesignName{Order: 1997, Item: 2282, Position: "front", Size: "L", Garment: "Sweatshirt", TotalFaces: 1, Face: 1, ItemNum: 1},
			true,
		},
		{
			"2150_2448_sleeve_left_L_Sweatshirt_2_2_item_1.pes",
			domain.DesignName{Order: 2150, Item: 2448, Position: "sleeve_left", Size: "L", Garment: "Sweatshirt", TotalFaces: 2, Face: 2, ItemNum: 1},
			true,
		},
		{"2149_2445_item_2.pes", domain.DesignName{}, false},
		{"1997_2282_front_L_Sweatshirt_1_1_item_1.PES", domain.DesignName{}, false},
	}

	for _, tt := range tests {
		got, ok := domain.ParseDesignName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestMachineFileName(t *testing.T) {
	day := time.Date(2026, time.October, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "014A1F06j.dst", domain.MachineFileName(14, "A", 1, "front", day))
	assert.Equal(t, "002B2R06j.dst", domain.MachineFileName(2, "B", 2, "Sleeve_Right", day))
	assert.Equal(t, "003C1F06j.dst", domain.MachineFileName(3, "C", 1, "hood", day))
	assert.Equal(t, "a", domain.MonthCode(time.January))
	assert.Equal(t, "l", domain.MonthCode(time.December))
	assert.Equal(t, filepath.Join("root", "A", "dst", "x.dst"), domain.MachineFilePath("root", "A", "x.dst"))

	design, ok := domain.ParseDesignName("2150_2448_sleeve_left_L_Sweatshirt_2_2_item_1.pes")
	require.True(t, ok)
	assert.Equal(t, "2150_2448_1_1_item_1.png", design.LabelFile())
}
