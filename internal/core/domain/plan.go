package domain

import "fmt"

// WorkerSummary aggregates one worker's share of the plan.
type WorkerSummary struct {
	Label           string
	FileCount       int
	TotalSeconds    float64
	AdjustedSeconds float64
	UniqueItems     int
	UniqueDigests   int
}

// Plan is the result of deduplicating, balancing and ordering one batch.
type Plan struct {
	// Artifacts are in scan order.
	Artifacts []Artifact
	Clusters  []Cluster
	// Loads holds the adjusted bucket total of every worker after balancing.
	Loads     []float64
	Summaries []WorkerSummary
	Labels    []string
	// Skipped lists sources that could not be read.
	Skipped []string
}

// Empty reports whether the plan contains no artifacts.
func (p *Plan) Empty() bool {
	return len(p.Artifacts) == 0
}

// Label returns the label of the artifact's worker.
func (p *Plan) Label(a *Artifact) string {
	if a.Worker >= 0 && a.Worker < len(p.Labels) {
		return p.Labels[a.Worker]
	}
	return fmt.Sprintf("Person_%d", a.Worker+1)
}

// Summarize computes per-worker summaries. The adjusted figure applies the duplicate
// discount over each worker's whole file set, not per cluster.
func Summarize(artifacts []Artifact, labels []string, duplicateReduction float64) []WorkerSummary {
	summaries := make([]WorkerSummary, len(labels))
	items := make([]map[string]struct{}, len(labels))
	digests := make([]map[string]int, len(labels))
	for i, label := range labels {
		summaries[i].Label = label
		items[i] = make(map[string]struct{})
		digests[i] = make(map[string]int)
	}

	for i := range artifacts {
		a := &artifacts[i]
		if a.Worker < 0 || a.Worker >= len(labels) {
			continue
		}
		s := &summaries[a.Worker]
		s.FileCount++
		s.TotalSeconds += a.Seconds
		digests[a.Worker][a.Digest]++
		if a.ItemID != "" {
			items[a.Worker][a.ItemID] = struct{}{}
		}
	}

	for i := range summaries {
		reduction := 0.0
		for _, count := range digests[i] {
			if count > 1 {
				reduction += float64(count-1) * duplicateReduction
			}
		}
		summaries[i].AdjustedSeconds = max(0, summaries[i].TotalSeconds-reduction)
		summaries[i].UniqueItems = len(items[i])
		summaries[i].UniqueDigests = len(digests[i])
	}
	return summaries
}

// Placement records where the placer put one artifact.
type Placement struct {
	Index       int
	Destination string
	GroupName   string
}
