package domain

// Unassigned marks an artifact that has not been given a worker yet.
const Unassigned = -1

// Fidelity records how an artifact's digest was derived.
type Fidelity uint8

const (
	// FidelityCanonical means the digest came from the canonical pattern encoding.
	FidelityCanonical Fidelity = iota
	// FidelityRaw means the digest came from the raw file bytes. Any byte-level
	// difference, including inert metadata, yields a different identity.
	FidelityRaw
)

// String returns the report name of the fidelity.
func (f Fidelity) String() string {
	if f == FidelityRaw {
		return "raw"
	}
	return "canonical"
}

// Source is one scanned input file.
type Source struct {
	Path string
	Name string
	// ItemID is empty when the name carries no logical item id.
	ItemID string
}

// Analysis is the per-file result of the parallel phase.
type Analysis struct {
	Digest   string   `cbor:"1,keyasint"`
	Seconds  float64  `cbor:"2,keyasint"`
	Fidelity Fidelity `cbor:"3,keyasint"`
}

// Artifact is one production file moving through the plan.
type Artifact struct {
	Path     string
	Name     string
	ItemID   string
	Digest   string
	Seconds  float64
	Fidelity Fidelity
	// Worker is set by the balancer. It is Unassigned before that.
	Worker int
	// Sequence is set by the orderer, scoped to (Worker, Digest). Zero before that.
	Sequence int
}

// NewArtifact combines a scanned source with its analysis.
func NewArtifact(src Source, a Analysis) Artifact {
	return Artifact{
		Path:     src.Path,
		Name:     src.Name,
		ItemID:   src.ItemID,
		Digest:   a.Digest,
		Seconds:  a.Seconds,
		Fidelity: a.Fidelity,
		Worker:   Unassigned,
	}
}

// GroupName returns the folder name of the artifact's (worker, digest) group.
func (a *Artifact) GroupName() string {
	return GroupName(a.Sequence, a.Digest)
}

// Cluster is an ascending list of artifact indices that must go to one worker.
type Cluster []int
