package domain

// OrderReport is the completeness verdict for one order id in one folder.
type OrderReport struct {
	Folder        string
	Order         string
	ExpectedItems int
	FacesPerItem  int
	ExpectedFiles int
	Actual        int
	SubIDs        []int
	// MissingSubIDs are guessed from the numeric range starting at the smallest sub id.
	MissingSubIDs []int
	// MissingFaces maps a sub id to the face indices that were not found.
	MissingFaces map[int][]int
	Files        []string
}

// Mismatch reports whether the folder holds more or fewer files than the names announce.
func (r *OrderReport) Mismatch() bool {
	return r.Actual != r.ExpectedFiles
}
