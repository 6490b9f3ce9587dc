package config

// Hoopfile is the on-disk shape of hoop.yaml. Pointer fields distinguish an
// absent key from an explicit zero.
type Hoopfile struct {
	Version                   string    `yaml:"version"`
	PeopleCount               *int      `yaml:"people_count"`
	PersonLabels              []string  `yaml:"person_labels"`
	PersonWeights             []float64 `yaml:"person_weights"`
	DuplicateReductionSeconds *float64  `yaml:"duplicate_reduction_seconds"`
	HashLength                *int      `yaml:"hash_length"`
	HashAlgorithm             string    `yaml:"hash_algorithm"`
	StitchesPerMinute         *float64  `yaml:"stitches_per_minute"`
	ColorChangeSeconds        *float64  `yaml:"color_change_seconds"`
	TrimSeconds               *float64  `yaml:"trim_seconds"`
	JumpSeconds               *float64  `yaml:"jump_seconds"`
	Extensions                []string  `yaml:"extensions"`
	ItemField                 *int      `yaml:"item_field"`
	Concurrency               *int      `yaml:"concurrency"`
}
