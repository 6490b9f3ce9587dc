package ports

import "go.trai.ch/hoop/internal/core/domain"

// SourceScanner lists the pattern files of a batch.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceScanner interface {
	// Scan walks root and returns every file with one of the extensions, in walk order.
	// itemField selects the "_"-separated name field used as logical item id.
	Scan(root string, extensions []string, itemField int) ([]domain.Source, error)

	// List returns the names of the regular files directly inside dir.
	// A missing dir yields no names.
	List(dir string) ([]string, error)
}

// GroupScanner lists the files a sort run placed into group folders.
type GroupScanner interface {
	// Groups returns every file with one of the extensions inside
	// <root>/<label>/<NNN>_<digest>/ or <root>/<label>/pes/<NNN>_<digest>/,
	// ordered by label, folder order and name. A missing root is an error.
	Groups(root string, extensions []string) ([]domain.GroupFile, error)
}

// SourceReader reads the raw bytes of a scanned file.
type SourceReader interface {
	ReadFile(path string) ([]byte, error)
}
