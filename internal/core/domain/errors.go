package domain

import "go.trai.ch/zerr"

var (
	// ErrPatternUnsupported is returned when no reader recognizes the pattern bytes.
	ErrPatternUnsupported = zerr.New("unsupported pattern format")

	// ErrPatternTruncated is returned when a pattern ends before its declared structure does.
	ErrPatternTruncated = zerr.New("pattern data truncated")

	// ErrPatternEncodeFailed is returned when a pattern cannot be written in a machine format.
	ErrPatternEncodeFailed = zerr.New("failed to encode pattern")

	// ErrSourceNotFound is returned when the source directory does not exist.
	ErrSourceNotFound = zerr.New("source directory does not exist")

	// ErrSourceReadFailed is returned when a scanned file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrScanFailed is returned when walking the source tree fails.
	ErrScanFailed = zerr.New("failed to scan source directory")

	// ErrInvalidPeopleCount is returned when fewer than one worker is configured.
	ErrInvalidPeopleCount = zerr.New("people count must be at least 1")

	// ErrInvalidPersonWeight is returned when a worker weight is zero or negative.
	ErrInvalidPersonWeight = zerr.New("person weights must be positive")

	// ErrInvalidHashLength is returned when the digest truncation length is out of range.
	ErrInvalidHashLength = zerr.New("hash length must be between 1 and 64")

	// ErrInvalidHashAlgorithm is returned when the digest algorithm is not known.
	ErrInvalidHashAlgorithm = zerr.New("invalid hash algorithm, expected 'sha256' or 'blake3'")

	// ErrInvalidCostParameter is returned when a cost model parameter is out of range.
	ErrInvalidCostParameter = zerr.New("invalid cost model parameter")

	// ErrInvalidDuplicateReduction is returned when the duplicate discount is negative.
	ErrInvalidDuplicateReduction = zerr.New("duplicate reduction must not be negative")

	// ErrInvalidItemField is returned when the item id field index is negative.
	ErrInvalidItemField = zerr.New("item field index must not be negative")

	// ErrUnassignedArtifact is returned when balancing leaves an artifact without a worker.
	// It indicates a clustering bug and is never recoverable.
	ErrUnassignedArtifact = zerr.New("artifact was not assigned to any worker")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when the digest cache cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read digest cache")

	// ErrStoreDecodeFailed is returned when the digest cache cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode digest cache")

	// ErrStoreEncodeFailed is returned when the digest cache cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode digest cache")

	// ErrStoreWriteFailed is returned when the digest cache cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write digest cache")

	// ErrPlacementFailed is returned when an artifact cannot be moved or copied into its group folder.
	ErrPlacementFailed = zerr.New("failed to place artifact")

	// ErrExportFailed is returned when one or more machine files could not be written.
	ErrExportFailed = zerr.New("failed to export machine files")

	// ErrReportWriteFailed is returned when a report file cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrWatchFailed is returned when the source tree cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)
