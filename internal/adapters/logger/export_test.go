package logger

// Exported for white-box tests.
var (
	CollectChain = collectChain
	FormatChain  = formatChain
)
