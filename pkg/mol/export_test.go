package mol

// Exported only for testing.
var (
	SplitLines   = splitLines
	SplitProgram = splitProgram
	Col          = col
	Atoi         = atoi
)
