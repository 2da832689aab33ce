package consts

import "os"

const (
	// ModeFile is the standard file mode for writing formatted files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the configuration file looked up in the working directory
	DefaultConfigFile = "exprfmt.yaml"

	// DefaultMaxDepth bounds the depth of parsed trees handed to the formatter
	DefaultMaxDepth = 256

	// DefaultConcurrency is the number of files formatted in parallel
	DefaultConcurrency = 4
)
