package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up in the project dir
	DefaultConfigFile = "chddl.yaml"

	// DefaultClickHouseDSN is used when the config omits an address
	DefaultClickHouseDSN = "localhost:9000"
)
