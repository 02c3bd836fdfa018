package runtime

// Build vars, set with -ldflags "-X github.com/saltyorg/ttygreet/internal/runtime.Version=..."
var (
	Version   string
	GitCommit string
)
