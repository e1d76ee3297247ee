package udd

var (
	// Debug gates DebugLog/DebugLogOnce output at runtime. Off by default;
	// hot paths (grid build, traversal) pay only a bool check when it is.
	Debug = false
)
