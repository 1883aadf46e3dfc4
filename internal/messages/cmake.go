package messages

// Build files generator messages.
const (
	CMakeRunFailedFmt = "%s failed: %w"
)
