package messages

// Platform selection messages.
const (
	PlatformUnknownFmt    = "unknown platform %q"
	PlatformNotAllowedFmt = "platform %q is not supported here; choose one of: %s"
	PlatformFallbackFmt   = "Warning: unrecognized host platform, using %s"
)
