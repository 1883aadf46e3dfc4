package messages

// GStreamer installer messages.
const (
	GStreamerNoLinuxBinaries  = "No linux binaries so far"
	GStreamerReadBinFailedFmt = "failed to list %s: %w"
	GStreamerNothingFoundFmt  = "Warning: no GStreamer libraries found in %s"
)
