package messages

// Config loading and validation messages.
const (
	ConfigReadFailedFmt        = "failed to read config %s: %w"
	ConfigInvalidFmt           = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "%s contains unrecognized keys:\n%s"
	ConfigCMakeRequiredFmt     = "%s: opencv.cmake is required"
	ConfigGeneratorRequiredFmt = "%s: opencv.windows_generator is required"
	ConfigMakeJobsInvalidFmt   = "%s: opencv.make_jobs must be at least 1 (got %d)"
	ConfigExpandPathFmt        = "failed to resolve path %s: %w"
)
