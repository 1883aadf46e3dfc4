package messages

// Doctor command messages.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that the generator, sources, and cache settings are in place"

	DoctorHealthCheckFmt = "Checking plugin tree %s...\n"

	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameCMake     = "CMake"
	DoctorCheckNameSources   = "Sources"
	DoctorCheckNameCache     = "Cache"
	DoctorCheckNameGStreamer = "GStreamer"
	DoctorCheckNameBinaries  = "Binaries"

	DoctorConfigLoadFailedFmt       = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend       = "Check that ThirdParty/aurdeps.toml is readable and valid TOML."
	DoctorConfigValidationRecommend = "Fix the reported keys in ThirdParty/aurdeps.toml, or delete the file to use defaults."
	DoctorConfigLoadedFmt           = "Loaded %s"
	DoctorConfigDefaultsFmt         = "No config at %s, using defaults"

	DoctorCMakeFoundFmt         = "Found %s"
	DoctorCMakeMissingFmt       = "%s was not found on PATH"
	DoctorCMakeMissingRecommend = "Install CMake, or set opencv.cmake in ThirdParty/aurdeps.toml to its full path."

	DoctorSourcesFoundFmt         = "OpenCV sources present at %s"
	DoctorSourcesMissingFmt       = "OpenCV sources missing at %s"
	DoctorSourcesMissingRecommend = "Check out the OpenCV fork into ThirdParty/opencv/src/opencv."

	DoctorCacheFoundFmt            = "Found %s"
	DoctorCacheMissingFmt          = "Missing %s"
	DoctorCacheMissingRecommendFmt = "Add the predefined cache file before running 'aurdeps opencv build %s'."

	DoctorGStreamerFoundFmt            = "Found %s"
	DoctorGStreamerMissingFmt          = "No GStreamer runtime at %s"
	DoctorGStreamerMissingRecommendFmt = "Install GStreamer and set %s, or set gstreamer.root in ThirdParty/aurdeps.toml. Only needed for video playback."

	DoctorBinariesMismatchFmt  = "%s differs from the catalog (missing %d, unexpected %d)"
	DoctorBinariesRecommendFmt = "Run 'aurdeps verify %s' for details."

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorSuccessSummary = "All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorRecommendationIndent = "         "
)
