package messages

// OpenCV build and copy messages.
const (
	OpenCVRunningFmt              = "Running %s"
	OpenCVGStreamerHintInstallFmt = "To play video files, install %s (and its development files)"
	OpenCVGStreamerHintEnvFmt     = "and set env variable %s to %s"
	OpenCVRetrying                = "Retrying"
	OpenCVGeneratorFailed         = "CMake returned an error, the build files may be wrong"
	OpenCVBuildCancelledFmt       = "build cancelled: %w"
	OpenCVGenerated               = "Build files have been generated"
	OpenCVContinueFmt             = "To continue build, go to %s and:"
	OpenCVHintRunCommand          = "run command"
	OpenCVHintBuildWith           = "build the project with"

	OpenCVIncludesProgress = "headers"
	OpenCVDeletingDirFmt   = "\tdelete existing dir: %s"
	OpenCVDeleteFailedFmt  = "\tdelete failed: %v"
	OpenCVAndroidStatic    = "Android libraries are statically linked so no need to move them"
)
