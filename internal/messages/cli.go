package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "aurdeps"
	// RootShort is the short description for the root command.
	RootShort             = "Build and install the Augmented Unreality native dependencies"
	RootLong              = "aurdeps generates OpenCV build files and copies OpenCV and GStreamer headers and\nbinaries into the plugin's include/ and Binaries/<Platform> directories."
	RootVersionFlag       = "Print version and exit"
	RootFlagPluginRootFmt = "Plugin root containing ThirdParty/ (default: $%s, else searched upward from the working directory)"
	RootFlagConfig        = "Config file (default: <plugin-root>/ThirdParty/aurdeps.toml)"
	RootFlagQuiet         = "Only print warnings and errors"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagPlatformFmt    = "Target platform: %s (default: this host)"
	FlagBoolInvalidFmt = "expected true or false, got %q"

	GStreamerUse          = "gstreamer"
	GStreamerShort        = "Install GStreamer runtime libraries"
	GStreamerInstallUse   = "install"
	GStreamerInstallShort = "Copy the GStreamer DLLs the plugin loads into Binaries/<Platform>"
	GStreamerFlagLibs     = "Copy the libraries"
	GStreamerFlagRootFmt  = "GStreamer installation root (default: $%s, else gstreamer.root from the config, else .)"

	OpenCVUse               = "opencv"
	OpenCVShort             = "Build and install OpenCV"
	OpenCVBuildUse          = "build [PLATFORM]"
	OpenCVBuildShort        = "Generate OpenCV build files with CMake"
	OpenCVBuildLongFmt      = "Generate OpenCV build files with CMake.\n\nPLATFORM is one of %s and defaults to this host.\nAfter the files are generated, follow the printed instructions to compile and install,\nthen run 'aurdeps opencv copy'."
	OpenCVFlagBuildDir      = "Directory that receives the build files"
	OpenCVCopyUse           = "copy [PLATFORM]"
	OpenCVCopyShort         = "Copy the OpenCV headers and binaries after a build"
	OpenCVCopyLongFmt       = "Copy the OpenCV headers and binaries after a build.\n\nPLATFORM is one of %s and defaults to this host."
	OpenCVFlagCopyIncludes  = "Copy the header files"
	OpenCVFlagCopyBinaries  = "Copy the compiled modules"
	OpenCVInstallUse        = "install"
	OpenCVInstallShort      = "Copy OpenCV 3.1 output from build/<Platform> into the plugin"
	OpenCVInstallDeprecated = "use 'aurdeps opencv copy' after 'aurdeps opencv build' instead"
	OpenCVFlagIncludeFiles  = "Copy the header files"
	OpenCVFlagLibs          = "Copy the libraries"

	ModulesUse               = "modules [PLATFORM]"
	ModulesShort             = "List the libraries installed for a platform"
	ModulesTitleFmt          = "%s (Binaries/%s)"
	ModulesHeaderComponent   = "Component"
	ModulesHeaderModule      = "Module"
	ModulesHeaderSource      = "Source"
	ModulesHeaderDestination = "Destination"
	ModulesStatic            = "statically linked"

	VerifyUse   = "verify [PLATFORM]"
	VerifyShort = "Compare Binaries/<Platform> with the expected libraries"
)
