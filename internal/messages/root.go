package messages

// Plugin root discovery messages.
const (
	RootResolvePathFmt  = "failed to resolve %s: %w"
	RootMarkerNotDirFmt = "%s exists but is not a directory"
	RootStatFailedFmt   = "failed to stat %s: %w"
	RootNotFoundFmt     = "no plugin root found from %s (looked for a ThirdParty directory); pass --plugin-root or set AURDEPS_PLUGIN_ROOT"
)
