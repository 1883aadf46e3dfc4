package messages

// Binaries verification messages.
const (
	VerifyReadDirFailedFmt = "failed to read %s: %w"
	VerifyExpectedLabel    = "expected"
	VerifyMismatchErr      = "binaries directory does not match the catalog"
	VerifyMatchFmt         = "%s matches the catalog (%d files)"
	VerifyMissingFmt       = "missing: %d, unexpected: %d"
)
