package messages

// File copy errors.
const (
	CopySourceMissingFmt       = "%w at %s"
	CopySourceIsDirFmt         = "expected a file but found a directory at %s"
	CopyStatFailedFmt          = "failed to stat %s: %w"
	CopyOpenFailedFmt          = "failed to open %s: %w"
	CopyCreateFailedFmt        = "failed to create %s: %w"
	CopyWriteFailedFmt         = "failed to copy %s to %s: %w"
	CopyCreateDirFailedFmt     = "failed to create directory %s: %w"
	CopyRemoveLinkFailedFmt    = "failed to remove existing link %s: %w"
	CopySymlinkFailedFmt       = "failed to link %s -> %s: %w"
	CopyReadLinkFailedFmt      = "failed to read link %s: %w"
	CopyRemoveTreeFailedFmt    = "failed to remove %s: %w"
	CopyWalkFailedFmt          = "failed to walk %s: %w"
	CopyDestinationSurvivedFmt = "%s still exists and was not replaced: %w"
)
