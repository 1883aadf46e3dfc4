package messages

// Plugin tree lock messages.
const (
	LockCreateDirFailedFmt = "failed to create lock directory for %s: %w"
	LockAcquireFailedFmt   = "failed to acquire lock %s: %w"
	LockHeldFmt            = "%w: another aurdeps instance is writing to %s"
	LockReleaseFailedFmt   = "failed to release lock %s: %w"
)
