package messages

// Console layout formats used by every task.
const (
	ConsoleTaskFmt    = "Task: %s\n"
	ConsoleFieldFmt   = "- %s: %s\n"
	ConsoleSectionFmt = "-- %s --\n"
	ConsoleCopyFmt    = "copy: %s ---> %s\n"
	ConsoleHintFmt    = "\t%s %s\n"
)
