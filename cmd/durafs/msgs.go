package durafs

// Message constants for command help text
const (
	MsgRootShort = "Resilient local file operations"
	MsgRootLong  = `durafs performs destructive file operations (delete, copy, replace,
atomic overwrite) against an unreliable host filesystem: locked files,
transient antivirus locks, read-only attributes, concurrent writers.

Operations retry transient failures and never leave a target truncated
or partially written on a reported success.`

	MsgCopyShort = "Copy a file or directory tree, retrying transient failures"
	MsgRmShort   = "Delete a file or directory, retrying transient failures"
	MsgRmLong    = `Delete a file or directory. Missing paths are treated as already
deleted. A read-only attribute blocking deletion is cleared after the
first failed attempt. With --silent, exhausting all attempts returns
quietly instead of failing.`
	MsgReplaceShort = "Write content to a file only when it differs"
	MsgReplaceLong  = `Write content to a file, comparing digests first: identical content
leaves the target untouched. Reads from a source file, or from stdin
when no source is given. Prints the outcome (created, updated,
unchanged).`
	MsgSwapShort = "Atomically promote a staged replacement over a file"
	MsgSwapLong  = `Replace ORIGINAL with REPLACEMENT using the host's atomic file
replace, then delete the replacement and the transient backup. At
every instant the original path resolves to either the old or the new
content.`
	MsgMktempShort    = "Allocate a temporary file or directory"
	MsgDfShort        = "Check free space on the volume containing a path"
	MsgLsShort        = "List files or directories, optionally filtered by glob patterns"
	MsgGenConfigShort = "Print a default configuration file"
	MsgVersionShort   = "Print version information"
)
