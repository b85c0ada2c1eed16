package eol

// Message constants
const (
	MsgShort = "Normalize line endings and trailing whitespace"
	MsgLong  = `Rewrites every text file under the given path: CRLF becomes LF, trailing
whitespace is trimmed from each line, and a final newline is enforced.
Files with invalid UTF-8 content are skipped and reported.`
	MsgExample = `  # Fix the current directory
  srctidy eol

  # Fix one subtree
  srctidy eol src/`
)
