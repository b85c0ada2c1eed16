package stat

// Message constants
const (
	MsgShort = "Show file type statistics for a tree"
	MsgLong  = `Enumerates every regular file under the given path, probes each one with
file --mime, and prints the per-MIME-type counts plus the text/rest split.`
	MsgExample = `  # Statistics for the current directory
  srctidy stat

  # Statistics for a subtree
  srctidy stat src/`
)
