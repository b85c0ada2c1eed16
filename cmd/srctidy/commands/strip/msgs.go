package strip

// Message constants
const (
	MsgShort = "Strip or diff past leading comment blocks"
	MsgLong  = `Works with the leading comment block of source files (license headers and
the like). With two file arguments it compares the files with their leading
comments removed, padding both sides so line numbers stay comparable. With
--all it rewrites every file under a path with the leading comment removed.`
	MsgExample = `  # Compare two files ignoring their headers
  srctidy strip old/main.c new/main.c

  # Remove headers from a whole tree
  srctidy strip --all src/`
)
