package utf

// Message constants
const (
	MsgShort = "Detect and fix non-UTF-8 text files"
	MsgLong  = `Finds text files whose content is not valid UTF-8. Without --fix, each
candidate is probed with a throwaway iconv run and files that cannot be
converted automatically are listed for manual repair; the command exits
nonzero when any are found. With --fix, every convertible file is rewritten
as UTF-8 in place.`
	MsgExample = `  # List files that need manual encoding repair
  srctidy utf src/

  # Convert everything convertible
  srctidy utf --fix src/`
)
