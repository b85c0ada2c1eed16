package exe

// Message constants
const (
	MsgShort = "Clear wrongly set executable bits"
	MsgLong  = `Finds files carrying executable permission bits and clears the bits on
files that should not have them. Classification uses the configured
exe/nonexe path patterns and the known suffix and name tables; with --ref,
a reference checkout decides instead. Files no rule covers are listed and
nothing is changed until the config covers them.`
	MsgExample = `  # Fix the current directory
  srctidy exe

  # Use a pristine checkout as reference
  srctidy exe --ref ../pristine src/`
)
