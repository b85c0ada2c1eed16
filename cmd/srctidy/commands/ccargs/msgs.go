package ccargs

// Message constants
const (
	MsgShort = "Summarize a compiler invocation's arguments"
	MsgLong  = `Parses a compiler argument list (everything after --) into deduplicated
include paths, system include paths, macro definitions, and leftover
options. Useful for turning a build log line into IDE project settings.`
	MsgExample = `  # Plain report
  srctidy ccargs -- -Iinclude -DNDEBUG -O2 main.c

  # IDE-ready lists, includes relative to the build dir
  srctidy ccargs --ide --curdir /home/me/build -- @args`
)
