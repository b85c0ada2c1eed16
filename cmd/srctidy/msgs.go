package srctidy

// Message constants for the root command
const (
	MsgRootShort = "Source tree maintenance toolbox"
	MsgRootLong  = `srctidy bundles the recurring maintenance chores of a source tree:
file type statistics, UTF-8 encoding repair, EOL and trailing whitespace
normalization, executable bit fixes, leading comment stripping, compiler
argument reports, QtCreator project generation, and git author rewrites.

Path patterns in the configuration come in three forms:
  some/subpath/foo    exact file
  some/subpath/foo/   everything under the directory
  some/**/*.cpp       glob`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
