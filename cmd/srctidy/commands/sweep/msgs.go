package sweep

// Message constants
const (
	MsgShort = "Remove generated directories from a tree"
	MsgLong  = `Walks the tree and removes every directory with a matching base name,
__pycache__ by default. Matched directories are removed whole and not
descended into.`
	MsgExample = `  # Drop python bytecode caches
  srctidy sweep

  # Preview first
  srctidy sweep --dry-run src/

  # Other generated dirs too
  srctidy sweep --name __pycache__ --name .mypy_cache`
)
