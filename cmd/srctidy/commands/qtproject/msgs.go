package qtproject

// Message constants
const (
	MsgShort = "Generate QtCreator generic project files"
	MsgLong  = `Reads a YAML project manifest and writes the QtCreator generic project
files: .creator, .cflags, .cxxflags, .config, .includes, and .files.
Variant names given as arguments enable the variant-gated manifest
sections. A local overlay file can map $placeholders to machine-specific
paths and override manifest sections.`
	MsgExample = `  # Generate with the debug variant enabled
  srctidy qtproject --config project.yaml --root-dir . --project-dir .qtc \
      --local ~/.config/myproject-local.yaml debug`
)
