package typescript

// CompilerOptions carries the subset of compiler settings this layer
// resolves from config files and hands to the language service.
type CompilerOptions struct {
	Target           string
	Module           string
	ModuleResolution string
	AllowJS          bool
	AllowNonTSExts   bool

	// VirtualExtensions are the mixed-content host extensions the
	// service may be asked about in addition to plain script files.
	VirtualExtensions []string
}

// DefaultCompilerOptions is the base option set config files merge over.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		Target:            "esnext",
		Module:            "esnext",
		ModuleResolution:  "node",
		AllowJS:           true,
		AllowNonTSExts:    true,
		VirtualExtensions: []string{".svelte", ".html"},
	}
}

// DefaultLibFileName resolves the standard library entry for the active
// target.
func DefaultLibFileName(options CompilerOptions) string {
	switch options.Target {
	case "", "es3", "es5":
		return "lib.d.ts"
	default:
		return "lib." + options.Target + ".d.ts"
	}
}
