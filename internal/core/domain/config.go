package domain

// Layout describes the file naming conventions of a run.
type Layout struct {
	// SourceExt classifies enumerated files, e.g. ".java".
	SourceExt string
	// ArtifactExt names compiled artifacts, e.g. ".class".
	ArtifactExt string
	// NestedSep separates a stem from a nested type suffix, e.g. "$".
	NestedSep string
}

// DefaultLayout is the Java convention the tool was built for.
func DefaultLayout() Layout {
	return Layout{SourceExt: ".java", ArtifactExt: ".class", NestedSep: "$"}
}

// HeaderPolicy selects how a malformed artifact header is handled.
type HeaderPolicy string

const (
	// HeaderStrict aborts the run before any artifact copy.
	HeaderStrict HeaderPolicy = "strict"
	// HeaderLenient warns, counts the artifact under the unknown label
	// and keeps copying.
	HeaderLenient HeaderPolicy = "lenient"
)

// RunConfig is the effective configuration of one run.
type RunConfig struct {
	Layout       Layout
	Ignores      []string
	HeaderPolicy HeaderPolicy
	// ResolverWorkers bounds the resolution fan-out. 1 keeps the run
	// fully sequential.
	ResolverWorkers int
}

// DefaultRunConfig returns the configuration used when no config file
// is present.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Layout:          DefaultLayout(),
		HeaderPolicy:    HeaderStrict,
		ResolverWorkers: 1,
	}
}
