package cache

// TreeKeyOpts distinguishes compartment-tree cache entries that share the
// same accession set but were built against a different ontology
// snapshot.
type TreeKeyOpts struct {
	OntologyVersion string
}

// LayoutKeyOpts distinguishes layout cache entries that share the same
// inbound model hash but were computed under different tunable
// constants (internal/config).
type LayoutKeyOpts struct {
	ConfigHash string
}

// ArtifactKeyOpts distinguishes rendered-output cache entries (SVG, PNG,
// DOT) derived from the same layout hash.
type ArtifactKeyOpts struct {
	Format string // "svg", "png", "dot"
}

// Keyer builds cache keys for the layout engine's memoizable
// computations. Implementations must be pure functions of their inputs.
type Keyer interface {
	// TreeKey identifies a compartment-tree reduction for a given sorted
	// accession set.
	TreeKey(accessions []string, opts TreeKeyOpts) string

	// LayoutKey identifies a full layout.Compute() result for a given
	// inbound-model hash.
	LayoutKey(modelHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact derived from a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped, deterministic keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default key builder.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) TreeKey(accessions []string, opts TreeKeyOpts) string {
	return hashKey("tree", accessions, opts)
}

func (DefaultKeyer) LayoutKey(modelHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", modelHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
