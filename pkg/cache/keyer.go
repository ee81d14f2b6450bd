package cache

// Keyer builds cache keys for the things sketchwall caches. Keeping
// key construction behind an interface lets deployments namespace keys
// (see ScopedKeyer) without touching call sites.
type Keyer interface {
	// BoardKey is the key for a stored board snapshot.
	BoardKey(boardID string) string

	// ArtifactKey is the key for a rendered artifact. boardHash is the
	// content hash of the board snapshot the artifact was rendered from.
	ArtifactKey(boardHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures every render option that changes output
// bytes. Two artifacts share a key only when they are byte-identical
// by construction.
type ArtifactKeyOpts struct {
	Format    string
	Style     string
	Width     float64
	Height    float64
	DarkMode  bool
	Roughness float64
	Seed      int64
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BoardKey generates a key for a board snapshot.
func (k *DefaultKeyer) BoardKey(boardID string) string {
	return "board:" + boardID
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(boardHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", boardHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
