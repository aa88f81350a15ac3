package cache

// Keyer generates cache keys for the different entry categories.
// Implementations must be deterministic: equal inputs yield equal keys.
type Keyer interface {
	// DrawingKey generates a key for an imported drawing snapshot.
	DrawingKey(name string) string

	// ContourKey generates a key for a detected contour, scoped to the
	// drawing content hash and the probe point.
	ContourKey(drawingHash string, opts ContourKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string
}

// ContourKeyOpts parameterizes contour cache keys.
type ContourKeyOpts struct {
	ProbeX float64 `json:"probe_x"`
	ProbeY float64 `json:"probe_y"`
}

// ArtifactKeyOpts parameterizes artifact cache keys. Every option that
// changes the rendered bytes must appear here, otherwise stale variants
// would be served.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	View        string `json:"view,omitempty"`
	SpaceLabels bool   `json:"space_labels,omitempty"`
	ShowHidden  bool   `json:"show_hidden,omitempty"`
	Detailed    bool   `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key components into "category:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DrawingKey generates a key for a drawing snapshot.
func (k *DefaultKeyer) DrawingKey(name string) string {
	return hashKey("drawing", name)
}

// ContourKey generates a key for a detected contour.
func (k *DefaultKeyer) ContourKey(drawingHash string, opts ContourKeyOpts) string {
	return hashKey("contour", drawingHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", drawingHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation,
// so different projects or users get separate cache namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DrawingKey generates a prefixed drawing key.
func (k *ScopedKeyer) DrawingKey(name string) string {
	return k.prefix + k.inner.DrawingKey(name)
}

// ContourKey generates a prefixed contour key.
func (k *ScopedKeyer) ContourKey(drawingHash string, opts ContourKeyOpts) string {
	return k.prefix + k.inner.ContourKey(drawingHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(drawingHash, opts)
}
