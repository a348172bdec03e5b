package outline

import "fmt"

// Engine is the pipeline entry point: profile, cluster, rank, assemble.
// An Engine is immutable after construction and safe for concurrent use;
// no state crosses document boundaries.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Extract runs the full pipeline over an already-extracted document and
// returns its outline. The computation is bounded and deterministic:
// identical input yields an identical outline. A document without
// extractable runs returns ErrNoRuns, which the caller recovers from by
// emitting a minimal outline.
func (e *Engine) Extract(doc Document) (*Outline, error) {
	profile, err := BuildProfile(doc, e.cfg)
	if err != nil {
		return nil, err
	}

	clusters, sigToCluster := ClusterStyles(profile, e.cfg)
	ranking := RankClusters(doc, profile, clusters, sigToCluster, e.cfg)
	return AssembleOutline(doc, profile, sigToCluster, ranking, e.cfg), nil
}
