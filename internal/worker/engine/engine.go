// Package engine speaks to the vendored modeling engine. The MSA and
// comparative-modeling computations themselves live in the engine; this
// package owns only the request/response contract.
package engine

import "context"

// Chain record names produced by the engine's MSA step.
const (
	RecordTarget = "TargetSeq"
	RecordModel  = "ModelSeq"
)

// Chain group keys produced by the engine's MSA step.
const (
	GroupHeavy = "heavyChain"
	GroupLight = "lightChain"
)

// AlignRequest asks the engine to number and align the CDR chains.
type AlignRequest struct {
	LightChain string `json:"light_chain"`
	HeavyChain string `json:"heavy_chain"`
	Species    string `json:"species"`
}

// Record is one named sequence in an alignment group.
type Record struct {
	Name string `json:"name"`
	Seq  string `json:"seq"`
}

// AlignResult groups records by chain (heavyChain, lightChain).
type AlignResult struct {
	Records map[string][]Record `json:"records"`
}

// GenerateRequest asks the engine to build a comparative model.
type GenerateRequest struct {
	// Target and Template are slash-joined chain strings in the
	// engine's alignment format.
	Target   string `json:"target"`
	Template string `json:"template"`
	// TemplatePDB is the species template structure file.
	TemplatePDB string `json:"template_pdb"`
	// OutputDir is where the engine writes model files.
	OutputDir string `json:"output_dir"`
}

type Client interface {
	Align(ctx context.Context, req AlignRequest) (*AlignResult, error)
	Generate(ctx context.Context, req GenerateRequest) error
}
