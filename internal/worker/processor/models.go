package processor

// Job is one modeling run, fully described by the three positional
// arguments the bridge passes through plus the species default.
type Job struct {
	InputKey  string
	OutputKey string
	Bucket    string
	Species   string
}

// SequenceInput is the payload of the job's input object.
type SequenceInput struct {
	LightSequence string `json:"light_sequence"`
	HeavySequence string `json:"heavy_sequence"`
}

// ModelFileName is the file the engine's automodel routine writes for
// the first (and only) generated model.
const ModelFileName = "model_1.pdb"

// DefaultSpecies is used when the job does not carry one.
const DefaultSpecies = "human"
