package processor

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/ports"
)

// inputFileName is where the job input lands in the scratch dir.
const inputFileName = "sequence.json"

type InputHandler struct {
	sp ports.StorageProvider
}

func NewInputHandler(sp ports.StorageProvider) *InputHandler {
	return &InputHandler{sp: sp}
}

// Fetch downloads the job's input object into scratchDir and parses it.
// Both chain sequences must be present and non-empty.
func (ih *InputHandler) Fetch(ctx context.Context, job Job, scratchDir string) (*SequenceInput, error) {
	localPath := filepath.Join(scratchDir, inputFileName)

	if err := ih.download(ctx, job.Bucket, job.InputKey, localPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "inputs.read", "read downloaded input")
	}

	var seq SequenceInput
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "inputs.parse", "input is not valid JSON")
	}

	if seq.LightSequence == "" || seq.HeavySequence == "" {
		return nil, errors.Validation("input JSON must contain 'light_sequence' and 'heavy_sequence' keys")
	}

	return &seq, nil
}

func (ih *InputHandler) download(ctx context.Context, bucket, objectKey, localPath string) error {
	rc, _, _, err := ih.sp.GetObject(ctx, bucket, objectKey)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeStorage, "inputs.download",
			"download input object "+bucket+"/"+objectKey)
	}
	defer rc.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return errors.Wrap(err, "inputs.download", "create local input file")
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return errors.Wrap(err, "inputs.download", "write local input file")
	}

	return nil
}
