package processor

import (
	"context"
	"os"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/ports"
	"tetramod/internal/worker/pdb"
)

// pdbContentType is the conventional MIME type for PDB structure files.
const pdbContentType = "chemical/x-pdb"

type OutputHandler struct {
	sp ports.StorageProvider
}

func NewOutputHandler(sp ports.StorageProvider) *OutputHandler {
	return &OutputHandler{sp: sp}
}

// Publish validates the generated model file and uploads it to the
// job's output key.
func (oh *OutputHandler) Publish(ctx context.Context, job Job, modelPath string) error {
	if err := pdb.Validate(modelPath); err != nil {
		return err
	}

	st, err := os.Stat(modelPath)
	if err != nil {
		return errors.Wrap(err, "outputs.publish", "stat model file")
	}

	f, err := os.Open(modelPath)
	if err != nil {
		return errors.Wrap(err, "outputs.publish", "open model file")
	}
	defer f.Close()

	_, err = oh.sp.PutObject(ctx, ports.PutObjectInput{
		Bucket:      job.Bucket,
		ObjectKey:   job.OutputKey,
		ContentType: pdbContentType,
		Reader:      f,
		Size:        st.Size(),
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeStorage, "outputs.publish",
			"upload model to "+job.Bucket+"/"+job.OutputKey)
	}

	return nil
}
