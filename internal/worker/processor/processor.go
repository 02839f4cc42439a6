package processor

import (
	"context"
	"path/filepath"

	"tetramod/internal/config"
	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
	"tetramod/internal/ports"
	"tetramod/internal/worker/align"
	"tetramod/internal/worker/engine"
)

type Deps struct {
	SP          ports.StorageProvider
	Engine      engine.Client
	Cfg         *config.Config
	KeepScratch bool
	Log         *logger.Logger
}

type Processor struct {
	engine engine.Client
	cfg    *config.Config
	log    *logger.Logger

	inputHandler  *InputHandler
	outputHandler *OutputHandler
	scratch       *Scratch
}

func New(d Deps) *Processor {
	log := d.Log
	if log == nil {
		log = logger.NewDefault()
	}
	log = log.WithComponent("processor")

	return &Processor{
		engine:        d.Engine,
		cfg:           d.Cfg,
		log:           log,
		inputHandler:  NewInputHandler(d.SP),
		outputHandler: NewOutputHandler(d.SP),
		scratch:       NewScratch(d.KeepScratch, log),
	}
}

// Scratch exposes the scratch manager so the binary can register its
// removal as a shutdown handler.
func (p *Processor) Scratch() *Scratch {
	return p.scratch
}

// ProcessJob runs the full modeling pipeline for one job:
// download -> align -> generate -> validate -> upload.
func (p *Processor) ProcessJob(ctx context.Context, job Job) error {
	log := p.log.FromContext(ctx)

	if job.Species == "" {
		job.Species = DefaultSpecies
	}

	// Resolve the template up front so a misconfigured species fails
	// before any download happens.
	templatePDB, err := p.cfg.TemplateFor(job.Species)
	if err != nil {
		return err
	}

	scratchDir, err := p.scratch.Create()
	if err != nil {
		return errors.Wrap(err, "processor.scratch", "create scratch dir")
	}
	defer p.scratch.Remove()

	log.Debug("fetching input", "bucket", job.Bucket, "key", job.InputKey)
	seq, err := p.inputHandler.Fetch(ctx, job, scratchDir)
	if err != nil {
		return errors.Wrap(err, "processor.inputs", "failed to fetch job input")
	}
	log.Info("input downloaded")

	log.Debug("running alignment", "species", job.Species)
	res, err := p.engine.Align(ctx, engine.AlignRequest{
		LightChain: seq.LightSequence,
		HeavyChain: seq.HeavySequence,
		Species:    job.Species,
	})
	if err != nil {
		return errors.Wrap(err, "processor.align", "alignment failed")
	}

	assembly, err := align.Assemble(align.Flatten(res))
	if err != nil {
		return errors.Wrap(err, "processor.align", "incomplete alignment result")
	}
	log.Info("alignment completed")

	log.Debug("generating model", "template", templatePDB)
	err = p.engine.Generate(ctx, engine.GenerateRequest{
		Target:      assembly.TetraValent,
		Template:    assembly.ModelAntibody,
		TemplatePDB: templatePDB,
		OutputDir:   scratchDir,
	})
	if err != nil {
		return errors.Wrap(err, "processor.generate", "model generation failed")
	}

	modelPath := filepath.Join(scratchDir, ModelFileName)
	log.Info("model generated", "path", modelPath)

	if err := p.outputHandler.Publish(ctx, job, modelPath); err != nil {
		return errors.Wrap(err, "processor.outputs", "failed to publish model")
	}
	log.Info("model uploaded", "bucket", job.Bucket, "key", job.OutputKey)

	return nil
}
