// Package align turns the engine's MSA records into the alignment
// strings the model-generation routine expects.
package align

import (
	"fmt"
	"strings"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/worker/engine"
)

// Assembly holds the two alignment strings for model generation: the
// tetravalent target and the template antibody, each as slash-joined
// heavy/heavy/light/light chains.
type Assembly struct {
	TetraValent   string
	ModelAntibody string
}

// Flatten collapses grouped MSA records into a flat map keyed
// "<group>_<record>", upper-casing the residues.
func Flatten(res *engine.AlignResult) map[string]string {
	seqs := make(map[string]string)
	for group, records := range res.Records {
		for _, rec := range records {
			seqs[fmt.Sprintf("%s_%s", group, rec.Name)] = strings.ToUpper(rec.Seq)
		}
	}
	return seqs
}

// Assemble builds the tetravalent target and model-antibody strings from
// flattened records. All four chain records must be present.
func Assemble(seqs map[string]string) (Assembly, error) {
	heavyTarget, err := lookup(seqs, engine.GroupHeavy, engine.RecordTarget)
	if err != nil {
		return Assembly{}, err
	}
	lightTarget, err := lookup(seqs, engine.GroupLight, engine.RecordTarget)
	if err != nil {
		return Assembly{}, err
	}
	heavyModel, err := lookup(seqs, engine.GroupHeavy, engine.RecordModel)
	if err != nil {
		return Assembly{}, err
	}
	lightModel, err := lookup(seqs, engine.GroupLight, engine.RecordModel)
	if err != nil {
		return Assembly{}, err
	}

	return Assembly{
		TetraValent:   chains(heavyTarget, lightTarget),
		ModelAntibody: chains(heavyModel, lightModel),
	}, nil
}

// chains doubles each chain: the tetravalent construct carries two
// copies of the heavy chain followed by two of the light chain.
func chains(heavy, light string) string {
	return fmt.Sprintf("%s/%s/%s/%s", heavy, heavy, light, light)
}

func lookup(seqs map[string]string, group, record string) (string, error) {
	key := fmt.Sprintf("%s_%s", group, record)
	seq, ok := seqs[key]
	if !ok || seq == "" {
		return "", errors.Validationf("missing key in sequence data: %s", key)
	}
	return seq, nil
}
