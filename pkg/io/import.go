package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// design mirrors gradient.Spec with optional scalars so omitted fields can
// be told apart from zeros.
type design struct {
	Kind   *string         `json:"type"`
	Angle  *int            `json:"angle"`
	Center *gradient.Point `json:"center"`
	Stops  []gradient.Stop `json:"stops"`
	Nodes  []gradient.Node `json:"nodes"`
}

// ReadJSON decodes a design from r. It does not close r.
func ReadJSON(r io.Reader) (gradient.Spec, error) {
	var d design
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		if errors.GetCode(err) != "" {
			return gradient.Spec{}, err
		}
		return gradient.Spec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode design")
	}

	def := gradient.Default()
	spec := gradient.Spec{
		Kind:   def.Kind,
		Angle:  def.Angle,
		Center: def.Center,
		Stops:  d.Stops,
		Nodes:  d.Nodes,
	}
	if d.Kind != nil {
		k, err := gradient.ParseKind(*d.Kind)
		if err != nil {
			return gradient.Spec{}, err
		}
		spec.Kind = k
	}
	if d.Angle != nil {
		spec.Angle = *d.Angle
	}
	if d.Center != nil {
		spec.Center = *d.Center
	}
	// Omitted lists take the starter stops and nodes. An explicit [] is
	// kept and validated.
	if d.Stops == nil {
		spec.Stops = def.Stops
	}
	if d.Nodes == nil {
		spec.Nodes = def.Nodes
	}

	spec.Normalize()
	spec.EnsureIDs()
	if err := spec.Validate(); err != nil {
		return gradient.Spec{}, err
	}
	return spec, nil
}

// ImportJSON reads the design file at path.
func ImportJSON(path string) (gradient.Spec, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return gradient.Spec{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return gradient.Spec{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "design file %s", path)
	}
	if err != nil {
		return gradient.Spec{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	spec, err := ReadJSON(f)
	if err != nil {
		return gradient.Spec{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return spec, nil
}
