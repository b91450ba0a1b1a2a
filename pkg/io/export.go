package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// WriteJSON encodes spec as indented JSON in the format ReadJSON accepts.
func WriteJSON(w io.Writer, spec gradient.Spec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(spec)
}
