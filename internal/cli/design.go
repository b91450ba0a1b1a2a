package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/input"
	pkgio "github.com/matzehuels/gradientlab/pkg/io"
)

// designFlags describe a design on the command line. Unset flags keep the
// value from --file, or from the [design] table of the config file.
type designFlags struct {
	file  string
	kind  string
	angle int
	x, y  float64
	stops []string
	nodes []string
}

func (f *designFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "design JSON file")
	cmd.Flags().StringVarP(&f.kind, "type", "t", "", "gradient type: linear, radial, conic or mesh")
	cmd.Flags().IntVar(&f.angle, "angle", 0, "angle in degrees for linear and conic gradients (0-360)")
	cmd.Flags().Float64Var(&f.x, "x", 0, "center x in percent for radial and conic gradients")
	cmd.Flags().Float64Var(&f.y, "y", 0, "center y in percent for radial and conic gradients")
	cmd.Flags().StringArrayVar(&f.stops, "stop", nil, "color stop as #rrggbb:position (repeatable)")
	cmd.Flags().StringArrayVar(&f.nodes, "node", nil, "mesh node as #rrggbb:x:y (repeatable)")
}

// spec layers the flags that were set over base, or over the design read
// from --file.
func (f *designFlags) spec(cmd *cobra.Command, base gradient.Spec) (gradient.Spec, error) {
	spec := base.Clone()
	if f.file != "" {
		s, err := pkgio.ImportJSON(f.file)
		if err != nil {
			return gradient.Spec{}, err
		}
		spec = s
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		k, err := gradient.ParseKind(f.kind)
		if err != nil {
			return gradient.Spec{}, err
		}
		spec.Kind = k
	}
	if flags.Changed("angle") {
		spec.Angle = f.angle
	}
	if flags.Changed("x") {
		spec.Center.X = f.x
	}
	if flags.Changed("y") {
		spec.Center.Y = f.y
	}
	if len(f.stops) > 0 {
		spec.Stops = nil
		for _, s := range f.stops {
			st, err := input.ParseStop(s)
			if err != nil {
				return gradient.Spec{}, err
			}
			spec.Stops = append(spec.Stops, st)
		}
	}
	if len(f.nodes) > 0 {
		spec.Nodes = nil
		for _, s := range f.nodes {
			n, err := input.ParseNode(s)
			if err != nil {
				return gradient.Spec{}, err
			}
			spec.Nodes = append(spec.Nodes, n)
		}
	}

	spec.Normalize()
	spec.EnsureIDs()
	return spec, spec.Validate()
}
