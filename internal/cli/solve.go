package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cycletsp/builder"
	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/tsp"
)

var fusionKinds = []tsp.FusionKind{
	tsp.TwoCycles,
	tsp.TwoCyclesWithRoot,
	tsp.ThreeCycles,
	tsp.ThreeCyclesWithRoot,
	tsp.Subtree,
}

// report is the YAML form of a solved instance.
type report struct {
	Name       string         `yaml:"name"`
	Vertices   int            `yaml:"vertices"`
	Tour       []int          `yaml:"tour,flow"`
	Cost       int            `yaml:"cost"`
	HeavyEdges int            `yaml:"heavy_edges"`
	LowerBound int            `yaml:"lower_bound"`
	Stats      map[string]int `yaml:"stats"`
}

func newSolveCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance file",
		Args:  cobra.NoArgs,
		RunE:  newSolveAction(input),
	}
	cmd.Flags().StringVarP(&input.instancePath, "file", "f", "", "path to instance YAML file")
	cmd.Flags().BoolVar(&input.check, "check", false, "verify invariants after every fusion and validate the tour")
	cmd.Flags().StringVar(&input.format, "format", "text", "output format: text or yaml")
	cmd.Flags().IntVar(&input.start, "start", 0, "vertex the printed tour starts at")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSolveAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.format != "text" && input.format != "yaml" {
			return errors.Errorf("unknown format %q", input.format)
		}
		logger := input.newLogger(cmd.ErrOrStderr())

		logger.Debugf("Reading instance from %s", input.instancePath)
		in, err := builder.LoadFile(input.instancePath)
		if err != nil {
			return errors.Wrapf(err, "failed to load %s", input.instancePath)
		}
		g, err := in.Graph()
		if err != nil {
			return errors.Wrapf(err, "instance %q", in.Name)
		}

		res, err := tsp.ApproximateGraph(g, in.Cover,
			tsp.WithLogger(logger.WithField("instance", in.Name)),
			tsp.WithInvariantChecks(input.check),
		)
		if err != nil {
			return errors.Wrapf(err, "failed to solve %q", in.Name)
		}
		if input.check {
			if err = tsp.ValidateTour(g, res.Tour); err != nil {
				return errors.Wrap(err, "tour check")
			}
		}
		if res.Tour, err = tsp.RotateTourToStart(res.Tour, input.start); err != nil {
			return errors.Wrap(err, "failed to rotate tour")
		}
		logger.WithFields(log.Fields{
			"cost":  res.Cost,
			"heavy": res.HeavyEdges,
		}).Info("solved")

		out := newReport(in, g, res)
		if input.format == "yaml" {
			return writeYAML(cmd.OutOrStdout(), out)
		}

		return writeText(cmd.OutOrStdout(), in, out)
	}
}

func newReport(in *builder.Instance, g *core.Graph, res tsp.Result) report {
	stats := map[string]int{
		"initial_cycles": res.Stats.InitialCycles,
		"initial_bad":    res.Stats.InitialBad,
		"collapsed":      res.Stats.Collapsed,
		"absorbed":       res.Stats.Absorbed,
		"matched":        res.Stats.Matched,
		"components":     res.Stats.Components,
		"terminal":       res.Stats.Terminal,
	}
	for _, k := range fusionKinds {
		if n := res.Stats.Fusions[k]; n > 0 {
			stats[k.String()] = n
		}
	}

	return report{
		Name:       in.Name,
		Vertices:   g.Order(),
		Tour:       res.Tour,
		Cost:       res.Cost,
		HeavyEdges: res.HeavyEdges,
		LowerBound: tsp.LowerBound(g),
		Stats:      stats,
	}
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return enc.Close()
}

func writeText(w io.Writer, in *builder.Instance, r report) error {
	_, err := fmt.Fprintf(w,
		"instance: %s (%d vertices, %d cycles, %d bad)\ntour: %s\ncost: %d (lower bound %d), heavy edges: %d\n",
		r.Name, r.Vertices, len(in.Cover), r.Stats["initial_bad"],
		tsp.DebugString(r.Tour),
		r.Cost, r.LowerBound, r.HeavyEdges,
	)
	if err != nil {
		return err
	}
	for _, k := range fusionKinds {
		if n := r.Stats[k.String()]; n > 0 {
			if _, err = fmt.Fprintf(w, "  %s: %d\n", k, n); err != nil {
				return err
			}
		}
	}

	return nil
}
