package cli

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycletsp/builder"
	"github.com/katalvlaran/cycletsp/tsp"
)

func newBenchCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve generated instances and report cost against the lower bound",
		Args:  cobra.NoArgs,
		RunE:  newBenchAction(input),
	}
	addPlantedFlags(cmd.Flags(), input)
	cmd.Flags().IntVar(&input.runs, "runs", 10, "number of instances")

	return cmd
}

func newBenchAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.runs < 1 {
			return errors.Errorf("--runs must be at least 1, got %d", input.runs)
		}
		logger := input.newLogger(cmd.ErrOrStderr())

		var (
			sumRatio, worst float64
			sumHeavy        int
		)
		for run := 0; run < input.runs; run++ {
			seed := builder.DeriveSeed(input.seed, uint64(run))
			in, err := input.planted(seed)
			if err != nil {
				return err
			}
			g, err := in.Graph()
			if err != nil {
				return errors.Wrapf(err, "run %d", run)
			}
			res, err := tsp.ApproximateGraph(g, in.Cover)
			if err != nil {
				return errors.Wrapf(err, "run %d (seed %d)", run, seed)
			}

			ratio := 1.0
			if lb := tsp.LowerBound(g); lb > 0 {
				ratio = float64(res.Cost) / float64(lb)
			}
			sumRatio += ratio
			sumHeavy += res.HeavyEdges
			if ratio > worst {
				worst = ratio
			}
			logger.WithFields(log.Fields{
				"run":   run,
				"seed":  seed,
				"cost":  res.Cost,
				"ratio": ratio,
			}).Debug("bench run")
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(),
			"runs: %d, vertices: %d\nmean ratio: %.4f\nworst ratio: %.4f\nmean heavy edges: %.2f\n",
			input.runs, input.order,
			sumRatio/float64(input.runs), worst,
			float64(sumHeavy)/float64(input.runs),
		)

		return err
	}
}
