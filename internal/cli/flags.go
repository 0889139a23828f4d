package cli

import "github.com/spf13/pflag"

// addPlantedFlags registers the generator knobs shared by generate and bench.
func addPlantedFlags(fs *pflag.FlagSet, input *Input) {
	fs.IntVarP(&input.order, "vertices", "n", 30, "number of vertices")
	fs.IntVar(&input.cycleLen, "cycle-len", 3, "length of planted cover cycles")
	fs.Float64Var(&input.lightProb, "light-prob", 0.1, "probability that a pair outside the cover is light")
	fs.IntVar(&input.badCycles, "bad", 0, "number of planted cycles with a heavy edge")
	fs.Int64Var(&input.seed, "seed", 1, "random seed")
	fs.Float64Var(&input.perturb, "perturb", 0, "probability of flipping each pair outside the cover")
}
