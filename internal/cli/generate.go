package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycletsp/builder"
)

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance with a planted cycle cover",
		Args:  cobra.NoArgs,
		RunE:  newGenerateAction(input),
	}
	addPlantedFlags(cmd.Flags(), input)
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newGenerateAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := input.newLogger(cmd.ErrOrStderr())

		in, err := input.planted(input.seed)
		if err != nil {
			return err
		}
		in.Name = fmt.Sprintf("%s-seed%d", in.Name, input.seed)

		if input.output == "" || input.output == "-" {
			return builder.Save(cmd.OutOrStdout(), in)
		}
		if err = builder.SaveFile(input.output, in); err != nil {
			return errors.Wrapf(err, "failed to write %s", input.output)
		}
		logger.Debugf("Wrote %s to %s", in.Name, input.output)

		return nil
	}
}
