package cli

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/output"
)

func NewShowCmd(deps *Dependencies) *cobra.Command {
	var transcript bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the summary of a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := deps.Service.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Meeting(m, transcript)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&transcript, "transcript", "t", false, "also print the transcript")
	return cmd
}
