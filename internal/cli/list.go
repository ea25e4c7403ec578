package cli

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processed meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			meetings, err := deps.Service.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				formatter.Info("No meetings found")
				return nil
			}

			formatter.MeetingListHeader(query)
			for _, m := range meetings {
				formatter.MeetingListItem(m)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only show meetings whose title, summary or transcript contains this text")
	return cmd
}
