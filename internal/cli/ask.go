package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/output"
	"github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
)

func NewAskCmd(deps *Dependencies) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "ask <id> <question...>",
		Short: "Ask a question about a meeting transcript",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := deps.Service.Ask(cmd.Context(), meeting.AskInput{
				MeetingID: args[0],
				Question:  strings.Join(args[1:], " "),
				Provider:  provider,
			})
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Reply(out.Provider, out.Reply)
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "chat provider: gemini or openai (default gemini)")
	return cmd
}
