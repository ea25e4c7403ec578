package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/output"
	"github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "process <audio-file>",
		Short: "Transcribe and summarize a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening recording: %w", err)
			}
			defer f.Close()

			name := filepath.Base(args[0])
			formatter.Processing(name, provider)
			start := time.Now()

			out, err := deps.Service.Process(cmd.Context(), meeting.ProcessInput{
				Filename: name,
				Content:  f,
				Provider: provider,
			})
			if err != nil {
				return err
			}

			formatter.ProcessDone(out.JobID, out.Title, out.Provider, time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "summary provider: gemini or openai (default gemini)")
	return cmd
}
