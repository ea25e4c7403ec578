package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// Dependencies are the services shared by every command
type Dependencies struct {
	Service meeting.Service
	Config  *config.Config
	// Transcriber is the configured speech-to-text back-end, empty when disabled
	Transcriber string
	// Migrate applies the database migrations and returns how many ran
	Migrate func(ctx context.Context) (int, error)
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Transcribe, summarize, search and question meeting recordings",
		Long:          "A CLI for the meeting scribe: process recordings into searchable summaries and ask questions about their transcripts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewShowCmd(deps))
	rootCmd.AddCommand(NewProcessCmd(deps))
	rootCmd.AddCommand(NewAskCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))
	rootCmd.AddCommand(NewMigrateCmd(deps))

	return rootCmd
}
