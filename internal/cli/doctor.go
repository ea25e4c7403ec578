package cli

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configured back-ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			configured := make(map[entities.Provider]bool)
			for _, p := range deps.Service.Providers() {
				configured[p] = true
			}
			hints := map[entities.Provider]string{
				entities.ProviderGemini: "not set. Set GOOGLE_API_KEY",
				entities.ProviderOpenAI: "not set. Set OPENAI_API_KEY",
			}
			for _, p := range entities.Providers {
				if configured[p] {
					f.SetupCheck(p.String(), true, "configured")
				} else {
					f.SetupCheck(p.String(), false, hints[p])
				}
			}
			if !configured[entities.DefaultProvider] {
				ok = false
			}

			if deps.Transcriber != "" {
				f.SetupCheck("Transcription", true, deps.Transcriber)
			} else {
				f.SetupCheck("Transcription", false, "not configured. Set OPENAI_API_KEY, GOOGLE_API_KEY or ASSEMBLYAI_API_KEY")
				ok = false
			}

			if cfg := deps.Config; cfg != nil {
				f.SetupCheck("Storage", true, cfg.Storage.Type)
				f.SetupCheck("Uploads directory", true, cfg.Paths.UploadDir)
				f.SetupCheck("Processed directory", true, cfg.Paths.ProcessedDir)
				f.SetupCheck("Cache", true, cfg.Cache.Type)
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to process recordings!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
