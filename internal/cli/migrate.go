package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-scribe/internal/output"
)

func NewMigrateCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Migrate == nil {
				return errors.New("migrations are not available")
			}
			n, err := deps.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Success(fmt.Sprintf("Applied %d migration(s)", n))
			return nil
		},
	}
}
