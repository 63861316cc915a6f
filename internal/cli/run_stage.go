package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"billing_scheduler/internal/adapter/http/dto/response"
	"billing_scheduler/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newRunStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-stage <PENDING|FAILED1|FAILED2|FAILED3>",
		Short: "Run one billing pass for a stage and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage := entities.BillingStage(strings.ToUpper(strings.TrimSpace(args[0])))
			if !stage.Valid() {
				return fmt.Errorf("unknown stage %q", args[0])
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.cycle.RunStage(cmd.Context(), stage)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(response.FromTickReport(report))
		},
	}
}
