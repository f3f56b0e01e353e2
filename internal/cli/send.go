package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/todo/internal/submit"
)

func addSend(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "POST the task list to the endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openService(v)
			if err != nil {
				return err
			}

			list := svc.Tasks()
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), EmptyListMessage)
				return nil
			}

			client := submit.NewClient(cfg.Endpoint, cfg.Timeout)
			receipt, err := client.Send(cmd.Context(), list)
			if err != nil {
				return fmt.Errorf("send to %s failed: %w", client.Endpoint(), err)
			}

			green := color.New(color.FgGreen)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks (status %d)\n", green.Sprint("Sent"), len(list), receipt.StatusCode)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
