package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addRemove(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(v)
			if err != nil {
				return err
			}

			id := args[0]
			if _, ok := svc.GetTask(id); !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task %s\n", id)
				return nil
			}
			if err := svc.DeleteTask(id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
