package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrEmptyTask is returned when add is given no text
var ErrEmptyTask = errors.New("task text must not be empty")

func addAdd(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Example: `
todo add buy milk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				return ErrEmptyTask
			}

			svc, _, err := openService(v)
			if err != nil {
				return err
			}

			task, err := svc.AddTask(text)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", task.ID)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
