package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/todo/internal/model"
)

// EmptyListMessage is printed when there are no tasks
const EmptyListMessage = "Relax, you have no tasks for today :)"

func addList(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(v)
			if err != nil {
				return err
			}
			printTasks(cmd, svc.Tasks())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

// printTasks renders tasks as an id/text table
func printTasks(cmd *cobra.Command, list []*model.Task) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		_, _ = fmt.Fprintln(out, EmptyListMessage)
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Task"))
	for _, task := range list {
		tbl.AddRow(task.ID, task.GetDisplayText())
	}
	_, _ = fmt.Fprintln(out, tbl)
}
