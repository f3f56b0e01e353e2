package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/todo/internal/platform"
	"github.com/ytget/todo/internal/storage"
	"github.com/ytget/todo/internal/submit"
	"github.com/ytget/todo/internal/tasks"
)

// New creates the todo root command
func New() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A minimal to-do list on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(KeyPath, platform.DefaultStorePath, "task store directory")
	flags.String(KeyEndpoint, submit.DefaultEndpoint, "endpoint the list is posted to")
	flags.Duration(KeyTimeout, submit.DefaultTimeout, "request timeout for send")
	for _, key := range []string{KeyPath, KeyEndpoint, KeyTimeout} {
		// Flag names are static, binding cannot fail
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	AddCommands(cmd, v)
	return cmd
}

// AddCommands registers every subcommand on topLevel
func AddCommands(topLevel *cobra.Command, v *viper.Viper) {
	addList(topLevel, v)
	addAdd(topLevel, v)
	addRemove(topLevel, v)
	addSend(topLevel, v)
}

// openService builds a task service over the configured disk store
func openService(v *viper.Viper) (*tasks.Service, *Config, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, nil, err
	}

	dir, err := platform.PrepareStoreDir(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare task store: %w", err)
	}

	backend := storage.NewDiskBackend(dir)
	return tasks.NewService(storage.NewRepository(backend)), cfg, nil
}
