package cli

import (
	"fmt"

	"github.com/ariel-frischer/releasekit/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect releasekit configuration",
		Long: `Inspect the configuration releasekit resolves from defaults, the user
config file, the project config file and RELEASEKIT_* environment variables.`,
	}
	cmd.GroupID = GroupInfo

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printConfig(cmd, opts.cfg)
			},
		},
		&cobra.Command{
			Use:     "template",
			Short:   "Print a commented config file with the defaults",
			Example: `  releasekit config template > .releasekit/config.yml`,
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
				return nil
			},
		},
		&cobra.Command{
			Use:   "paths",
			Short: "Print the config file locations in load order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				if userPath, err := config.UserConfigPath(); err == nil {
					fmt.Fprintf(out, "user:    %s\n", userPath)
				}
				fmt.Fprintf(out, "project: %s\n", orDefault(opts.configPath, config.ProjectConfigPath()))
				fmt.Fprintf(out, "env:     %s*\n", config.EnvPrefix)
				return nil
			},
		},
	)

	return cmd
}

// printConfig writes cfg as YAML. Durations are printed in their string form.
func printConfig(cmd *cobra.Command, cfg *config.Configuration) error {
	view := struct {
		ChangelogPath    string `yaml:"changelog_path"`
		ManifestPath     string `yaml:"manifest_path"`
		UnversionedTitle string `yaml:"unversioned_title"`
		PlaceholderEntry string `yaml:"placeholder_entry"`
		Lenient          bool   `yaml:"lenient"`
		VcsBackend       string `yaml:"vcs_backend"`
		GitTimeout       string `yaml:"git_timeout"`
	}{
		ChangelogPath:    cfg.ChangelogPath,
		ManifestPath:     cfg.ManifestPath,
		UnversionedTitle: cfg.UnversionedTitle,
		PlaceholderEntry: cfg.PlaceholderEntry,
		Lenient:          cfg.Lenient,
		VcsBackend:       cfg.VcsBackend,
		GitTimeout:       cfg.GitTimeout.String(),
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
