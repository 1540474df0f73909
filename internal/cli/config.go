package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-weblink/internal/app"
	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage git-weblink configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			st := newStyles(w)

			_, _ = fmt.Fprintln(w, st.Header.Render("[Loaded from]"))
			for _, info := range []domain.ConfigInfo{out.GlobalConfig, out.RepoConfig} {
				switch {
				case info.Path == "":
					// Repository config outside a repository
				case info.Exists:
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				default:
					_, _ = fmt.Fprintf(w, "- %s %s\n", info.Path, st.Missing.Render("(not found)"))
				}
			}

			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, st.Header.Render("[Effective Config]"))
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	return cmd
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template with default values to stdout.

It does not depend on existing configuration files and works even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return nil
		},
	}

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates the repository configuration file at .git/weblink/config.toml.
With --global, creates the global configuration file at ~/.config/git-weblink/config.toml.

Error conditions:
- Target file already exists: error (use --force to overwrite)
- Repository config outside a git repository: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Render values already in effect into the new file
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: cfg,
				Global: global,
				Force:  force,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
