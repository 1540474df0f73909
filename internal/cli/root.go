// Package cli provides the command-line interface for git-weblink.
package cli

import (
	"fmt"

	"github.com/runoshun/git-weblink/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupEncoding = "encoding"
	groupLinks    = "links"
	groupLocale   = "locale"
	groupSetup    = "setup"
)

// NewRootCommand creates the root command for git-weblink.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "weblink",
		Short: "Web link and encoding helpers for a git forge",
		Long: `git-weblink works with the links a Forgejo or Gitea web front end produces.

It encodes and decodes URL-safe Base64, recognizes issue and pull request
links, builds links for the current repository from its git remote and
converts images and blobs for upload.

Run as "git weblink" when installed on PATH as git-weblink.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command that needs the config
				return nil
			}

			warn := newStyles(cmd.ErrOrStderr()).Warning
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warn.Render("Warning: "+w))
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupEncoding, Title: "Encoding Commands:"},
		&cobra.Group{ID: groupLinks, Title: "Link Commands:"},
		&cobra.Group{ID: groupLocale, Title: "Locale Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Encoding commands
	encodeCmd := newEncodeCommand(c)
	encodeCmd.GroupID = groupEncoding

	decodeCmd := newDecodeCommand(c)
	decodeCmd.GroupID = groupEncoding

	dataURICmd := newDataURICommand(c)
	dataURICmd.GroupID = groupEncoding

	convertCmd := newConvertCommand(c)
	convertCmd.GroupID = groupEncoding

	stripTagsCmd := newStripTagsCommand(c)
	stripTagsCmd.GroupID = groupEncoding

	// Link commands
	hrefCmd := newHrefCommand(c)
	hrefCmd.GroupID = groupLinks

	linkCmd := newLinkCommand(c)
	linkCmd.GroupID = groupLinks

	absCmd := newAbsCommand(c)
	absCmd.GroupID = groupLinks

	// Locale commands
	monthCmd := newMonthCommand(c)
	monthCmd.GroupID = groupLocale

	dayCmd := newDayCommand(c)
	dayCmd.GroupID = groupLocale

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		encodeCmd,
		decodeCmd,
		dataURICmd,
		convertCmd,
		stripTagsCmd,
		hrefCmd,
		linkCmd,
		absCmd,
		monthCmd,
		dayCmd,
		configCmd,
	)

	return root
}
