package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/git-weblink/internal/app"
	"github.com/runoshun/git-weblink/internal/infra/blob"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/spf13/cobra"
)

// newDataURICommand creates the datauri command.
func newDataURICommand(c *app.Container) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "datauri [file]",
		Short: "Wrap a file in a base64 data URI",
		Long: `Wrap the contents of a file (or stdin) in a data URI.

The content type is sniffed from the data unless --type is given.

Example:
  echo -n '{"test":true}' | git weblink datauri --type application/json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			data, err := readInput(cmd, nil, file)
			if err != nil {
				return err
			}

			out, err := c.DataURIUseCase().Execute(cmd.Context(), usecase.DataURIInput{
				ContentType: contentType,
				Data:        data,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URI)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", "", "Content type (default: sniffed)")

	return cmd
}

// newConvertCommand creates the convert command.
func newConvertCommand(c *app.Container) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an image for upload",
		Long: fmt.Sprintf(`Decode an image and re-encode it in another format.

Accepted input: PNG, JPEG, GIF, BMP and WebP.
Targets: %s. The default target is image.format from config.
An input already in the target format is copied unchanged.`, strings.Join(blob.SupportedTargets(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			out, err := c.ConvertImageUseCase().Execute(cmd.Context(), usecase.ConvertImageInput{
				TargetType: target,
				Data:       data,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], out.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			kw := newKVWriter(cmd.OutOrStdout(), "source", "target", "size")
			kw.Row("source", out.SourceType)
			kw.Row("target", out.TargetType)
			kw.Row("size", fmt.Sprintf("%d -> %d bytes", len(data), len(out.Data)))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target content type (e.g. image/jpeg)")

	return cmd
}

// newStripTagsCommand creates the strip-tags command.
func newStripTagsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip-tags [html]",
		Short: "Remove HTML tags and print the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, "")
			if err != nil {
				return err
			}

			out, err := c.StripTagsUseCase().Execute(cmd.Context(), usecase.StripTagsInput{HTML: string(data)})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	return cmd
}
