package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runoshun/git-weblink/internal/app"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/spf13/cobra"
)

// readInput returns the first argument, the contents of file, or stdin, in that order.
func readInput(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case len(args) > 0:
		return []byte(args[0]), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
}

// newEncodeCommand creates the encode command.
func newEncodeCommand(c *app.Container) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode bytes as URL-safe Base64",
		Long: `Encode bytes as unpadded URL-safe Base64.

Input is the text argument, the contents of --file, or stdin.

Examples:
  git weblink encode 'AA?'          # QUE_
  git weblink encode --file key.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			out, err := c.EncodeUseCase().Execute(cmd.Context(), usecase.EncodeInput{Data: data})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Encoded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")

	return cmd
}

// newDecodeCommand creates the decode command.
func newDecodeCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode [encoded]",
		Short: "Decode URL-safe or standard Base64",
		Long: `Decode URL-safe or standard Base64, padded or unpadded.

Input is the argument or stdin. Surrounding whitespace is ignored.
With --output the decoded bytes are written to a file instead of stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, "")
			if err != nil {
				return err
			}

			out, err := c.DecodeUseCase().Execute(cmd.Context(), usecase.DecodeInput{
				Encoded: strings.TrimSpace(string(data)),
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out.Data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				return nil
			}
			_, _ = cmd.OutOrStdout().Write(out.Data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write decoded bytes to file")

	return cmd
}
