package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/git-weblink/internal/app"
	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/spf13/cobra"
)

// newMonthCommand creates the month command.
func newMonthCommand(c *app.Container) *cobra.Command {
	return newDateNameCommand(c, usecase.DateNameMonth,
		"month <n>", "Print the abbreviated name of a month (0 = January)")
}

// newDayCommand creates the day command.
func newDayCommand(c *app.Container) *cobra.Command {
	return newDateNameCommand(c, usecase.DateNameDay,
		"day <n>", "Print the abbreviated name of a weekday (0 = Sunday)")
}

func newDateNameCommand(c *app.Container, kind usecase.DateNameKind, use, short string) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`%s.

Values outside the range wrap around. The language defaults to locale.lang
from config; unknown languages fall back to English.
Supported languages: %s.`, short, strings.Join(domain.SupportedLanguages(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", kind, args[0], err)
			}

			out, err := c.TranslateDateUseCase().Execute(cmd.Context(), usecase.TranslateDateInput{
				Kind:  kind,
				Lang:  lang,
				Value: n,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "BCP 47 language tag (e.g. de-DE)")

	return cmd
}
