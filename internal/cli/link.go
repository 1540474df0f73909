package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/git-weblink/internal/app"
	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/spf13/cobra"
)

// readLines returns the non-empty lines of r with surrounding whitespace removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

// newHrefCommand creates the href command.
func newHrefCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "href [href...]",
		Short: "Extract issue and pull request references from links",
		Long: `Extract owner, repository, type and index from issue and pull request links.

Links may be absolute, protocol-relative or relative, and may point into a
forge mounted under a sub-path. Query and fragment are ignored.
Without arguments, links are read from stdin, one per line.

Examples:
  git weblink href https://example.com/owner/repo/pulls/7?x=1
  git weblink href --json /sub/owner/repo/issues/1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hrefs := args
			if len(hrefs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				hrefs = lines
			}

			out, err := c.ParseHrefUseCase().Execute(cmd.Context(), usecase.ParseHrefInput{Hrefs: hrefs})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Results)
			}

			w := cmd.OutOrStdout()
			kw := newKVWriter(w, "href", "owner", "repo", "type", "index")
			for i, r := range out.Results {
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}
				kw.Row("href", r.Href)
				kw.Row("owner", r.Ref.Owner)
				kw.Row("repo", r.Ref.Repo)
				kw.Row("type", string(r.Ref.Type))
				kw.Row("index", r.Ref.Index)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// newLinkCommand creates the link command.
func newLinkCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Remote string
		Owner  string
		Repo   string
		Pulls  bool
	}

	cmd := &cobra.Command{
		Use:   "link <index>",
		Short: "Print the web URL of an issue or pull request",
		Long: `Print the web URL of an issue or pull request of the current repository.

Owner and repository come from the git remote (server.remote in config,
"origin" by default) unless given with --owner and --repo.
The URL is based on server.app_url, or on the remote host when unset.

Examples:
  git weblink link 42
  git weblink link 7 --pulls --remote upstream`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", domain.ErrInvalidIndex, args[0])
			}

			typ := domain.IssueTypeIssues
			if opts.Pulls {
				typ = domain.IssueTypePulls
			}

			out, err := c.IssueLinkUseCase().Execute(cmd.Context(), usecase.IssueLinkInput{
				Type:   typ,
				Remote: opts.Remote,
				Owner:  opts.Owner,
				Repo:   opts.Repo,
				Index:  index,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Pulls, "pulls", "p", false, "Link a pull request instead of an issue")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Git remote to read owner and repository from")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Repository owner")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository name")

	return cmd
}

// newAbsCommand creates the abs command.
func newAbsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abs <url>",
		Short: "Make a link absolute and show its parts",
		Long: `Resolve a link against server.app_url and show its parts.

Absolute http(s) links are kept, protocol-relative links take the scheme of
the app URL and root-relative paths are joined onto its origin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ResolveURLUseCase().Execute(cmd.Context(), usecase.ResolveURLInput{URL: args[0]})
			if err != nil {
				return err
			}

			kw := newKVWriter(cmd.OutOrStdout(), "absolute", "pathname", "search", "hash", "basename", "extname", "issue")
			kw.Row("absolute", out.Absolute)
			kw.Row("pathname", out.Parts.Pathname)
			kw.Row("search", out.Parts.Search)
			kw.Row("hash", out.Parts.Hash)
			kw.Row("basename", out.Basename)
			kw.Row("extname", out.Extname)
			kw.Row("issue", out.Issue.Path())
			return nil
		},
	}

	return cmd
}
