package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/gitmsg/internal/model"
	"github.com/spf13/cobra"
)

var (
	repoJSON    bool
	repoPrivate bool
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Track GitHub repositories that messages are mirrored into",
}

var repoAddCmd = &cobra.Command{
	Use:   "add <owner/name | owner name>",
	Short: "Track an existing GitHub repository",
	Long: `Track an existing GitHub repository. The repository must exist on
GitHub; adding one that is already tracked returns the existing entry.

Examples:
  gitmsg repo add octocat/notes
  gitmsg repo add octocat notes`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRepoAdd,
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked repositories, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRepoList,
}

var repoCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a repository for the authenticated user and track it",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepoCreate,
}

func init() {
	rootCmd.AddCommand(repoCmd)
	repoCmd.AddCommand(repoAddCmd)
	repoCmd.AddCommand(repoListCmd)
	repoCmd.AddCommand(repoCreateCmd)

	for _, c := range []*cobra.Command{repoAddCmd, repoListCmd, repoCreateCmd} {
		c.Flags().BoolVar(&repoJSON, "json", false, "Output as JSON")
	}

	repoCreateCmd.Flags().BoolVar(&repoPrivate, "private", false, "Create a private repository")
}

func runRepoAdd(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	repo, err := a.syncer.RegisterRepository(cmd.Context(), owner, name)
	if err != nil {
		var nf *model.NotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("%s does not exist on GitHub or is not visible to this token", nf.Key)
		}

		return err
	}

	return printRepository(repo)
}

func runRepoCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	repo, err := a.syncer.CreateRepository(cmd.Context(), args[0], repoPrivate)
	if err != nil {
		return err
	}

	return printRepository(repo)
}

func printRepository(repo *model.Repository) error {
	if repoJSON {
		return outputJSON(repo)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s tracking %s (id %d)\n", okStyle.Render("✓"), repo.FullName(), repo.ID)

	return nil
}

func runRepoList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	repos, err := a.syncer.ListRepositories(cmd.Context())
	if err != nil {
		return err
	}

	if repoJSON {
		return outputJSON(repos)
	}

	if len(repos) == 0 {
		printEmptyResult("repositories", "gitmsg repo add <owner/name>")
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, headerStyle.Render(fmt.Sprintf("%-6s %-40s %s", "ID", "REPOSITORY", "ADDED")))

	for _, r := range repos {
		_, _ = fmt.Fprintf(os.Stdout, "%-6d %-40s %s\n", r.ID, r.FullName(), dimStyle.Render(formatTimeAgo(r.CreatedAt)))
	}

	return nil
}
