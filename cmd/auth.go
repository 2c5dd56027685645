package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/gitmsg/internal/application"
	"github.com/inovacc/gitmsg/internal/config"
	"github.com/inovacc/gitmsg/internal/github"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect and store GitHub credentials",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which GitHub token is in use and who it belongs to",
	Long: `Show where the GitHub token was found (GITHUB_TOKEN, GH_TOKEN or the
gh CLI), verify it against the GitHub API, and compare the login with
GITHUB_USERNAME when that is set.`,
	Args: cobra.NoArgs,
	RunE: runAuthStatus,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify a GitHub token and save it for gitmsg",
	Long: `Prompt for a GitHub personal access token, verify it, and save it to
gitmsg.env in the application directory. Environment variables still take
precedence over the saved token.`,
	Args: cobra.NoArgs,
	RunE: runAuthLogin,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLoginCmd)
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	_, _ = fmt.Fprintf(os.Stdout, "Host:         %s\n", appConfig.GitHubHost())
	_, _ = fmt.Fprintf(os.Stdout, "Token source: %s\n", appConfig.TokenSource)

	if appConfig.TokenSource == config.TokenSourceNone {
		_, _ = fmt.Fprintln(os.Stdout, warnStyle.Render("No token found. Set GITHUB_TOKEN or run 'gitmsg auth login'."))
		return nil
	}

	client, err := newGitHubClient(cmd.Context())
	if err != nil {
		return err
	}

	login, err := client.Authenticate(cmd.Context())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Status:       %s\n", errStyle.Render("invalid"))
		return fmt.Errorf("token check failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Status:       %s\n", okStyle.Render("valid"))
	_, _ = fmt.Fprintf(os.Stdout, "Login:        %s\n", login)

	if expected := appConfig.GitHubUsername; expected != "" && !strings.EqualFold(expected, login) {
		_, _ = fmt.Fprintln(os.Stdout, warnStyle.Render(
			fmt.Sprintf("Token belongs to %s but GITHUB_USERNAME is %s", login, expected)))
	}

	return nil
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	token, err := readPassword("GitHub token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is required")
	}

	client, err := github.New(cmd.Context(), token,
		github.WithTimeout(appConfig.RemoteTimeout),
		github.WithEnterpriseURL(appConfig.GitHubAPIURL),
	)
	if err != nil {
		return err
	}

	login, err := client.Authenticate(cmd.Context())
	if err != nil {
		return fmt.Errorf("token check failed: %w", err)
	}

	path, err := application.EnvFilePath()
	if err != nil {
		return err
	}

	if err := saveToken(path, token, login); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s logged in as %s\n", okStyle.Render("✓"), login)
	_, _ = fmt.Fprintln(os.Stdout, dimStyle.Render("  token saved to "+path))

	return nil
}

// saveToken merges the token into the env file at path, keeping other keys.
func saveToken(path, token, login string) error {
	env := map[string]string{}

	if _, err := os.Stat(path); err == nil {
		existing, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		env = existing
	}

	env["GITHUB_TOKEN"] = token
	env["GITHUB_USERNAME"] = login

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := godotenv.Write(env, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return os.Chmod(path, 0o600)
}
