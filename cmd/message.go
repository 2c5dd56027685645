package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/inovacc/gitmsg/internal/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	messageRepoID  int64
	messageJSON    bool
	messagePending bool
)

var messageCmd = &cobra.Command{
	Use:     "message",
	Aliases: []string{"msg"},
	Short:   "Create and list messages",
}

var messageAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Store a message, syncing it immediately when a repository is given",
	Long: `Store a new message. With --repo-id the message is written to
messages/<id>.json in that repository right away and its blob SHA recorded.

Examples:
  gitmsg message add "hello"
  gitmsg message add --repo-id 1 "deployed v1.2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMessageAdd,
}

var messageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMessageList,
}

func init() {
	rootCmd.AddCommand(messageCmd)
	messageCmd.AddCommand(messageAddCmd)
	messageCmd.AddCommand(messageListCmd)

	messageAddCmd.Flags().Int64Var(&messageRepoID, "repo-id", 0, "Repository to mirror the message into")
	messageAddCmd.Flags().BoolVar(&messageJSON, "json", false, "Output as JSON")

	messageListCmd.Flags().BoolVar(&messageJSON, "json", false, "Output as JSON")
	messageListCmd.Flags().BoolVar(&messagePending, "pending", false, "Only show messages not yet synced")
}

func runMessageAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	var repoID *int64
	if messageRepoID != 0 {
		repoID = &messageRepoID
	}

	msg, err := a.syncer.CreateMessage(cmd.Context(), strings.Join(args, " "), repoID)
	if err != nil {
		return err
	}

	if messageJSON {
		return outputJSON(msg)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s message %d stored\n", okStyle.Render("✓"), msg.ID)

	switch {
	case msg.Synced():
		_, _ = fmt.Fprintf(os.Stdout, "  synced to %s (%s)\n", msg.FilePath(), shortHash(msg.GitHash))
	case msg.RepositoryID != nil:
		_, _ = fmt.Fprintln(os.Stdout, warnStyle.Render("  not synced yet, run 'gitmsg push' to retry"))
	}

	return nil
}

func runMessageList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	messages, err := a.syncer.ListMessages(cmd.Context())
	if err != nil {
		return err
	}

	if messagePending {
		messages = lo.Filter(messages, func(m model.Message, _ int) bool {
			return !m.Synced()
		})
	}

	if messageJSON {
		return outputJSON(messages)
	}

	if len(messages) == 0 {
		printEmptyResult("messages", "gitmsg message add <content>")
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, headerStyle.Render(fmt.Sprintf("%-6s %-8s %-6s %-16s %s", "ID", "HASH", "REPO", "WHEN", "CONTENT")))

	for _, m := range messages {
		repo := "-"
		if m.RepositoryID != nil {
			repo = fmt.Sprintf("%d", *m.RepositoryID)
		}

		hash := shortHash(m.GitHash)
		if m.Synced() {
			hash = okStyle.Render(fmt.Sprintf("%-8s", hash))
		} else {
			hash = dimStyle.Render(fmt.Sprintf("%-8s", hash))
		}

		_, _ = fmt.Fprintf(os.Stdout, "%-6d %s %-6s %-16s %s\n",
			m.ID, hash, repo, formatTimeAgo(m.Timestamp), truncateString(m.Content, 60))
	}

	return nil
}
