package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mapleridge/opsig/internal/skills/notes"
)

// The notes skill always speaks JSON on stdout, success or failure — the
// same envelope the callers of the original automation scripts expect.

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manipulate Apple Notes via AppleScript (macOS only)",
	Long: `Thin wrapper over Notes.app automation. Notes are organized by account
(iCloud, On My Mac, Gmail, ...); listings cover all accounts unless narrowed.
The first run prompts for the macOS Automation permission.`,
}

var notesManager = notes.NewManager(nil)

func emit(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

// emitError writes the failure envelope and signals main to exit non-zero
// without printing again.
func emitError(err error) error {
	_ = emit(map[string]any{"success": false, "error": err.Error()})
	return errReported
}

var notesListAccountsCmd = &cobra.Command{
	Use:   "list-accounts",
	Short: "List all Notes accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		accounts, err := notesManager.ListAccounts(cmd.Context())
		if err != nil {
			return emitError(err)
		}
		return emit(map[string]any{"success": true, "accounts": accounts, "count": len(accounts)})
	},
}

var notesListFoldersCmd = &cobra.Command{
	Use:   "list-folders",
	Short: "List all folders across all accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		folders, err := notesManager.ListFolders(cmd.Context())
		if err != nil {
			return emitError(err)
		}
		return emit(map[string]any{"success": true, "folders": folders, "count": len(folders)})
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list-notes",
	Short: "List notes, optionally filtered by folder and account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		folder, _ := cmd.Flags().GetString("folder")
		account, _ := cmd.Flags().GetString("account")
		list, err := notesManager.ListNotes(cmd.Context(), folder, account)
		if err != nil {
			return emitError(err)
		}
		return emit(list)
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		body, _ := cmd.Flags().GetString("body")
		folder, _ := cmd.Flags().GetString("folder")
		account, _ := cmd.Flags().GetString("account")
		st, err := notesManager.Create(cmd.Context(), title, body, folder, account)
		if err != nil {
			return emitError(err)
		}
		return emit(st)
	},
}

var notesReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a note's content by title",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		account, _ := cmd.Flags().GetString("account")
		plaintext, _ := cmd.Flags().GetBool("plaintext")
		content, err := notesManager.Read(cmd.Context(), title, account, plaintext)
		if err != nil {
			return emitError(err)
		}
		return emit(content)
	},
}

var notesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := notesManager.Search(cmd.Context(), args[0])
		if err != nil {
			return emitError(err)
		}
		return emit(list)
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a note by title",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		account, _ := cmd.Flags().GetString("account")
		st, err := notesManager.Delete(cmd.Context(), title, account)
		if err != nil {
			return emitError(err)
		}
		return emit(st)
	},
}

func init() {
	notesListCmd.Flags().String("folder", "", "filter by folder name")
	notesListCmd.Flags().String("account", "", "filter by account name")

	notesCreateCmd.Flags().String("title", "", "note title")
	notesCreateCmd.Flags().String("body", "", "note body")
	notesCreateCmd.Flags().String("folder", "", "target folder")
	notesCreateCmd.Flags().String("account", "", "target account")
	_ = notesCreateCmd.MarkFlagRequired("title")
	_ = notesCreateCmd.MarkFlagRequired("body")

	notesReadCmd.Flags().String("title", "", "note title")
	notesReadCmd.Flags().String("account", "", "account to search")
	notesReadCmd.Flags().Bool("plaintext", false, "return plaintext instead of HTML body")
	_ = notesReadCmd.MarkFlagRequired("title")

	notesDeleteCmd.Flags().String("title", "", "note title")
	notesDeleteCmd.Flags().String("account", "", "account to search")
	_ = notesDeleteCmd.MarkFlagRequired("title")

	notesCmd.AddCommand(
		notesListAccountsCmd,
		notesListFoldersCmd,
		notesListCmd,
		notesCreateCmd,
		notesReadCmd,
		notesSearchCmd,
		notesDeleteCmd,
	)
}
