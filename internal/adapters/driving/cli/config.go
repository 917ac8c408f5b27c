package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage importer configuration",
	Long: `View and change the document store endpoint, session credentials and
request limits.

Keys:
  api.base_url             Document store root URL
  api.nonce                Session nonce cookie
  api.token                Session token cookie
  api.requests_per_second  Request rate limit (default 5)
  api.max_retries          Retries for transient failures (default 3)
  journal.path             Apply journal directory (default ~/.fbimport/data)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store session credentials",
	Long: `Prompts for the session nonce and token used to create and approve
proposals. Copy both values from the site's cookies after signing in.
The token is read without echo when stdin is a terminal.`,
	Args: cobra.NoArgs,
	RunE: runConfigLogin,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configLoginCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Printf("Configuration (%s)\n", settingsService.Path())
	cmd.Println()
	for _, entry := range settingsService.Entries() {
		value := entry.Value
		if value == "" {
			value = "(not set)"
		} else if !entry.IsSet {
			value += " (default)"
		}
		cmd.Printf("  %-24s %s\n", entry.Key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	cmd.Print("Nonce: ")
	nonce, err := readLine(reader)
	if err != nil {
		return fmt.Errorf("read nonce: %w", err)
	}

	cmd.Print("Token: ")
	token, err := readSecret(in, reader)
	cmd.Println()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	if err := settingsService.SetCredentials(nonce, token); err != nil {
		return err
	}
	cmd.Println("Credentials saved.")
	return nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret reads without echo when in is a terminal and falls back to
// a plain line read otherwise.
func readSecret(in io.Reader, reader *bufio.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return readLine(reader)
}
