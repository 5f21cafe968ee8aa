package command

// root.go defines the root command and the flags shared by every subcommand.

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"
)

var (
	apiURL  string        // API server URL
	timeout time.Duration // per-command request deadline
)

var rootCmd = &cobra.Command{
	Use:   "animehub-cli",
	Short: "animehub-cli - AnimeHub Command Line Interface",
	Long: `animehub-cli talks to the AnimeHub API. Use it to:
- Sign up, log in and log out
- Rate the seasons of a show and see its combined rating
- Write and read episode reviews

Use "animehub-cli command --help" to see the flags of a command.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("ANIMEHUB_API")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(authCmd, ratingCmd, reviewCmd)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// GetAuthenticatedClient returns a client carrying the stored token.
func GetAuthenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, err
	}
	if creds.Expired(time.Now()) {
		return nil, fmt.Errorf("session expired, run `animehub-cli auth login` again")
	}
	c := client.NewHTTPClient(apiURL)
	c.SetToken(creds.Token)
	return c, nil
}

// currentUserID returns the stored user id, or "" when logged out.
func currentUserID() string {
	creds, err := authentication.GetTokens()
	if err != nil {
		return ""
	}
	return creds.UserID
}
