package command

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"
	"animehub/internal/microservices/http-api/dto"
)

// authCmd groups signup, login and logout.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the AnimeHub API server. The token is kept in the OS keyring.`,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new AnimeHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.SignupRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		resp, err := client.NewHTTPClient(apiURL).Signup(ctx, req)
		if err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}
		if err := saveSession(resp); err != nil {
			return err
		}

		color.Green("✓ Account created, you are logged in.")
		fmt.Printf("UserID: %s\n", resp.User.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your AnimeHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		resp, err := client.NewHTTPClient(apiURL).Login(ctx, req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := saveSession(resp); err != nil {
			return err
		}

		color.Green("✓ Logged in as %s", resp.User.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("could not clear credentials: %w", err)
		}
		color.Green("✓ Logged out.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(signupCmd, loginCmd, logoutCmd)

	signupCmd.Flags().StringP("username", "u", "", "Username for the new account")
	signupCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	signupCmd.Flags().StringP("password", "p", "", "Password for the new account")
	_ = signupCmd.MarkFlagRequired("username")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password of the account")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func saveSession(resp *dto.AuthResponse) error {
	creds := &authentication.StoredCredentials{
		Token:    resp.Token,
		UserID:   resp.User.ID,
		Username: resp.User.Username,
	}
	if resp.ExpiresIn > 0 {
		creds.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}
	if err := authentication.StoreTokens(creds); err != nil {
		return fmt.Errorf("could not store token in keyring: %w", err)
	}
	return nil
}
