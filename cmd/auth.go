package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/credentials"
	"github.com/s0up4200/mefrp-go/mefrp"
)

var (
	loginUsername string
	loginPassword string
	loginCaptcha  string
	magicLinkID   string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the access token",
	Long: `Log in with a username and password, or complete a magic-link login with
--magic-link. The returned token is saved to the credentials file and used by
every later command.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved access token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username or email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when empty)")
	loginCmd.Flags().StringVar(&loginCaptcha, "captcha", "", "captcha token")
	loginCmd.Flags().StringVar(&magicLinkID, "magic-link", "", "magic-link id from the login mail")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if magicLinkID != "" {
		res, err := client.VerifyMagicLink(ctx, magicLinkID)
		if err != nil {
			return fmt.Errorf("magic-link login failed: %w", err)
		}
		return saveLogin(cmd, res.Token, res.Username)
	}

	if loginUsername == "" {
		return errors.New("--username is required")
	}

	password := loginPassword
	if password == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			return errors.New("no password provided")
		}
		password = strings.TrimSpace(scanner.Text())
	}

	token, err := client.Login(ctx, mefrp.LoginRequest{
		Username:     loginUsername,
		Password:     password,
		CaptchaToken: loginCaptcha,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return saveLogin(cmd, token, loginUsername)
}

func saveLogin(cmd *cobra.Command, token, username string) error {
	if err := store.Save(credentials.Credentials{Token: token, Username: username}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	logger.Info().Str("username", username).Str("path", store.Path()).Msg("Logged in")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in as %s\n", username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Logged out")
	return nil
}
