package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	authadapter "github.com/bnema/bizassist-cli/internal/adapters/auth"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/spf13/cobra"
)

const passwordEnv = "BA_PASSWORD"

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the platform session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthRegisterCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.passwordFlow.Login(cmd.Context(), authadapter.LoginRequest{
				Email:    email,
				Password: passwordOrEnv(password),
			})
			if err != nil {
				return err
			}

			return signIn(cmd, app, result, email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (default: $"+passwordEnv+")")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var fullName string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.passwordFlow.Register(cmd.Context(), authadapter.RegisterRequest{
				FullName: fullName,
				Email:    email,
				Password: passwordOrEnv(password),
			})
			if err != nil {
				return err
			}

			return signIn(cmd, app, result, email)
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password, at least 6 characters (default: $"+passwordEnv+")")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.SignOut(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.session.Profile(cmd.Context())
			if errors.Is(err, domain.ErrProfileNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in. Run `ba auth login`.")
				return err
			}
			if err != nil {
				return err
			}

			line := profile.Email
			if profile.FullName != "" {
				line = fmt.Sprintf("%s <%s>", profile.FullName, profile.Email)
			}
			if !profile.SignedInAt.IsZero() {
				line += fmt.Sprintf(" (signed in %s)", profile.SignedInAt.Local().Format("2006-01-02 15:04"))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func signIn(cmd *cobra.Command, app *app, result authadapter.TokenResult, email string) error {
	if result.Profile.Email == "" {
		result.Profile.Email = strings.TrimSpace(email)
	}
	if err := app.session.SignIn(cmd.Context(), result.AccessToken, result.Profile); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", result.Profile.DisplayName())
	return err
}

func passwordOrEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.TrimRight(os.Getenv(passwordEnv), "\r\n")
}
