package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and persist the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if password == "" {
				var err error
				password, err = promptSecret("Password: ")
				if err != nil {
					return err
				}
			}
			res := wire.Session.Login(cmd.Context(), email, password)
			return report(res, fmt.Sprintf("Signed in as %s", email))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Best effort while the token still exists; the local logout
			// below never depends on it.
			_ = wire.Backend.Logout(cmd.Context())
			wire.Session.Logout(cmd.Context())
			fmt.Println("Signed out")
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register <email> <full-name>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, fullName := args[0], args[1]
			company, _ := cmd.Flags().GetString("company")
			phone, _ := cmd.Flags().GetString("phone")
			if password == "" {
				var err error
				password, err = promptSecret("Password: ")
				if err != nil {
					return err
				}
			}
			res := wire.Session.Register(cmd.Context(), domain.Registration{
				Email:           email,
				FullName:        fullName,
				CompanyName:     company,
				Phone:           phone,
				Password:        password,
				ConfirmPassword: password,
			})
			return report(res, fmt.Sprintf("Registered %s", email))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("phone", "", "phone number")
	return cmd
}

// promptSecret reads a line from stdin. Echo suppression is not attempted;
// scripted use passes --password instead.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	secret := strings.TrimRight(line, "\r\n")
	if secret == "" {
		return "", fmt.Errorf("empty password")
	}
	return secret, nil
}
