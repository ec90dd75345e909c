package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func whoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := wire.Session.Bootstrap(cmd.Context())
			switch state {
			case domain.SessionAuthenticated:
			case domain.SessionFailed:
				return fmt.Errorf("could not reach the backend to validate the session")
			default:
				return fmt.Errorf("not signed in")
			}
			user, _ := wire.Session.CurrentUser()
			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
			if user.CompanyName != "" {
				fmt.Printf("Company: %s\n", user.CompanyName)
			}
			if user.LastLogin != nil {
				fmt.Printf("Last login: %s\n", user.LastLogin.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.AddCommand(updateProfileCmd(), changePasswordCmd(), refreshCmd())
	return cmd
}

func updateProfileCmd() *cobra.Command {
	var update domain.ProfileUpdate
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update name, company or phone on the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire.Session.Bootstrap(cmd.Context()) != domain.SessionAuthenticated {
				return fmt.Errorf("not signed in")
			}
			res := wire.Session.UpdateProfile(cmd.Context(), update)
			return report(res, "Profile updated")
		},
	}
	cmd.Flags().StringVar(&update.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&update.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "phone number")
	return cmd
}

func changePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Rotate the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire.Session.Bootstrap(cmd.Context()) != domain.SessionAuthenticated {
				return fmt.Errorf("not signed in")
			}
			current, err := promptSecret("Current password: ")
			if err != nil {
				return err
			}
			next, err := promptSecret("New password: ")
			if err != nil {
				return err
			}
			res := wire.Session.ChangePassword(cmd.Context(), domain.PasswordChange{
				CurrentPassword:    current,
				NewPassword:        next,
				ConfirmNewPassword: next,
			})
			return report(res, "Password changed")
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trade the refresh token for a new token pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := wire.Session.Refresh(cmd.Context())
			return report(res, "Session refreshed")
		},
	}
}
