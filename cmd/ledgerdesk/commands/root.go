package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/app"
	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/config"
	"ledgerdesk/internal/domain"
)

var (
	home        string
	profileName string
	baseURL     string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ledgerdesk",
		Short: "Invoicing, CRM and reporting from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".ledgerdesk")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			// Profile management must work before any profile exists.
			if cmd.Name() == "profile" || (cmd.HasParent() && cmd.Parent().Name() == "profile") {
				return nil
			}

			// A --base-url flag beats the profile store.
			if baseURL == "" {
				profiles, err := config.Load(home)
				if err != nil {
					return err
				}
				p, err := profiles.Resolve(profileName)
				if err != nil {
					return fmt.Errorf(
						"%w (run `ledgerdesk profile set` or pass --base-url)", err,
					)
				}
				baseURL = p.BaseURL
			}

			w, err := app.NewWire(app.Config{
				Home:    home,
				BaseURL: baseURL,
				OnUnauthorized: func() {
					fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again.")
				},
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.ledgerdesk)")
	root.PersistentFlags().StringVar(&profileName, "profile", "", "backend profile name (default \"default\")")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL, overrides the profile")

	root.AddCommand(
		loginCmd(), logoutCmd(), registerCmd(), whoamiCmd(),
		profileCmd(), invoicesCmd(), customersCmd(), aiCmd(), reportsCmd(),
	)
	return root.Execute()
}

// failureText maps a backend error onto its displayable message and
// mirrors it into the notification queue.
func failureText(err error) string {
	msg := backend.Message(err)
	wire.UI.ShowError(msg)
	return msg
}

// report prints an operation result and mirrors it into the notification
// queue, returning an error for cobra when the operation failed.
func report(res domain.Result, success string) error {
	if res.OK {
		wire.UI.ShowSuccess(success)
		fmt.Println(success)
		return nil
	}
	wire.UI.ShowError(res.Message)
	return fmt.Errorf("%s", res.Message)
}
