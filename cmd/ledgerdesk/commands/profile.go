package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/config"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named backend profiles",
	}
	cmd.AddCommand(profileSetCmd(), profileListCmd(), profileRemoveCmd())
	return cmd
}

func profileSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <base-url>",
		Short: "Create or update a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, url := args[0], args[1]
			p := &config.Profile{BaseURL: url}
			if err := p.Verify(); err != nil {
				return err
			}
			profiles, err := config.Load(home)
			if err != nil {
				return err
			}
			profiles[name] = p
			if err := config.Save(home, profiles); err != nil {
				return err
			}
			fmt.Printf("Profile %q -> %s\n", name, url)
			return nil
		},
	}
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := config.Load(home)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println("No profiles configured")
				return nil
			}
			names := make([]string, 0, len(profiles))
			for name := range profiles {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s\t%s\n", name, profiles[name].BaseURL)
			}
			return nil
		},
	}
}

func profileRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := config.Load(home)
			if err != nil {
				return err
			}
			if _, found := profiles[args[0]]; !found {
				return fmt.Errorf("profile not found: %s", args[0])
			}
			delete(profiles, args[0])
			if err := config.Save(home, profiles); err != nil {
				return err
			}
			fmt.Printf("Removed profile %q\n", args[0])
			return nil
		},
	}
}
