package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Browse CRM customers and follow-ups",
	}
	cmd.AddCommand(
		customersListCmd(),
		customersShowCmd(),
		customersSummaryCmd(),
		customersFollowUpsCmd(),
	)
	return cmd
}

func customersListCmd() *cobra.Command {
	var (
		page, pageSize int
		status, search string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.Backend.ListCustomers(cmd.Context(), domain.CustomerFilter{
				Page:     page,
				PageSize: pageSize,
				Status:   domain.CustomerStatus(status),
				Search:   search,
			})
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEMAIL\tSTATUS\tINVOICES\tREVENUE")
			for _, cust := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n",
					cust.Name, cust.Email, cust.Status, cust.TotalInvoices, cust.TotalRevenue,
				)
			}
			w.Flush()
			p := result.Pagination
			fmt.Printf("Page %d/%d (%d customers)\n", p.Page, p.TotalPages, p.TotalItems)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, inactive, potential, blocked)")
	cmd.Flags().StringVar(&search, "search", "", "search name, email or company")
	return cmd
}

func customersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cust, err := wire.Backend.GetCustomer(cmd.Context(), domain.CustomerID(args[0]))
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("%s (%s, %s)\n", cust.Name, cust.Type, cust.Status)
			if cust.Email != "" {
				fmt.Printf("Email: %s\n", cust.Email)
			}
			if cust.Company != "" {
				fmt.Printf("Company: %s\n", cust.Company)
			}
			fmt.Printf("Invoices: %d, revenue %.2f, outstanding %.2f\n",
				cust.TotalInvoices, cust.TotalRevenue, cust.Outstanding,
			)
			if cust.LastInteraction != nil {
				fmt.Printf("Last interaction: %s\n", cust.LastInteraction.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func customersSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Customer book statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.Backend.CustomerSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("Customers: %d (%d active, %d inactive, %d potential)\n",
				summary.TotalCustomers, summary.ActiveCustomers,
				summary.InactiveCustomers, summary.PotentialCustomers,
			)
			fmt.Printf("Paid revenue: %.2f (%.2f per customer)\n",
				summary.TotalRevenue, summary.AverageRevenuePerCustomer,
			)
			if len(summary.TopCustomers) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "TOP CUSTOMER\tREVENUE")
				for _, top := range summary.TopCustomers {
					fmt.Fprintf(w, "%s\t%.2f\n", top.Name, top.Revenue)
				}
				w.Flush()
			}
			return nil
		},
	}
}

func customersFollowUpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow-ups",
		Short: "Customers with a follow-up due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := wire.Backend.PendingFollowUps(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			if len(due) == 0 {
				fmt.Println("No follow-ups due")
				return nil
			}
			for _, cust := range due {
				fmt.Printf("%s\t%s\n", cust.Name, cust.Email)
			}
			return nil
		},
	}
}
