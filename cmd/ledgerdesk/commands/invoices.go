package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func invoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Browse invoices and billing stats",
	}
	cmd.AddCommand(
		invoicesListCmd(), invoicesShowCmd(), invoicesSummaryCmd(), invoicesOverdueCmd(),
	)
	return cmd
}

func invoicesListCmd() *cobra.Command {
	var (
		page, pageSize int
		status, search string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.Backend.ListInvoices(cmd.Context(), domain.InvoiceFilter{
				Page:     page,
				PageSize: pageSize,
				Status:   domain.InvoiceStatus(status),
				Search:   search,
			})
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tCUSTOMER\tDUE\tSTATUS\tTOTAL")
			for _, inv := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
					inv.InvoiceNumber, inv.CustomerName, inv.DueDate, inv.Status, inv.TotalAmount,
				)
			}
			w.Flush()
			p := result.Pagination
			fmt.Printf("Page %d/%d (%d invoices)\n", p.Page, p.TotalPages, p.TotalItems)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, sent, paid, overdue, cancelled)")
	cmd.Flags().StringVar(&search, "search", "", "search invoice number, customer or notes")
	return cmd
}

func invoicesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := wire.Backend.GetInvoice(cmd.Context(), domain.InvoiceID(args[0]))
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("%s  %s  %s\n", inv.InvoiceNumber, inv.Status, inv.DueDate)
			fmt.Printf("Customer: %s <%s>\n", inv.CustomerName, inv.CustomerEmail)
			for _, item := range inv.Items {
				fmt.Printf("  %-30s %6.2f x %8.2f = %10.2f\n",
					item.Name, item.Quantity, item.UnitPrice, item.TotalPrice,
				)
			}
			fmt.Printf("Subtotal %.2f, tax %.2f, total %.2f\n",
				inv.Subtotal, inv.TaxAmount, inv.TotalAmount,
			)
			return nil
		},
	}
}

func invoicesSummaryCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Billing summary for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := wire.Backend.InvoiceSummary(cmd.Context(), domain.Period(period))
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("Invoices: %d (draft %d, sent %d, paid %d, overdue %d)\n",
				sum.TotalInvoices, sum.DraftCount, sum.SentCount, sum.PaidCount, sum.OverdueCount,
			)
			fmt.Printf("Billed %.2f, collected %.2f, pending %.2f, overdue %.2f\n",
				sum.TotalAmount, sum.PaidAmount, sum.PendingAmount, sum.OverdueAmount,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "month", "today, week, month, quarter or year")
	return cmd
}

func invoicesOverdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List overdue invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overdue, err := wire.Backend.OverdueInvoices(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			if len(overdue) == 0 {
				fmt.Println("No overdue invoices")
				return nil
			}
			for _, inv := range overdue {
				fmt.Printf("%s\t%s\tdue %s\t%.2f\n",
					inv.InvoiceNumber, inv.CustomerName, inv.DueDate, inv.TotalAmount,
				)
			}
			return nil
		},
	}
}
