package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Dashboards, KPIs and generated reports",
	}
	cmd.AddCommand(reportsDashboardCmd(), reportsKPICmd(), reportsGenerateCmd(), reportsListCmd())
	return cmd
}

func reportsDashboardCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Business overview for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := wire.Backend.ReportsDashboard(cmd.Context(), domain.Period(period))
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("Period %s (%s to %s)\n",
				dash.Period, dash.DateRange.StartDate, dash.DateRange.EndDate,
			)
			for key, value := range dash.Overview {
				fmt.Printf("  %s: %v\n", key, value)
			}
			for _, kpi := range dash.KPIMetrics {
				fmt.Printf("  [KPI] %s: %.2f %s\n", kpi.Name, kpi.Value, kpi.Unit)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "month", "today, week, month, quarter or year")
	return cmd
}

func reportsKPICmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Headline KPI metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := wire.Backend.KPIMetrics(cmd.Context(), domain.Period(period))
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			for _, kpi := range metrics {
				trend := "ok"
				if !kpi.IsGood {
					trend = "attention"
				}
				fmt.Printf("%-20s %10.2f %-8s [%s]\n", kpi.Name, kpi.Value, kpi.Unit, trend)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "month", "today, week, month, quarter or year")
	return cmd
}

func reportsGenerateCmd() *cobra.Command {
	var reportType, period string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := wire.Backend.GenerateReport(cmd.Context(), domain.ReportRequest{
				ReportType: domain.ReportType(reportType),
				Period:     domain.Period(period),
			})
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Printf("Report %s (%s, %s to %s)\n",
				rep.ID, rep.ReportType, rep.StartDate, rep.EndDate,
			)
			for _, insight := range rep.Insights {
				fmt.Printf("  - %s\n", insight)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reportType, "type", string(domain.ReportBusinessOverview),
		"financial, sales, customer, invoice or business_overview")
	cmd.Flags().StringVar(&period, "period", "month", "today, week, month, quarter or year")
	return cmd
}

func reportsListCmd() *cobra.Command {
	var page, pageSize int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.Backend.ListReports(cmd.Context(), page, pageSize)
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			for _, rep := range result.Items {
				fmt.Printf("%s\t%s\t%s\tgenerated %s\n",
					rep.ID, rep.ReportType, rep.Period,
					rep.GeneratedAt.Format("2006-01-02 15:04"),
				)
			}
			p := result.Pagination
			fmt.Printf("Page %d/%d (%d reports)\n", p.Page, p.TotalPages, p.TotalItems)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	return cmd
}
