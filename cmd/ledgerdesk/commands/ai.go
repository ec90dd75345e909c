package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/domain"
)

func aiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Ask the assistant and review history",
	}
	cmd.AddCommand(aiAskCmd(), aiInsightsCmd(), aiHistoryCmd())
	return cmd
}

func aiAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the assistant a question about the business",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ans, err := wire.Backend.AskAssistant(cmd.Context(), domain.AIQuery{
				Query: strings.Join(args, " "),
			})
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			fmt.Println(ans.Response)
			if ans.Confidence > 0 {
				fmt.Printf("(confidence %.0f%%)\n", ans.Confidence*100)
			}
			return nil
		},
	}
}

func aiInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show generated business insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			insights, err := wire.Backend.AssistantInsights(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			if len(insights) == 0 {
				fmt.Println("No insights yet")
				return nil
			}
			for _, ins := range insights {
				marker := " "
				if ins.ActionRequired {
					marker = "!"
				}
				fmt.Printf("%s %s: %s\n", marker, ins.Title, ins.Description)
			}
			return nil
		},
	}
}

func aiHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past assistant queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := wire.Backend.AssistantHistory(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("%s", failureText(err))
			}
			for _, ans := range history {
				fmt.Printf("%s  Q: %s\n    A: %s\n",
					ans.CreatedAt.Format("2006-01-02 15:04"), ans.Query, ans.Response,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
