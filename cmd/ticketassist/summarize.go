package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ticketassist/internal/app"
	"ticketassist/internal/config"
	"ticketassist/internal/models"
)

func newSummarizeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summarize [TICKET TEXT]",
		Short: "Summarize a ticket and look up its table fields",
		Long: `Summarize a ticket the way POST /summarize does.

Examples:
  ticketassist summarize "Mi factura llegó mal"
  cat ticket.txt | ticketassist summarize --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ticket, err := readTicket(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg := config.Load()
			resolver := app.NewResolver(ctx, cfg)

			s := startSpinner("Analyzing ticket...")
			resp := resolver.Summarize(ctx, ticket)
			s.Stop()

			if asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printSummary(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	return cmd
}

func printSummary(w io.Writer, resp models.SummarizeResponse) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	macro := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", label("Summary:"), resp.Summary)
	fmt.Fprintf(w, "%s %s\n", label("Language:"), resp.Language)
	fmt.Fprintf(w, "%s %s\n", label("Macro:"), macro(resp.Macro))
	fmt.Fprintf(w, "%s %s\n", label("Tags:"), strings.Join(resp.Tags, ", "))
	fmt.Fprintf(w, "%s %s\n", label("Formulario:"), resp.Form)
	fmt.Fprintf(w, "%s %s\n", label("Prioridad:"), resp.Priority)
	fmt.Fprintf(w, "%s %s\n", label("Tipo de asesoría:"), resp.AdvisoryType)
	fmt.Fprintf(w, "%s %s\n", label("Dirigida a:"), resp.Assignee)
	fmt.Fprintf(w, "%s %s\n", label("Título:"), resp.Label)
	if resp.SuggestedResponse != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", label("Suggested response:"), resp.SuggestedResponse)
	}
}
