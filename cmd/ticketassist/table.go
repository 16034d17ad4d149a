package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ticketassist/internal/app"
	"ticketassist/internal/config"
)

func newTableCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Load the configured suggestion table and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			table := app.LoadTable(context.Background(), cfg)
			if table == nil {
				return fmt.Errorf("no knowledge source configured (KNOWLEDGE_SOURCE=%s)", cfg.KnowledgeSource)
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), table.Rows())
			}

			w := cmd.OutOrStdout()
			bold := color.New(color.Bold).SprintFunc()
			for i, r := range table.Rows() {
				fmt.Fprintf(w, "%s %s -> %s\n", bold(fmt.Sprintf("%3d.", i+1)), r.Keywords, color.GreenString(r.Macro))
				fmt.Fprintf(w, "     %s | %s | %s | %s | %s | [%s]\n",
					r.Form, r.Priority, r.AdvisoryType, r.Assignee, r.Label, strings.Join(r.Tags, ", "))
			}
			fmt.Fprintf(w, "%d rows\n", table.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rows as JSON")
	return cmd
}
