package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ticketassist/internal/app"
	"ticketassist/internal/config"
	"ticketassist/internal/models"
	"ticketassist/internal/validation"
)

func newSuggestCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "suggest [ISSUE DESCRIPTION]",
		Short: "Ask the text generator for the best matching macro",
		RunE: func(cmd *cobra.Command, args []string) error {
			issue, err := readTicket(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if valid, msg := validation.ValidateTicketText("issue description", issue); !valid {
				return fmt.Errorf("%s", msg)
			}

			ctx := context.Background()
			resolver := app.NewResolver(ctx, config.Load())

			s := startSpinner("Asking for a macro...")
			macros, err := resolver.SuggestMacros(ctx, issue)
			s.Stop()
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), models.SuggestResponse{
					Suggestions: models.MacroSuggestions{Macros: macros},
				})
			}
			for _, m := range macros {
				fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(m))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	return cmd
}
