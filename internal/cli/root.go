package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadefarragut/PortfolioV2/internal/printer"
)

// NewRootCommand assembles the portfolio command tree.
func NewRootCommand(p *printer.Printer, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio website",
		Long: `portfolio serves a personal portfolio site: a hero section, a filterable
project gallery, a technical skills grid and an experience timeline.

Content comes from the built-in sample set or from a YAML file given by
PORTFOLIO_CONTENT or --content.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(p.Stdout)
	root.SetErr(p.Stderr)

	root.AddCommand(newServeCommand(p))
	root.AddCommand(newCheckCommand(p))
	root.AddCommand(newListCommand(p))
	return root
}

// Execute runs the command tree with the process arguments.
func Execute(version string) error {
	p := printer.New()
	if err := NewRootCommand(p, version).Execute(); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	return nil
}
