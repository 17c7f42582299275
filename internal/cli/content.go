package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
	"github.com/cadefarragut/PortfolioV2/internal/printer"
)

func contentPath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("PORTFOLIO_CONTENT")
}

func newCheckCommand(p *printer.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "check [content.yml]",
		Short: "Validate a content file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := contentPath("")
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				p.Warning("no content file given, checking the built-in content\n")
			}

			c, err := portfolio.Load(path)
			if err != nil {
				var details []string
				if errors.Is(err, portfolio.ErrInvalidContent) {
					_, list, _ := strings.Cut(err.Error(), portfolio.ErrInvalidContent.Error()+": ")
					details = strings.Split(list, "; ")
				} else {
					details = []string{err.Error()}
				}
				return p.Error("Invalid content", details)
			}

			p.Success("content is valid\n")
			p.Info("  profile:     %s (%s)\n", c.Profile.Name, c.Profile.Title)
			p.Info("  projects:    %d, %d technologies\n", len(c.Projects), len(portfolio.ProjectCategories(c.Projects))-1)
			p.Info("  skills:      %d, categories %s\n", len(c.Skills), strings.Join(portfolio.SkillCategories(c.Skills)[1:], ", "))
			p.Info("  experience:  %d entries\n", len(c.Experience))
			return nil
		},
	}
}

func newListCommand(p *printer.Printer) *cobra.Command {
	var (
		filter  string
		content string
	)

	cmd := &cobra.Command{
		Use:       "list projects|skills",
		Short:     "Print a gallery with a filter applied",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"projects", "skills"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := portfolio.Load(contentPath(content))
			if err != nil {
				return p.Error("Failed to load content", []string{err.Error()})
			}
			active := portfolio.ActiveFilter(filter)

			if args[0] == "projects" {
				listProjects(p, c.Projects, active)
			} else {
				listSkills(p, c.Skills, active)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", portfolio.All, "category to filter by")
	cmd.Flags().StringVar(&content, "content", "", "YAML content file (default $PORTFOLIO_CONTENT or built-in)")
	return cmd
}

func printCategories(p *printer.Printer, categories []string, active string) {
	labels := make([]string, len(categories))
	for i, c := range categories {
		if c == active {
			c = "[" + c + "]"
		}
		labels[i] = c
	}
	p.Heading("Filters: %s\n\n", strings.Join(labels, "  "))
}

func listProjects(p *printer.Printer, projects []portfolio.Project, active string) {
	printCategories(p, portfolio.ProjectCategories(projects), active)

	filtered := portfolio.FilterProjects(projects, active)
	if len(filtered) == 0 {
		p.Warning("No projects found with the selected filter.\n")
		return
	}
	for _, pr := range filtered {
		p.Info("%s  %s\n", pr.ID, pr.Title)
		p.Info("    %s\n", strings.Join(pr.Technologies, ", "))
		if pr.DemoURL != "" {
			p.Info("    demo: %s\n", pr.DemoURL)
		}
		if pr.RepoURL != "" {
			p.Info("    code: %s\n", pr.RepoURL)
		}
	}
}

func listSkills(p *printer.Printer, skills []portfolio.TechSkill, active string) {
	printCategories(p, portfolio.SkillCategories(skills), active)

	filtered := portfolio.FilterSkills(skills, active)
	if len(filtered) == 0 {
		p.Warning("No skills found in the selected category.\n")
		return
	}
	for _, s := range filtered {
		p.Info("%-12s %-10s %3d%%\n", s.Name, s.Category, s.Proficiency)
	}
}
