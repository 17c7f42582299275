package web

import (
	"net/url"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
)

const (
	galleryProjects = "projects"
	gallerySkills   = "skills"

	emptyProjectsMessage = "No projects found with the selected filter."
	emptySkillsMessage   = "No skills found in the selected category."
)

// pageState is the pair of active filters encoded in the page URL.
type pageState struct {
	Project string
	Skill   string
}

func (s pageState) query() url.Values {
	q := url.Values{}
	if s.Project != portfolio.All {
		q.Set("project", s.Project)
	}
	if s.Skill != portfolio.All {
		q.Set("skill", s.Skill)
	}
	return q
}

// pageURL links to the full page with this state, optionally scrolled to anchor.
func (s pageState) pageURL(anchor string) string {
	u := url.URL{Path: "/", RawQuery: s.query().Encode()}
	if anchor != "" {
		u.Fragment = anchor
	}
	return u.String()
}

func (s pageState) fragmentURL(gallery string) string {
	q := s.query()
	if gallery == galleryProjects {
		q.Del("project")
		q.Set("filter", s.Project)
	} else {
		q.Del("skill")
		q.Set("filter", s.Skill)
	}
	u := url.URL{Path: "/" + gallery, RawQuery: q.Encode()}
	return u.String()
}

type filterButton struct {
	Label   string
	Value   string
	Active  bool
	Href    string
	HXGet   string
	PushURL string
}

type projectCard struct {
	portfolio.Project
	ImageAlt string
}

type projectsView struct {
	Active  string
	Filters []filterButton
	Cards   []projectCard
	Empty   string
}

type skillsView struct {
	Active  string
	Filters []filterButton
	Skills  []portfolio.TechSkill
	Empty   string
}

type navLink struct {
	Label  string
	Anchor string
}

type pageData struct {
	Profile    portfolio.Profile
	Nav        []navLink
	Projects   projectsView
	Skills     skillsView
	Experience []portfolio.Experience
	Year       int
}

var sectionNav = []navLink{
	{Label: "About", Anchor: "about"},
	{Label: "Projects", Anchor: "projects"},
	{Label: "Experience", Anchor: "experience"},
	{Label: "Contact", Anchor: "contact"},
}

// displayLabel capitalises a filter label for its button.
func displayLabel(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

func filterButtons(categories []string, state pageState, gallery string) []filterButton {
	buttons := make([]filterButton, 0, len(categories))
	for _, c := range categories {
		next := state
		active := state.Project
		if gallery == galleryProjects {
			next.Project = c
		} else {
			next.Skill = c
			active = state.Skill
		}
		buttons = append(buttons, filterButton{
			Label:   displayLabel(c),
			Value:   c,
			Active:  c == active,
			Href:    next.pageURL(gallery),
			HXGet:   next.fragmentURL(gallery),
			PushURL: next.pageURL(""),
		})
	}
	return buttons
}

func newProjectsView(projects []portfolio.Project, state pageState) projectsView {
	filtered := portfolio.FilterProjects(projects, state.Project)
	v := projectsView{
		Active:  state.Project,
		Filters: filterButtons(portfolio.ProjectCategories(projects), state, galleryProjects),
		Cards:   make([]projectCard, 0, len(filtered)),
	}
	for _, p := range filtered {
		v.Cards = append(v.Cards, projectCard{Project: p, ImageAlt: p.Title + " thumbnail"})
	}
	if len(filtered) == 0 {
		v.Empty = emptyProjectsMessage
	}
	return v
}

func newSkillsView(skills []portfolio.TechSkill, state pageState) skillsView {
	v := skillsView{
		Active:  state.Skill,
		Filters: filterButtons(portfolio.SkillCategories(skills), state, gallerySkills),
		Skills:  portfolio.FilterSkills(skills, state.Skill),
	}
	if len(v.Skills) == 0 {
		v.Empty = emptySkillsMessage
	}
	return v
}

func newPageData(content portfolio.Content, state pageState, now time.Time) pageData {
	return pageData{
		Profile:    content.Profile,
		Nav:        sectionNav,
		Projects:   newProjectsView(content.Projects, state),
		Skills:     newSkillsView(content.Skills, state),
		Experience: content.Experience,
		Year:       now.Year(),
	}
}
