package portfolio

// SkillCategory groups technical skills. The set is closed, see Valid.
type SkillCategory string

const (
	CategoryLanguage  SkillCategory = "language"
	CategoryFramework SkillCategory = "framework"
	CategoryTools     SkillCategory = "tools"
	CategoryDatabase  SkillCategory = "database"
)

// Valid reports whether c is one of the known skill categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryLanguage, CategoryFramework, CategoryTools, CategoryDatabase:
		return true
	}
	return false
}

// Project is one entry of the projects gallery.
type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	ImageURL     string   `yaml:"image_url" json:"image_url"`
	DemoURL      string   `yaml:"demo_url,omitempty" json:"demo_url,omitempty"`
	RepoURL      string   `yaml:"repo_url,omitempty" json:"repo_url,omitempty"`
}

// TechSkill is one tile of the technical skills grid.
type TechSkill struct {
	Name        string        `yaml:"name" json:"name"`
	Icon        string        `yaml:"icon" json:"icon"`
	Proficiency int           `yaml:"proficiency" json:"proficiency"` // 0-100
	Category    SkillCategory `yaml:"category" json:"category"`
}

// Experience is one entry of the professional experience timeline.
type Experience struct {
	Role    string `yaml:"role" json:"role"`
	Company string `yaml:"company" json:"company"`
	Start   string `yaml:"start" json:"start"`
	End     string `yaml:"end" json:"end"`
	Summary string `yaml:"summary" json:"summary"`
}

// Profile holds the hero section and the professional links.
type Profile struct {
	Name            string `yaml:"name" json:"name"`
	Title           string `yaml:"title" json:"title"`
	Biography       string `yaml:"biography" json:"biography"`
	ResumeURL       string `yaml:"resume_url" json:"resume_url"`
	LinkedInURL     string `yaml:"linkedin_url" json:"linkedin_url"`
	GitHubURL       string `yaml:"github_url" json:"github_url"`
	Email           string `yaml:"email" json:"email"`
	ProfileImageURL string `yaml:"profile_image_url" json:"profile_image_url"`
}

// Content is everything the page renders. It is built once at startup and
// only read afterwards.
type Content struct {
	Profile    Profile      `yaml:"profile"`
	Projects   []Project    `yaml:"projects"`
	Skills     []TechSkill  `yaml:"skills"`
	Experience []Experience `yaml:"experience"`
}

// WithDefaults returns a copy of p where every empty field takes the
// built-in value.
func (p Profile) WithDefaults() Profile {
	d := DefaultProfile
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&p.Name, d.Name)
	fill(&p.Title, d.Title)
	fill(&p.Biography, d.Biography)
	fill(&p.ResumeURL, d.ResumeURL)
	fill(&p.LinkedInURL, d.LinkedInURL)
	fill(&p.GitHubURL, d.GitHubURL)
	fill(&p.Email, d.Email)
	fill(&p.ProfileImageURL, d.ProfileImageURL)
	return p
}

// WithDefaults returns a copy of c where the profile is completed and every
// empty collection is replaced by the built-in sample set.
func (c Content) WithDefaults() Content {
	c.Profile = c.Profile.WithDefaults()
	if len(c.Projects) == 0 {
		c.Projects = DefaultProjects
	}
	if len(c.Skills) == 0 {
		c.Skills = DefaultSkills
	}
	if len(c.Experience) == 0 {
		c.Experience = DefaultExperience
	}
	return c
}

// Default returns the built-in content.
func Default() Content {
	return Content{}.WithDefaults()
}
