package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cadefarragut/PortfolioV2/internal/contact"
	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
)

func stateFromQuery(c *gin.Context) pageState {
	return pageState{
		Project: portfolio.ActiveFilter(c.Query("project")),
		Skill:   portfolio.ActiveFilter(c.Query("skill")),
	}
}

// recordFilter logs a non-default selection of one of the gallery's own
// categories. Failures only get logged.
func (s *Server) recordFilter(c *gin.Context, gallery, category string) {
	if s.tracker == nil || category == portfolio.All || doNotTrack(c) {
		return
	}
	categories := portfolio.ProjectCategories(s.content.Projects)
	if gallery == gallerySkills {
		categories = portfolio.SkillCategories(s.content.Skills)
	}
	if !slices.Contains(categories, category) {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
	defer cancel()
	if err := s.tracker.RecordFilter(ctx, gallery, category); err != nil {
		s.logger.Printf("Error recording %s filter %q: %v", gallery, category, err)
	}
}

func (s *Server) home(c *gin.Context) {
	state := stateFromQuery(c)
	s.recordFilter(c, galleryProjects, state.Project)
	s.recordFilter(c, gallerySkills, state.Skill)

	c.HTML(http.StatusOK, "index.html", newPageData(s.content, state, s.now()))
}

func (s *Server) projectsFragment(c *gin.Context) {
	state := stateFromQuery(c)
	state.Project = portfolio.ActiveFilter(c.Query("filter"))
	s.recordFilter(c, galleryProjects, state.Project)

	c.HTML(http.StatusOK, "projects-gallery", newProjectsView(s.content.Projects, state))
}

func (s *Server) skillsFragment(c *gin.Context) {
	state := stateFromQuery(c)
	state.Skill = portfolio.ActiveFilter(c.Query("filter"))
	s.recordFilter(c, gallerySkills, state.Skill)

	c.HTML(http.StatusOK, "skills-grid", newSkillsView(s.content.Skills, state))
}

func (s *Server) apiProjects(c *gin.Context) {
	active := portfolio.ActiveFilter(c.Query("filter"))
	projects := portfolio.FilterProjects(s.content.Projects, active)
	c.JSON(http.StatusOK, gin.H{
		"filter":     active,
		"categories": portfolio.ProjectCategories(s.content.Projects),
		"projects":   projects,
		"empty":      len(projects) == 0,
	})
}

func (s *Server) apiSkills(c *gin.Context) {
	active := portfolio.ActiveFilter(c.Query("filter"))
	skills := portfolio.FilterSkills(s.content.Skills, active)
	c.JSON(http.StatusOK, gin.H{
		"filter":     active,
		"categories": portfolio.SkillCategories(s.content.Skills),
		"skills":     skills,
		"empty":      len(skills) == 0,
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", nil)
}

func (s *Server) submitContact(c *gin.Context) {
	msg := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}

	err := contact.ErrNotConfigured
	if s.mailer != nil {
		err = s.mailer.Send(c.Request.Context(), msg)
	}
	if err != nil {
		s.logger.Printf("Error sending contact email: %v", err)
		text := "Sorry, there was an error sending your message. Please try again later."
		if errors.Is(err, contact.ErrInvalidMessage) {
			text = "Please fill in your name, email and message."
		}
		// HTMX only swaps 2xx responses.
		c.HTML(http.StatusOK, "contact-error", text)
		return
	}

	c.HTML(http.StatusOK, "contact-success", "Thank you for your message! I'll get back to you soon.")
}

func (s *Server) privacy(c *gin.Context) {
	retention := "12 months"
	if days := int(s.retention.Hours() / 24); days > 0 {
		retention = fmt.Sprintf("%d days", days)
	}
	c.HTML(http.StatusOK, "privacy", gin.H{"Retention": retention})
}
