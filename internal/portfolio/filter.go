package portfolio

import (
	"slices"
	"strings"
)

// All is the filter label that matches every item.
const All = "all"

// ActiveFilter turns a requested label into the filter state. The state is
// never empty: a blank request selects All.
func ActiveFilter(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return All
	}
	return raw
}

// Categories returns All followed by every distinct label produced by labels,
// in the order each label is first seen.
func Categories[T any](items []T, labels func(T) []string) []string {
	out := []string{All}
	seen := map[string]struct{}{All: {}}
	for _, item := range items {
		for _, l := range labels(item) {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// Filter returns the items for which match holds, keeping their order.
// With All the input is returned as is.
func Filter[T any](items []T, active string, match func(T, string) bool) []T {
	if active == All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, active) {
			out = append(out, item)
		}
	}
	return out
}

// ProjectCategories derives the project filter labels from the technology lists.
func ProjectCategories(projects []Project) []string {
	return Categories(projects, func(p Project) []string { return p.Technologies })
}

// FilterProjects keeps the projects that list tech among their technologies.
func FilterProjects(projects []Project, tech string) []Project {
	return Filter(projects, tech, func(p Project, t string) bool {
		return slices.Contains(p.Technologies, t)
	})
}

// SkillCategories derives the skill filter labels from the skill categories.
func SkillCategories(skills []TechSkill) []string {
	return Categories(skills, func(s TechSkill) []string { return []string{string(s.Category)} })
}

// FilterSkills keeps the skills whose category equals category.
func FilterSkills(skills []TechSkill, category string) []TechSkill {
	return Filter(skills, category, func(s TechSkill, c string) bool {
		return string(s.Category) == c
	})
}
