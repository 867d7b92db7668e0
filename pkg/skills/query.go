package skills

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Group is one category's worth of query results, names ascending.
type Group struct {
	Category string
	Skills   []*Skill
}

// Query filters the catalog by an optional pattern and returns the matches
// grouped by category. Categories and names sort ascending so the output is
// fully deterministic. An empty pattern matches everything; zero matches is
// an empty, successful result.
//
// The pattern is a case-insensitive regular expression matched against the
// concatenation of name, description, when_to_use and category. A pattern
// that fails to compile degrades to case-insensitive substring matching.
func (r *Registry) Query(pattern string) []Group {
	match := newMatcher(pattern)

	byCategory := make(map[string][]*Skill)
	for _, skill := range r.Skills {
		if match(skill) {
			byCategory[skill.Category] = append(byCategory[skill.Category], skill)
		}
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	groups := make([]Group, 0, len(categories))
	for _, category := range categories {
		members := byCategory[category]
		sort.Slice(members, func(i, j int) bool {
			return members[i].Name < members[j].Name
		})
		groups = append(groups, Group{Category: category, Skills: members})
	}

	return groups
}

func newMatcher(pattern string) func(*Skill) bool {
	if pattern == "" {
		return func(*Skill) bool { return true }
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		needle := strings.ToLower(pattern)
		return func(s *Skill) bool {
			return strings.Contains(strings.ToLower(searchText(s)), needle)
		}
	}

	return func(s *Skill) bool {
		return re.MatchString(searchText(s))
	}
}

func searchText(s *Skill) string {
	return strings.Join([]string{s.Name, s.Description, s.WhenToUse, s.Category}, "\n")
}

// RenderGroups formats query results as a human-readable listing with
// category headers. The same text serves the find command and the
// session-start context injection.
func RenderGroups(groups []Group) string {
	var b strings.Builder

	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", group.Category)

		for _, skill := range group.Skills {
			fmt.Fprintf(&b, "- %s (%s): %s\n", skill.Name, skill.ID, skill.Description)
			fmt.Fprintf(&b, "  When to use: %s\n", skill.WhenToUse)
			if langs := renderLanguages(skill.Languages); langs != "" {
				fmt.Fprintf(&b, "  Languages: %s\n", langs)
			}
		}
	}

	return b.String()
}

func renderLanguages(languages []string) string {
	if len(languages) == 0 {
		return ""
	}
	if len(languages) == 1 && languages[0] == LanguageAll {
		return ""
	}
	return strings.Join(languages, ", ")
}
