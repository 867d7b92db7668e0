// Package skills implements the skill-document registry: discovery and
// parsing of SKILL.md files under a root directory, catalog queries, and
// execution of a skill's companion artifact. The registry is rebuilt from
// disk on every call and never mutated after construction, so it always
// reflects the filesystem at call time.
package skills

import "fmt"

// SkillFileName is the document naming convention matched during discovery.
const SkillFileName = "SKILL.md"

// LanguageAll in the languages list marks a skill as universally applicable.
const LanguageAll = "all"

// Skill represents a discovered skill document: validated metadata plus the
// opaque body. The body is never parsed beyond the frontmatter split.
type Skill struct {
	ID          string                 // Path of the skill directory relative to the registry root, slash-separated
	Name        string                 // From frontmatter, required
	Description string                 // From frontmatter, required
	WhenToUse   string                 // Trigger condition for relevance, required
	Version     string                 // From frontmatter, optional
	Languages   []string               // From frontmatter, optional; "all" means universal
	Category    string                 // First segment of ID, derived
	Directory   string                 // Full path to the skill directory
	Content     string                 // Document body, preserved byte-for-byte
	Meta        map[string]interface{} // Frontmatter keys beyond the known set, kept for forward compatibility
}

// ParseError describes a single malformed skill document. Parse failures are
// contained per document and never abort a registry scan.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// RootNotFoundError indicates the registry root itself is missing or
// unreadable, as opposed to an existing root with nothing in it.
type RootNotFoundError struct {
	Root string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("skills root %s does not exist or is not readable", e.Root)
}

// NotFoundError indicates a skill identifier that resolves to nothing.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill '%s' not found", e.ID)
}

// ExecutionError indicates a skill artifact that ran and failed. ExitCode
// carries the artifact's status unchanged so callers can relay it.
type ExecutionError struct {
	ID       string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("skill '%s' failed with exit code %d: %v", e.ID, e.ExitCode, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
