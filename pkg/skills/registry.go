package skills

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skillPattern matches skill documents at any depth beneath the root.
const skillPattern = "**/" + SkillFileName

// Registry is a point-in-time catalog of the skill documents under one root:
// valid entries keyed by identifier plus the parse errors encountered while
// scanning. Read-only once returned.
type Registry struct {
	root   string
	Skills map[string]*Skill
	Errors []*ParseError
}

// Root returns the directory this registry was built from.
func (r *Registry) Root() string {
	return r.root
}

// BuildRegistry recursively scans root for skill documents and partitions the
// results into valid skills and per-document parse errors. One malformed
// document never aborts the scan. A missing or unreadable root returns
// RootNotFoundError rather than an empty catalog.
func BuildRegistry(root string) (*Registry, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &RootNotFoundError{Root: root}
	}

	reg := &Registry{
		root:   root,
		Skills: make(map[string]*Skill),
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			// Unreadable subtree: record and keep scanning the rest
			reg.Errors = append(reg.Errors, &ParseError{Path: p, Reason: err.Error()})
			return fs.SkipDir
		}

		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if ok, _ := doublestar.Match(skillPattern, rel); !ok {
			return nil
		}

		reg.add(p, rel)
		return nil
	})
	if err != nil {
		return nil, &RootNotFoundError{Root: root}
	}

	return reg, nil
}

// add parses one discovered document and files it under its path-derived
// identifier, or records the failure.
func (r *Registry) add(fullPath, rel string) {
	id := path.Dir(rel)
	if id == "." {
		r.Errors = append(r.Errors, &ParseError{
			Path:   fullPath,
			Reason: "skill document must live in its own directory beneath the root",
		})
		return
	}

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		r.Errors = append(r.Errors, &ParseError{Path: fullPath, Reason: err.Error()})
		return
	}

	skill, err := ParseDocument(fullPath, raw)
	if err != nil {
		r.Errors = append(r.Errors, &ParseError{Path: fullPath, Reason: err.Error()})
		return
	}

	skill.ID = id
	skill.Category = strings.SplitN(id, "/", 2)[0]
	skill.Directory = filepath.Dir(fullPath)
	r.Skills[id] = skill
}

// Get resolves a skill identifier, returning NotFoundError when absent.
func (r *Registry) Get(id string) (*Skill, error) {
	skill, exists := r.Skills[id]
	if !exists {
		return nil, &NotFoundError{ID: id}
	}
	return skill, nil
}
