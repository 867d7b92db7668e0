package skills

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// requiredKeys are the frontmatter keys a document must carry with non-empty
// values to enter the valid set.
var requiredKeys = []string{"name", "description", "when_to_use"}

// knownKeys are consumed into typed Skill fields; everything else lands in
// Skill.Meta unexamined.
var knownKeys = map[string]bool{
	"name":        true,
	"description": true,
	"when_to_use": true,
	"version":     true,
	"languages":   true,
}

// ParseDocument parses raw document text into a Skill. The YAML frontmatter
// header is validated; the body after the closing delimiter is preserved
// byte-for-byte. Pure function of its input, no filesystem access.
func ParseDocument(path string, raw []byte) (*Skill, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(raw, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	for _, key := range requiredKeys {
		if strings.TrimSpace(stringValue(metaData[key])) == "" {
			return nil, errors.Errorf("frontmatter key '%s' is required", key)
		}
	}

	extra := make(map[string]interface{})
	for k, v := range metaData {
		if !knownKeys[k] {
			extra[k] = v
		}
	}

	return &Skill{
		Name:        stringValue(metaData["name"]),
		Description: stringValue(metaData["description"]),
		WhenToUse:   stringValue(metaData["when_to_use"]),
		Version:     stringValue(metaData["version"]),
		Languages:   stringList(metaData["languages"]),
		Directory:   path,
		Content:     extractBody(string(raw)),
		Meta:        extra,
	}, nil
}

// stringValue coerces a frontmatter value to string. YAML turns bare version
// numbers into floats, so non-string scalars are formatted rather than dropped.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// stringList coerces a frontmatter value to a list of strings. A bare scalar
// (e.g. "all") is treated as a single-element list.
func stringList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, stringValue(item))
		}
		return out
	default:
		return []string{stringValue(val)}
	}
}

// extractBody removes the YAML frontmatter block and returns the body exactly
// as written, including any leading blank lines.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.SplitAfter(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[i+1:], "")
		}
	}

	return content
}
