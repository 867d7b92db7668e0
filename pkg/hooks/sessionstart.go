package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/logger"
	"github.com/skillctl/skillctl/pkg/skills"
)

// SessionStartBuilder assembles the session-start context payload. Single
// shot: one Build per hook invocation, no state survives it.
type SessionStartBuilder struct {
	cfg *config.Config
	now func() time.Time
}

// NewSessionStartBuilder creates a builder over paths resolved at process start.
func NewSessionStartBuilder(cfg *config.Config) *SessionStartBuilder {
	return &SessionStartBuilder{
		cfg: cfg,
		now: time.Now,
	}
}

// Build assembles the payload. Every step is independently fault-tolerant:
// a failed catalog query or an unreadable introductory document substitutes
// fixed fallback text carrying the error detail, never an error return.
func (b *SessionStartBuilder) Build(ctx context.Context) *SessionStartOutput {
	catalog := b.catalogText(ctx)
	intro := b.introText(ctx)

	return &SessionStartOutput{
		HookSpecificOutput: HookSpecificOutput{
			HookEventName:     SessionStartEvent,
			AdditionalContext: composeContext(catalog, intro),
		},
	}
}

// catalogText queries the full catalog in process and renders it. The query
// engine returns structured groups, so the text is serialized exactly once
// by the JSON encoder with no intermediate escaping.
func (b *SessionStartBuilder) catalogText(ctx context.Context) string {
	reg, err := skills.BuildRegistry(b.cfg.SkillsDir)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("skill catalog unavailable")
		return fmt.Sprintf("(skill catalog unavailable: %v)", err)
	}

	for _, parseErr := range reg.Errors {
		logger.G(ctx).WithField("path", parseErr.Path).WithField("reason", parseErr.Reason).
			Debug("skipping malformed skill document")
	}

	groups := reg.Query("")
	if len(groups) == 0 {
		return "(no skills are currently installed)"
	}

	return skills.RenderGroups(groups)
}

// introText reads the designated introductory document raw and in full.
func (b *SessionStartBuilder) introText(ctx context.Context) string {
	path := filepath.Join(b.cfg.SkillsDir, filepath.FromSlash(b.cfg.IntroSkill), skills.SkillFileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("introductory skill document unavailable")
		return fmt.Sprintf("(introductory skill document unavailable: %v)", err)
	}

	return string(raw)
}

func composeContext(catalog, intro string) string {
	var b strings.Builder

	b.WriteString("# Available Skills\n\n")
	b.WriteString("The following skills are installed. When a skill's trigger condition applies to the task at hand, ")
	b.WriteString("run `skillctl run <skill-id>` to load it.\n\n")
	b.WriteString(catalog)
	b.WriteString("\n\n# Getting Started\n\n")
	b.WriteString(intro)

	return b.String()
}

// Emit writes the payload to w exactly once as a single JSON object. The
// struct goes through encoding/json, so backslashes, quotes and newlines in
// the context text are escaped correctly by construction.
func (o *SessionStartOutput) Emit(w io.Writer) error {
	data, err := json.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session-start payload")
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return errors.Wrap(err, "failed to write session-start payload")
}

// AppendDebugLog appends one timestamped line to the write-only debug log.
// Pure observability: a write failure is logged and otherwise ignored, it
// must never fail the hook.
func (b *SessionStartBuilder) AppendDebugLog(ctx context.Context) {
	f, err := os.OpenFile(b.cfg.DebugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("failed to open hook debug log")
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%s session-start invocation=%s skills_dir=%s\n",
		b.now().UTC().Format(time.RFC3339), uuid.NewString(), b.cfg.SkillsDir)

	if _, err := f.WriteString(line); err != nil {
		logger.G(ctx).WithError(err).Debug("failed to write hook debug log")
	}
}
