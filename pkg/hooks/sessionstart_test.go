package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/skills"
)

func writeSkill(t *testing.T, root, relDir, name, description, whenToUse, body string) {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(relDir))
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := fmt.Sprintf("---\nname: %s\ndescription: %s\nwhen_to_use: %s\n---\n\n%s", name, description, whenToUse, body)
	require.NoError(t, os.WriteFile(filepath.Join(dir, skills.SkillFileName), []byte(content), 0o644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	configDir := t.TempDir()
	return &config.Config{
		ConfigDir:    configDir,
		SkillsDir:    filepath.Join(configDir, "skills"),
		IntroSkill:   "getting-started",
		DebugLogPath: filepath.Join(configDir, "debug.log"),
	}
}

func emitAndParse(t *testing.T, output *SessionStartOutput) SessionStartOutput {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, output.Emit(&buf))

	var parsed SessionStartOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "hook output must be a single valid JSON object")
	return parsed
}

func TestBuildSessionStart(t *testing.T) {
	cfg := testConfig(t)
	writeSkill(t, cfg.SkillsDir, "analysis/code-archaeology", "code-archaeology", "Dig through unfamiliar code", "When exploring a legacy codebase", "# Archaeology\n")
	writeSkill(t, cfg.SkillsDir, "getting-started", "getting-started", "Introduction to the skill system", "At the start of every session", "Welcome to the skill system.\n")

	output := NewSessionStartBuilder(cfg).Build(context.Background())
	parsed := emitAndParse(t, output)

	assert.Equal(t, SessionStartEvent, parsed.HookSpecificOutput.HookEventName)

	injected := parsed.HookSpecificOutput.AdditionalContext
	assert.Contains(t, injected, "code-archaeology")
	assert.Contains(t, injected, "When exploring a legacy codebase")
	assert.Contains(t, injected, "Welcome to the skill system.")
}

func TestBuildSessionStartMissingIntro(t *testing.T) {
	cfg := testConfig(t)
	writeSkill(t, cfg.SkillsDir, "analysis/code-archaeology", "code-archaeology", "d", "w", "body\n")
	// No getting-started document exists

	output := NewSessionStartBuilder(cfg).Build(context.Background())
	parsed := emitAndParse(t, output)

	assert.Equal(t, SessionStartEvent, parsed.HookSpecificOutput.HookEventName)
	assert.Contains(t, parsed.HookSpecificOutput.AdditionalContext, "introductory skill document unavailable")
	assert.Contains(t, parsed.HookSpecificOutput.AdditionalContext, "code-archaeology",
		"a missing intro degrades only its own section")
}

func TestBuildSessionStartMissingSkillsRoot(t *testing.T) {
	cfg := testConfig(t)
	// SkillsDir was never created

	output := NewSessionStartBuilder(cfg).Build(context.Background())
	parsed := emitAndParse(t, output)

	assert.Contains(t, parsed.HookSpecificOutput.AdditionalContext, "skill catalog unavailable")
}

func TestBuildSessionStartEmptyCatalog(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.SkillsDir, 0o755))

	output := NewSessionStartBuilder(cfg).Build(context.Background())
	parsed := emitAndParse(t, output)

	assert.Contains(t, parsed.HookSpecificOutput.AdditionalContext, "no skills are currently installed")
}

func TestSessionStartEscapingRoundTrip(t *testing.T) {
	// Arbitrary combinations of backslash, double-quote and newline must
	// survive serialization and re-parsing exactly.
	inputs := []string{
		`plain text`,
		"line one\nline two\n",
		`back\slash`,
		`quoted "text" here`,
		"mixed \\ and \" and \n all together",
		`\n literal backslash-n`,
		"\\\"\n\\\\\"",
		"trailing backslash \\",
	}

	for _, input := range inputs {
		output := &SessionStartOutput{
			HookSpecificOutput: HookSpecificOutput{
				HookEventName:     SessionStartEvent,
				AdditionalContext: input,
			},
		}
		parsed := emitAndParse(t, output)
		assert.Equal(t, input, parsed.HookSpecificOutput.AdditionalContext)
	}
}

func TestSessionStartPayloadWireShape(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, NewSessionStartBuilder(cfg).Build(context.Background()).Emit(&buf))

	var generic map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &generic))

	inner, ok := generic["hookSpecificOutput"]
	require.True(t, ok)
	assert.Equal(t, "SessionStart", inner["hookEventName"])
	_, ok = inner["additionalContext"].(string)
	assert.True(t, ok)
}

func TestAppendDebugLog(t *testing.T) {
	cfg := testConfig(t)
	builder := NewSessionStartBuilder(cfg)

	builder.AppendDebugLog(context.Background())
	builder.AppendDebugLog(context.Background())

	data, err := os.ReadFile(cfg.DebugLogPath)
	require.NoError(t, err)

	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 2, lines, "one line per invocation, append-only")
	assert.Contains(t, string(data), "session-start")
	assert.Contains(t, string(data), "invocation=")
}

func TestAppendDebugLogFailureIsIgnored(t *testing.T) {
	cfg := testConfig(t)
	cfg.DebugLogPath = filepath.Join(cfg.ConfigDir, "no-such-dir", "debug.log")

	// Must not panic or error; pure observability
	NewSessionStartBuilder(cfg).AppendDebugLog(context.Background())
}
