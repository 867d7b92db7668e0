// Package statusline renders a one-line terminal status display from the
// session snapshot the host runtime pipes to stdin: model name, workspace
// directory, git branch and session metrics (cost, duration, net line
// changes). Any failure degrades to a minimal fallback line; the renderer
// never errors out.
package statusline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Status is the session snapshot the host runtime writes to the renderer.
type Status struct {
	Model     Model     `json:"model"`
	Workspace Workspace `json:"workspace"`
	Cost      Cost      `json:"cost"`
}

// Model identifies the model serving the session.
type Model struct {
	DisplayName string `json:"display_name"`
}

// Workspace locates the session on disk.
type Workspace struct {
	CurrentDir string `json:"current_dir"`
	ProjectDir string `json:"project_dir"`
}

// Cost carries the session's running totals.
type Cost struct {
	TotalCostUSD      float64 `json:"total_cost_usd"`
	TotalDurationMS   int64   `json:"total_duration_ms"`
	TotalLinesAdded   int64   `json:"total_lines_added"`
	TotalLinesRemoved int64   `json:"total_lines_removed"`
}

const (
	defaultModelName = "Claude"
	branchTimeout    = time.Second
)

// Renderer produces status lines. The git lookup is a field so tests can
// substitute it.
type Renderer struct {
	lookupBranch func(ctx context.Context) string
}

// New creates a Renderer backed by the local git binary.
func New() *Renderer {
	return &Renderer{lookupBranch: gitBranch}
}

// Render reads one session snapshot from input and returns the status line.
func (r *Renderer) Render(ctx context.Context, input io.Reader) string {
	var status Status
	if err := json.NewDecoder(input).Decode(&status); err != nil {
		return fallbackLine(err)
	}

	modelName := status.Model.DisplayName
	if modelName == "" {
		modelName = defaultModelName
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgHiBlue).Sprintf("[%s]", modelName))
	b.WriteString(" ")
	b.WriteString(color.New(color.FgHiYellow).Sprintf("📁 %s", directoryDisplay(status.Workspace)))

	if branch := r.lookupBranch(ctx); branch != "" {
		b.WriteString(" ")
		b.WriteString(color.New(color.FgHiMagenta).Sprintf("⎇ %s", branch))
	}

	if metrics := sessionMetrics(status.Cost); metrics != "" {
		b.WriteString(" ")
		b.WriteString(color.New(color.Faint).Sprint("|"))
		b.WriteString(" ")
		b.WriteString(metrics)
	}

	return b.String()
}

// directoryDisplay prefers the path relative to the project root, then falls
// back through the directory basenames.
func directoryDisplay(ws Workspace) string {
	switch {
	case ws.CurrentDir != "" && ws.ProjectDir != "":
		if strings.HasPrefix(ws.CurrentDir, ws.ProjectDir) {
			rel := strings.TrimLeft(strings.TrimPrefix(ws.CurrentDir, ws.ProjectDir), "/")
			if rel != "" {
				return rel
			}
			return filepath.Base(ws.ProjectDir)
		}
		return filepath.Base(ws.CurrentDir)
	case ws.ProjectDir != "":
		return filepath.Base(ws.ProjectDir)
	case ws.CurrentDir != "":
		return filepath.Base(ws.CurrentDir)
	default:
		return "unknown"
	}
}

func sessionMetrics(cost Cost) string {
	var metrics []string

	if cost.TotalCostUSD > 0 {
		metrics = append(metrics, costColor(cost.TotalCostUSD).Sprintf("💰 %s", costDisplay(cost.TotalCostUSD)))
	}

	if cost.TotalDurationMS > 0 {
		metrics = append(metrics, durationColor(cost.TotalDurationMS).Sprintf("⏱ %s", durationDisplay(cost.TotalDurationMS)))
	}

	if cost.TotalLinesAdded > 0 || cost.TotalLinesRemoved > 0 {
		net := cost.TotalLinesAdded - cost.TotalLinesRemoved
		sign := ""
		if net >= 0 {
			sign = "+"
		}
		metrics = append(metrics, linesColor(net).Sprintf("📝 %s%d", sign, net))
	}

	return strings.Join(metrics, " ")
}

func costDisplay(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("%.0f¢", usd*100)
	}
	return fmt.Sprintf("$%.3f", usd)
}

func costColor(usd float64) *color.Color {
	switch {
	case usd >= 0.10:
		return color.New(color.FgRed)
	case usd >= 0.05:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func durationDisplay(ms int64) string {
	minutes := float64(ms) / 60000
	if minutes < 1 {
		return fmt.Sprintf("%ds", ms/1000)
	}
	return fmt.Sprintf("%.0fm", minutes)
}

func durationColor(ms int64) *color.Color {
	if float64(ms)/60000 >= 30 {
		return color.New(color.FgYellow)
	}
	return color.New(color.FgGreen)
}

func linesColor(net int64) *color.Color {
	switch {
	case net > 0:
		return color.New(color.FgGreen)
	case net < 0:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// gitBranch asks git for the current branch with a short timeout, returning
// an empty string when there is none to show.
func gitBranch(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, branchTimeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "branch", "--show-current")
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return ""
	}

	return strings.TrimSpace(stdout.String())
}

// fallbackLine mirrors the degraded display: model tag, current directory,
// truncated error.
func fallbackLine(err error) string {
	cwd, wdErr := os.Getwd()
	if wdErr != nil {
		cwd = "unknown"
	}

	detail := err.Error()
	if len(detail) > 20 {
		detail = detail[:20]
	}

	return fmt.Sprintf("%s %s %s",
		color.New(color.FgHiBlue).Sprintf("[%s]", defaultModelName),
		color.New(color.FgHiYellow).Sprintf("📁 %s", filepath.Base(cwd)),
		color.New(color.FgRed).Sprintf("[Error: %s]", detail))
}
