package statusline

import (
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer(branch string) *Renderer {
	return &Renderer{
		lookupBranch: func(context.Context) string { return branch },
	}
}

func withPlainColors(t *testing.T) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRender(t *testing.T) {
	withPlainColors(t)

	input := `{
		"model": {"display_name": "Opus"},
		"workspace": {"current_dir": "/home/dev/proj/pkg/api", "project_dir": "/home/dev/proj"},
		"cost": {"total_cost_usd": 0.042, "total_duration_ms": 754000, "total_lines_added": 120, "total_lines_removed": 30}
	}`

	line := newTestRenderer("main").Render(context.Background(), strings.NewReader(input))

	assert.Contains(t, line, "[Opus]")
	assert.Contains(t, line, "📁 pkg/api")
	assert.Contains(t, line, "⎇ main")
	assert.Contains(t, line, "💰 $0.042")
	assert.Contains(t, line, "⏱ 13m")
	assert.Contains(t, line, "📝 +90")
}

func TestRenderSubCentCost(t *testing.T) {
	withPlainColors(t)

	input := `{"model": {"display_name": "Haiku"}, "workspace": {"current_dir": "/tmp/x"}, "cost": {"total_cost_usd": 0.004}}`
	line := newTestRenderer("").Render(context.Background(), strings.NewReader(input))

	assert.Contains(t, line, "💰 0¢")
	assert.NotContains(t, line, "⎇", "no branch segment when git has nothing to report")
}

func TestRenderShortDuration(t *testing.T) {
	withPlainColors(t)

	input := `{"model": {"display_name": "M"}, "workspace": {"current_dir": "/tmp/x"}, "cost": {"total_duration_ms": 42000}}`
	line := newTestRenderer("").Render(context.Background(), strings.NewReader(input))

	assert.Contains(t, line, "⏱ 42s")
}

func TestRenderFallbackOnBadInput(t *testing.T) {
	withPlainColors(t)

	line := newTestRenderer("main").Render(context.Background(), strings.NewReader("not json"))

	assert.Contains(t, line, "[Claude]")
	assert.Contains(t, line, "[Error:")
}

func TestDirectoryDisplay(t *testing.T) {
	tests := []struct {
		name string
		ws   Workspace
		want string
	}{
		{
			name: "inside project",
			ws:   Workspace{CurrentDir: "/home/dev/proj/internal/db", ProjectDir: "/home/dev/proj"},
			want: "internal/db",
		},
		{
			name: "at project root",
			ws:   Workspace{CurrentDir: "/home/dev/proj", ProjectDir: "/home/dev/proj"},
			want: "proj",
		},
		{
			name: "outside project",
			ws:   Workspace{CurrentDir: "/etc/nginx", ProjectDir: "/home/dev/proj"},
			want: "nginx",
		},
		{
			name: "project only",
			ws:   Workspace{ProjectDir: "/home/dev/proj"},
			want: "proj",
		},
		{
			name: "current only",
			ws:   Workspace{CurrentDir: "/home/dev/other"},
			want: "other",
		},
		{
			name: "nothing known",
			ws:   Workspace{},
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directoryDisplay(tt.ws))
		})
	}
}
