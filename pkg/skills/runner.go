package skills

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// artifactNames are the companion scripts a skill may ship, checked in order.
var artifactNames = []string{"run.sh", "run"}

// RunSkill resolves a skill identifier and executes its backing artifact,
// relaying the artifact's outcome unchanged. A skill without an executable
// artifact has its document body written to stdout instead (display mode).
// The runner is a transparent pass-through: it never interprets the
// artifact's behavior, only surfaces it.
func RunSkill(ctx context.Context, reg *Registry, id string, stdout, stderr io.Writer) error {
	skill, err := reg.Get(id)
	if err != nil {
		return err
	}

	artifact, ok := findArtifact(skill.Directory)
	if !ok {
		_, err := io.WriteString(stdout, skill.Content)
		return errors.Wrapf(err, "failed to display skill '%s'", id)
	}

	cmd := exec.CommandContext(ctx, artifact)
	cmd.Dir = skill.Directory
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecutionError{ID: id, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ExecutionError{ID: id, ExitCode: 1, Err: err}
	}

	return nil
}

// findArtifact locates the first executable companion script in dir.
func findArtifact(dir string) (string, bool) {
	for _, name := range artifactNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0o111 == 0 {
			continue
		}
		return path, true
	}
	return "", false
}
