// Package config resolves the root paths skillctl operates on. Paths are
// resolved exactly once at process start and passed by parameter into the
// registry, query, runner and hook constructors; nothing re-reads the
// environment after Load returns.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultIntroSkill is the skill injected verbatim at session start.
const DefaultIntroSkill = "getting-started"

// Config holds the resolved root paths for one process lifetime.
type Config struct {
	// ConfigDir is the host configuration root (default ~/.claude).
	ConfigDir string
	// SkillsDir is the registry root scanned for skill documents,
	// derived from ConfigDir unless overridden.
	SkillsDir string
	// IntroSkill is the id of the introductory document the session-start
	// hook reads in full.
	IntroSkill string
	// DebugLogPath is the append-only, write-only hook debug log.
	DebugLogPath string
}

// Load resolves the configuration from viper (env, config file, bound flags).
// Call it once from the root command and pass the result down.
func Load() (*Config, error) {
	configDir := viper.GetString("config_dir")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		configDir = filepath.Join(homeDir, ".claude")
	}

	skillsDir := viper.GetString("skills_dir")
	if skillsDir == "" {
		skillsDir = filepath.Join(configDir, "skills")
	}

	introSkill := viper.GetString("intro_skill")
	if introSkill == "" {
		introSkill = DefaultIntroSkill
	}

	debugLog := viper.GetString("debug_log")
	if debugLog == "" {
		debugLog = filepath.Join(configDir, "skillctl-debug.log")
	}

	return &Config{
		ConfigDir:    configDir,
		SkillsDir:    skillsDir,
		IntroSkill:   introSkill,
		DebugLogPath: debugLog,
	}, nil
}
