package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/config"
	"scentsurvey/internal/logging"
	"scentsurvey/internal/results"
	"scentsurvey/internal/scoring"
)

// project bundles everything a command needs after config discovery.
type project struct {
	configPath string
	baseDir    string
	cfg        config.Config
	bundle     catalog.Bundle
	logger     *log.Logger
}

// loadProject resolves the config, loads the catalogs and builds the logger.
// Without an explicit path and without a discoverable config, defaults are
// used relative to the working directory.
func loadProject(configPath string, stderr io.Writer) (project, error) {
	var p project
	resolved, err := resolveConfigPath(configPath)
	switch {
	case err == nil:
		cfg, err := config.Load(resolved)
		if err != nil {
			return project{}, err
		}
		p = project{configPath: resolved, baseDir: config.BaseDir(resolved), cfg: cfg}
	case strings.TrimSpace(configPath) == "" && errors.Is(err, config.ErrConfigNotFound):
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return project{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		p = project{baseDir: wd, cfg: config.Default()}
	default:
		return project{}, err
	}

	logger, err := logging.New(stderr, p.cfg.Log.Level)
	if err != nil {
		return project{}, err
	}
	p.logger = logger
	bundle, err := catalog.LoadBundle(p.cfg.CatalogPaths(p.baseDir))
	if err != nil {
		return project{}, err
	}
	p.bundle = bundle
	p.logger.Debug("loaded catalogs", "config", p.configPath, "questions", len(bundle.Questions), "categories", len(bundle.Categories()))
	return p, nil
}

// engine returns a scoring engine using the configured policy.
func (p project) engine() *scoring.Engine {
	return scoring.NewEngine(p.bundle, p.cfg.Policy())
}

// openStore opens the configured result database.
func (p project) openStore(ctx context.Context) (*results.Store, error) {
	path := config.Resolve(p.baseDir, p.cfg.Storage.Path)
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	p.logger.Debug("opening result store", "path", path)
	return results.Open(ctx, path, p.logger)
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
