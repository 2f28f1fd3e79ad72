package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/payoutbook-dev/payoutbook/internal/config"
)

// workspace is a resolved working directory with its configuration.
type workspace struct {
	dir string
	cfg *config.Config
	log zerolog.Logger
}

// openWorkspace validates dir and loads its configuration. A directory
// without a payoutbook.yaml gets defaults, so plain RawDB directories
// created by older tooling still work.
func openWorkspace(dir string, log zerolog.Logger) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("no such directory: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	return &workspace{dir: absDir, cfg: cfg, log: log}, nil
}

// ledgerPath returns the full path to the workspace's ledger file.
func (ws *workspace) ledgerPath() string {
	return filepath.Join(ws.dir, ws.cfg.Ledger.File)
}

// resolve turns a possibly-relative file name into a workspace path.
func (ws *workspace) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ws.dir, name)
}
