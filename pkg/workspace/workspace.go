package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace represents the managed storage directory for rsa
type Workspace struct {
	RootPath    string
	DraftsPath  string
	ExportsPath string
	ConfigPath  string
}

// New creates a new Workspace instance with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine workspace root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return NewAt(rootPath, configPath), nil
}

// NewAt creates a Workspace rooted at an explicit directory
func NewAt(rootPath, configPath string) *Workspace {
	return &Workspace{
		RootPath:    rootPath,
		DraftsPath:  filepath.Join(rootPath, "drafts"),
		ExportsPath: filepath.Join(rootPath, "exports"),
		ConfigPath:  configPath,
	}
}

// getRoot returns the workspace root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getRoot() (string, error) {
	if dir := os.Getenv("RSA_HOME"); dir != "" {
		return dir, nil
	}

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "rsa"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "rsa"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "rsa"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "rsa", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "rsa-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "rsa", "config.yaml"), nil
}

// Initialize creates the workspace directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	for _, dir := range []string{w.RootPath, w.DraftsPath, w.ExportsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// DraftPath returns the full path for a draft file
func (w *Workspace) DraftPath(filename string) string {
	return filepath.Join(w.DraftsPath, filename)
}

// ExportPath returns the full path for an exported file
func (w *Workspace) ExportPath(filename string) string {
	return filepath.Join(w.ExportsPath, filename)
}

// BatchPath returns the path to the batch manifest
func (w *Workspace) BatchPath() string {
	return filepath.Join(w.RootPath, "batch.yaml")
}
