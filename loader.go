package ignore

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// AddPatternFile reads an ignore file through fsys and appends its
// patterns. The filesystem is abstracted so callers can load from overlay
// or in-memory filesystems; pass afero.NewOsFs() for the real disk.
func (m *Matcher) AddPatternFile(fsys afero.Fs, path string) error {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return errors.Wrapf(err, "reading ignore file %s", path)
	}
	m.AddPatterns(content)
	return nil
}

// AddGlobalPatterns loads the user's global gitignore file and appends its
// patterns. The global gitignore path is resolved in order:
//
//  1. git config --global core.excludesFile (if git is available)
//  2. $XDG_CONFIG_HOME/git/ignore (if XDG_CONFIG_HOME is set)
//  3. ~/.config/git/ignore (default fallback)
//
// If the resolved file does not exist, AddGlobalPatterns returns nil.
// Other read failures, and failures to resolve the path (an unknown home
// directory or ~user), are returned as errors.
func (m *Matcher) AddGlobalPatterns(fsys afero.Fs) error {
	path, err := resolveGlobalIgnorePath()
	if err != nil {
		return errors.Wrap(err, "resolving global gitignore path")
	}
	if path == "" {
		return nil
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "reading global gitignore %s", path)
	}

	m.AddPatterns(content)
	return nil
}

// resolveGlobalIgnorePath determines the path to the global gitignore
// file. It tries git config first, then falls back to XDG conventions.
// Returns an error when the home directory needed for ~ expansion or for
// the ~/.config fallback cannot be determined.
func resolveGlobalIgnorePath() (string, error) {
	path, err := gitConfigExcludesFile()
	if err != nil {
		return "", err
	}
	if path != "" {
		return path, nil
	}
	return xdgGlobalIgnorePath()
}

// gitConfigExcludesFile reads the global core.excludesFile from git
// config. Returns empty string if git is not available or the key is not
// set.
func gitConfigExcludesFile() (string, error) {
	cmd := exec.Command("git", "config", "--global", "core.excludesFile")
	out, err := cmd.Output()
	if err != nil {
		// git not installed, key not set, or other error; fall through.
		return "", nil
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", nil
	}
	return expandTilde(path)
}

// xdgGlobalIgnorePath returns the XDG-based global gitignore path.
// Uses $XDG_CONFIG_HOME/git/ignore if set, otherwise ~/.config/git/ignore.
func xdgGlobalIgnorePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "determining home directory")
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}

// expandTilde expands ~ and ~user prefixes in a path.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	var userPart, rest string
	if i := strings.IndexByte(path, '/'); i >= 0 {
		userPart = path[:i]
		rest = path[i:]
	} else {
		userPart = path
	}

	var homeDir string
	if userPart == "~" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "expanding ~")
		}
		homeDir = dir
	} else {
		username := userPart[1:]
		u, err := user.Lookup(username)
		if err != nil {
			return "", errors.Wrapf(err, "expanding %s", userPart)
		}
		homeDir = u.HomeDir
	}

	return homeDir + rest, nil
}
