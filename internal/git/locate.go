package git

import (
	"os"
	"path/filepath"
	"strings"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// Location describes where the working directory sits relative to a repository
type Location struct {
	WorkingDir string
	// HeadPath is the absolute path of the nearest .git/HEAD. Empty when InsideMetadata is set.
	HeadPath string
	// InsideMetadata is set when a segment of WorkingDir is exactly ".git".
	InsideMetadata bool
}

// Locate resolves the repository context for workingDir.
// It returns errors.ErrNotARepository when neither the metadata special case
// nor any ancestor HEAD file applies.
func Locate(workingDir string) (Location, error) {
	loc := Location{WorkingDir: workingDir}
	if InsideMetadataDir(workingDir) {
		loc.InsideMetadata = true
		return loc, nil
	}

	headPath, ok := FindHeadFile(workingDir)
	if !ok {
		return loc, gperrors.ErrNotARepository
	}
	loc.HeadPath = headPath
	return loc, nil
}

// InsideMetadataDir reports whether any segment of path is exactly ".git".
// The whole path is scanned, not just the part below a repository root.
func InsideMetadataDir(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if segment == config.MetadataDirName {
			return true
		}
	}
	return false
}

// FindHeadFile walks from start up to the filesystem root, returning the first
// <dir>/.git/HEAD that exists as a regular file. Nearest ancestor wins.
func FindHeadFile(start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, config.MetadataDirName, config.HeadFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root of filesystem
			return "", false
		}
		dir = parent
	}
}
