// Package root locates the plugin tree that aurdeps operates on.
package root

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// MarkerDir is the directory that identifies a plugin root.
const MarkerDir = "ThirdParty"

// FindPluginRoot walks up from start looking for a directory that contains ThirdParty.
// It returns found=false when no ancestor qualifies.
func FindPluginRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.RootResolvePathFmt, start, err)
	}
	for {
		marker := filepath.Join(dir, MarkerDir)
		info, err := os.Stat(marker)
		switch {
		case err == nil && info.IsDir():
			return dir, true, nil
		case err == nil:
			return "", false, fmt.Errorf(messages.RootMarkerNotDirFmt, marker)
		case !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf(messages.RootStatFailedFmt, marker, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
