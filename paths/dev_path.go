//go:build !release

package paths

import (
	"os"
	"path/filepath"
)

const gopherConfigDir = ".gopherchip"

// the base path for development builds is a dot-directory in the current
// working directory
func getBasePath(subPth string) (string, error) {
	pth := filepath.Join(gopherConfigDir, subPth)

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
