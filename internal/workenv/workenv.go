// Package workenv locates the data files folder-opener works from
package workenv

import (
	"os"
	"path/filepath"
)

const (
	// EnvDir overrides the directory holding the data files.
	EnvDir = "FOLDER_OPENER_DIR"

	LanguageFileName   = "folder_opener.languages"
	FolderListFileName = "folder_opener.folders"
)

// Paths holds the resolved locations of the two data files.
type Paths struct {
	Base       string
	Languages  string
	FolderList string
}

// GetBaseDir returns the directory the data files are read from. An empty
// result means the current working directory.
func GetBaseDir() string {
	return os.Getenv(EnvDir)
}

// Resolve returns the data file locations under base. With an empty base the
// plain file names are returned so they resolve against the working
// directory at open time.
func Resolve(base string) Paths {
	return Paths{
		Base:       base,
		Languages:  filepath.Join(base, LanguageFileName),
		FolderList: filepath.Join(base, FolderListFileName),
	}
}

// FromEnv resolves the data files using FOLDER_OPENER_DIR.
func FromEnv() Paths {
	return Resolve(GetBaseDir())
}
