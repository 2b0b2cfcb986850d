package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/levelgeo/common"
	"github.com/milk9111/levelgeo/level"
)

//go:embed *.json *.tmx
var LevelsFS embed.FS

// Dir is checked on disk before the embedded levels.
const Dir = "levels"

var extensions = []string{".json", ".tmx"}

// Names lists the level names in fsys, sorted, without extensions.
func Names(fsys fs.FS) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, ext := range extensions {
		matches, err := fs.Glob(fsys, "*"+ext)
		if err != nil {
			return nil, fmt.Errorf("levels: glob %s: %w", ext, err)
		}
		for _, m := range matches {
			stem := strings.TrimSuffix(m, ext)
			if !seen[stem] {
				seen[stem] = true
				names = append(names, stem)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve finds the file for name in fsys. The extension is optional.
func Resolve(fsys fs.FS, name string) (string, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
	if ext := path.Ext(clean); ext == ".json" || ext == ".tmx" {
		if _, err := fs.Stat(fsys, clean); err != nil {
			return "", fmt.Errorf("levels: %s: %w", clean, err)
		}
		return clean, nil
	}
	for _, ext := range extensions {
		if _, err := fs.Stat(fsys, clean+ext); err == nil {
			return clean + ext, nil
		}
	}
	return "", fmt.Errorf("levels: no level named %q: %w", name, fs.ErrNotExist)
}

// ReadDefinition reads the definition of the named level from fsys.
func ReadDefinition(fsys fs.FS, name string) (level.Definition, error) {
	file, err := Resolve(fsys, name)
	if err != nil {
		return level.Definition{}, err
	}
	if path.Ext(file) == ".tmx" {
		return LoadTMX(fsys, file)
	}
	b, err := fs.ReadFile(fsys, file)
	if err != nil {
		return level.Definition{}, fmt.Errorf("levels: read %s: %w", file, err)
	}
	def, err := level.ParseDefinition(b)
	if err != nil {
		return level.Definition{}, fmt.Errorf("levels: %s: %w", file, err)
	}
	return def, nil
}

// LoadFromFS builds the named level from fsys.
func LoadFromFS(fsys fs.FS, name string, loader common.ImageLoader) (*level.Level, error) {
	def, err := ReadDefinition(fsys, name)
	if err != nil {
		return nil, err
	}
	lvl, err := level.New(def, loader)
	if err != nil {
		return nil, fmt.Errorf("levels: build %s: %w", name, err)
	}
	return lvl, nil
}

// Load builds the named level, preferring a copy in Dir on disk over the
// embedded one.
func Load(name string, loader common.ImageLoader) (*level.Level, error) {
	return LoadFromFS(Source(name), name, loader)
}

// Source returns the file system the named level is read from.
func Source(name string) fs.FS {
	disk := os.DirFS(Dir)
	if _, err := Resolve(disk, name); err == nil {
		return disk
	}
	return LevelsFS
}
