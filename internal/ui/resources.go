package ui

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/go-faster/errors"
)

// Icon names of the embedded assets that are not recipe images
const (
	IconFlame          = "flame"
	IconStar           = "star"
	IconFavorite       = "favorite"
	IconFavoriteFilled = "favorite_filled"
)

const assetsDir = "assets"

//go:embed assets/*.svg
var assetsFS embed.FS

// Resources resolves image names used by the recipe data to Fyne resources
type Resources struct {
	images map[string]fyne.Resource
}

// LoadResources loads every embedded asset, keyed by file name without extension
func LoadResources() (*Resources, error) {
	entries, err := fs.ReadDir(assetsFS, assetsDir)
	if err != nil {
		return nil, errors.Wrap(err, "read assets")
	}

	images := make(map[string]fyne.Resource, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		content, err := assetsFS.ReadFile(path.Join(assetsDir, fileName))
		if err != nil {
			return nil, errors.Wrapf(err, "read asset %s", fileName)
		}
		name := strings.TrimSuffix(fileName, path.Ext(fileName))
		images[name] = fyne.NewStaticResource(fileName, content)
	}

	return &Resources{images: images}, nil
}

// Image returns the resource registered under name
func (r *Resources) Image(name string) (fyne.Resource, bool) {
	if r == nil {
		return nil, false
	}
	res, ok := r.images[name]
	return res, ok
}

// Len returns the number of registered images
func (r *Resources) Len() int {
	if r == nil {
		return 0
	}
	return len(r.images)
}
