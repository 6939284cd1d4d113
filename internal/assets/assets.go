// Package assets maps step image ids to their static paths and to the
// terminal art drawn in their place.
package assets

import (
	"embed"
	"path"
	"sort"
	"strings"
)

// StaticPrefix is the path prefix every image id is served under.
const StaticPrefix = "/static/"

// SecondaryIcon is the image id of the icon revealed on the terminal visual.
const SecondaryIcon = "bulb.png"

//go:embed art/*.txt
var artFS embed.FS

// Path returns the static path for imageID. The asset is not checked for
// existence.
func Path(imageID string) string {
	return StaticPrefix + imageID
}

// ID recovers the image id from a path produced by Path. Other strings are
// returned unchanged.
func ID(src string) string {
	return strings.TrimPrefix(src, StaticPrefix)
}

// Art returns the terminal art for an image id or static path. The second
// result is false when no art is bundled and a placeholder is returned.
func Art(src string) (string, bool) {
	id := ID(src)
	name := strings.TrimSuffix(path.Base(id), path.Ext(id))
	data, err := artFS.ReadFile("art/" + name + ".txt")
	if err != nil {
		return placeholder(id), false
	}
	return strings.TrimRight(string(data), "\n"), true
}

// Available returns the sorted names of the bundled art.
func Available() []string {
	entries, err := artFS.ReadDir("art")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func placeholder(id string) string {
	label := "[" + id + "]"
	bar := strings.Repeat("-", len(label))
	return "+" + bar + "+\n|" + label + "|\n+" + bar + "+"
}
