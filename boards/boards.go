// Package boards bundles starting boards with the binary.
package boards

import (
	"embed"
	"path"
	"sort"
	"strings"
)

// Default names the board used when none is given.
const Default = "gallery"

//go:embed *.txt
var files embed.FS

var boards = map[string]string{}

// register adds board text under the provided name.
func register(name, text string) {
	if name == "" || text == "" {
		return
	}
	boards[name] = text
}

// Lookup returns the text of a registered board.
func Lookup(name string) (string, bool) {
	text, ok := boards[name]
	return text, ok
}

// Names lists the registered boards in sorted order.
func Names() []string {
	names := make([]string, 0, len(boards))
	for name := range boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	entries, err := files.ReadDir(".")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := files.ReadFile(e.Name())
		if err != nil {
			panic(err)
		}
		register(strings.TrimSuffix(e.Name(), path.Ext(e.Name())), string(data))
	}
}
