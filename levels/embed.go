// Package levels embeds the shipped maze maps. Each map is a plain text
// grid: spaces are open floor, 'g' marks the exit, anything else is wall.
package levels

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vann06/gloamway/maze"
)

//go:embed *.txt
var LevelsFS embed.FS

// Load parses a named map into a grid, preferring an on-disk copy under
// levels/ so map edits can be hot reloaded during development.
func Load(name string) (*maze.Grid, error) {
	if data, err := os.ReadFile(filepath.Join("levels", name)); err == nil {
		g, err := maze.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("levels: parse %s: %w", name, err)
		}
		return g, nil
	}
	g, err := maze.LoadFS(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return g, nil
}
