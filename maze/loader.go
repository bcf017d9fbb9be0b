package maze

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
)

// Parse reads the line-oriented maze text format: space is Open, 'g' is
// Exit, tab reads as Open, and any other character is Wall. Empty lines
// are skipped and short rows are padded with Wall.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case ' ', '\t':
				row = append(row, Open)
			case 'g':
				row = append(row, Exit)
			default:
				row = append(row, Wall)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}
	return New(rows), nil
}

// LoadFS parses a maze layout from a file system, typically the embedded
// levels FS.
func LoadFS(fsys fs.FS, name string) (*Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}
