package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/game"
)

// packFile is the YAML structure for a custom pack file:
//
//	id: mypack
//	title: My Pack
//	levels:
//	  - name: Warmup
//	    descriptor: "5:3:1:GGGGGSSSSSGGGGG"
type packFile struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Levels []packLevel `yaml:"levels"`
}

type packLevel struct {
	Name       string `yaml:"name,omitempty"`
	Descriptor string `yaml:"descriptor"`
}

// LoadFile loads and validates a single pack file.
func LoadFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	p := &Pack{ID: pf.ID, Title: pf.Title}
	if p.Title == "" {
		p.Title = p.ID
	}

	for i, pl := range pf.Levels {
		lvl, err := game.ParseLevel(pl.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d (%s): %w", path, i, pl.Name, err)
		}
		lvl.Name = pl.Name
		p.Levels = append(p.Levels, lvl)
	}

	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadDir scans a directory for pack files and loads the valid ones.
// Files that fail to parse are skipped. Returns packs sorted by ID for
// deterministic ordering.
func LoadDir(root string) ([]*Pack, error) {
	var loaded []*Pack

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, err := LoadFile(path)
		if err != nil {
			return nil
		}

		loaded = append(loaded, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})
	return loaded, nil
}
