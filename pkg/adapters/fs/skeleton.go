package fs

import (
	"bytes"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Skeleton is the initial content written for a new project.
// It is never read back by the store.
type Skeleton struct {
	Name    string           `yaml:"name"`
	Root    string           `yaml:"root"`
	Windows []SkeletonWindow `yaml:"windows"`
}

// SkeletonWindow is a window entry of the skeleton.
type SkeletonWindow struct {
	Name  string   `yaml:"name"`
	Panes []string `yaml:"panes"`
}

func newSkeleton(name string) ([]byte, error) {
	skel := Skeleton{
		Name: path.Base(filepath.ToSlash(name)),
		Root: "~",
		Windows: []SkeletonWindow{
			{Name: "main", Panes: []string{""}},
		},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(skel); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
