package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type frameDoc struct {
	Name       string      `yaml:"name"`
	Model      [16]float32 `yaml:"model,flow"`
	View       [16]float32 `yaml:"view,flow"`
	Projection [16]float32 `yaml:"projection,flow"`
	MVP        [16]float32 `yaml:"mvp,flow"`
	Normal     [9]float32  `yaml:"normal,flow"`
}

// Dump writes frames to w as YAML, one entry per model, each matrix as a
// flat column-major list.
func Dump(w io.Writer, frames []Frame) error {
	docs := make([]frameDoc, len(frames))
	for i, f := range frames {
		docs[i] = frameDoc{
			Name:       f.Name,
			Model:      f.Model,
			View:       f.View,
			Projection: f.Projection,
			MVP:        f.MVP,
			Normal:     f.Normal,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]frameDoc{"frames": docs}); err != nil {
		return fmt.Errorf("encoding frames: %w", err)
	}
	return enc.Close()
}

// LoadDump reads frames written by Dump.
func LoadDump(r io.Reader) ([]Frame, error) {
	var doc map[string][]frameDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding frames: %w", err)
	}

	docs := doc["frames"]
	frames := make([]Frame, len(docs))
	for i, d := range docs {
		frames[i].Name = d.Name
		frames[i].Model = d.Model
		frames[i].View = d.View
		frames[i].Projection = d.Projection
		frames[i].MVP = d.MVP
		frames[i].Normal = d.Normal
	}
	return frames, nil
}
