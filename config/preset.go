// Copyright © 2024 Galvanized Logic Inc.

package config

// preset.go reads named cutting-plane presets from a yaml document.
// Presets let a caller describe the cuts for a model once, by name,
// instead of constructing meshslice.Plane values in code.

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gazed/meshslice"
	"github.com/gazed/meshslice/math/lin"
)

// planeConfig mirrors the yaml layout of a single named plane.
type planeConfig struct {
	Name   string     `yaml:"name"`
	Normal [3]float32 `yaml:"normal"`
	Dist   float32    `yaml:"dist"`
	Bounds *struct {
		XMin float32 `yaml:"xmin"`
		YMin float32 `yaml:"ymin"`
		XMax float32 `yaml:"xmax"`
		YMax float32 `yaml:"ymax"`
	} `yaml:"bounds"`
}

// presetConfig mirrors the yaml layout of a whole preset document.
type presetConfig struct {
	Planes []planeConfig `yaml:"planes"`
}

// Cut is one named, ready-to-use cutting plane plus the texture
// bounds its cross-section cap should be mapped into.
type Cut struct {
	Name   string
	Plane  meshslice.Plane
	Bounds meshslice.TextureBounds
}

// Preset is a named collection of cuts, typically one per model that
// needs slicing along fixed, designer-authored planes.
type Preset struct {
	Cuts []Cut
}

// Load parses a yaml preset document. data is caller-supplied bytes;
// this package does no file I/O of its own, so callers choose how the
// bytes are sourced (embedded asset, disk, network).
func Load(data []byte) (Preset, error) {
	var cfg presetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Preset{}, fmt.Errorf("config: yaml %w", err)
	}

	preset := Preset{Cuts: make([]Cut, 0, len(cfg.Planes))}
	for _, pc := range cfg.Planes {
		if pc.Name == "" {
			return Preset{}, fmt.Errorf("config: plane missing name")
		}
		normal := lin.Vec3{X: pc.Normal[0], Y: pc.Normal[1], Z: pc.Normal[2]}
		plane := meshslice.NewPlane(normal, pc.Dist)

		bounds := meshslice.DefaultTextureBounds()
		if pc.Bounds != nil {
			bounds = meshslice.NewTextureBounds(pc.Bounds.XMin, pc.Bounds.YMin, pc.Bounds.XMax, pc.Bounds.YMax)
		}
		preset.Cuts = append(preset.Cuts, Cut{Name: pc.Name, Plane: plane, Bounds: bounds})
	}
	return preset, nil
}

// Find returns the named cut and true, or the zero Cut and false.
func (p Preset) Find(name string) (Cut, bool) {
	for _, c := range p.Cuts {
		if c.Name == name {
			return c, true
		}
	}
	return Cut{}, false
}
