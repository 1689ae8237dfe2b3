package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by ByName
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// builtin pairs a scene's metadata with its constructor
type builtin struct {
	info SceneInfo
	new  func() *Scene
}

const builtinGroup = "Built-in Scenes"

var builtins = []builtin{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Mirror, matte and glass spheres over a reflective floor"}, NewDefaultScene},
	{SceneInfo{ID: "simple", Name: "Simple Sphere", Description: "One matte sphere lit by a directional light"}, NewSimpleScene},
	{SceneInfo{ID: "mirror", Name: "Mirror Sphere", Description: "Perfect mirror with no lights (renders black)"}, NewMirrorScene},
	{SceneInfo{ID: "glass", Name: "Glass Sphere", Description: "Refraction and total internal reflection"}, NewGlassScene},
	{SceneInfo{ID: "cornell", Name: "Cornell Box", Description: "Plane-walled box with a mirror and a glass sphere"}, NewCornellScene},
	{SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "Grid of colored spheres on a mirror floor"}, NewSphereGridScene},
	{SceneInfo{ID: "empty", Name: "Empty Scene", Description: "No elements or lights (renders black)"}, NewEmptyScene},
}

// Names returns the IDs of the built-in scenes in listing order
func Names() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.info.ID
	}
	return names
}

// ByName creates a built-in scene by ID, or loads a JSON scene when name is a
// path ending in .json
func ByName(name string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return NewJSONScene(name)
	}
	for _, b := range builtins {
		if b.info.ID == name {
			return b.new(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// ListJSONScenes scans dir for .json scene files and returns their metadata.
// A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseJSONMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseJSONMetadata reads the metadata fields of a JSON scene file, falling
// back to values derived from the file name
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Group:    "JSON Scenes",
		Type:     "json",
		FilePath: filePath,
	}

	desc, err := loaders.LoadJSON(filePath)
	if err != nil {
		return info, err
	}

	if desc.Name != "" {
		info.Name = desc.Name
	}
	if desc.Group != "" {
		info.Group = desc.Group
	}
	info.Description = desc.Description

	return info, nil
}

// ListAllScenes returns built-in scenes followed by the JSON scenes found in
// dir, grouped by category
func ListAllScenes(dir string) ([]SceneInfo, error) {
	all := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		all = append(all, info)
	}

	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}

	// Built-ins keep their order; other groups follow alphabetically
	sort.SliceStable(jsonScenes, func(i, j int) bool {
		return jsonScenes[i].Group < jsonScenes[j].Group
	})

	return append(all, jsonScenes...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
