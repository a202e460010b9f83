// Package dataset holds the bundled canonical muscle-group data used by the
// reset/bulk-load operation, together with the flattening logic that turns
// its nested structure into flat MuscleGroup records.
package dataset

import (
	"encoding/json"
	"fmt"
	"sort"

	"fourtyfit/workout-app/internal/domain"

	_ "embed"
)

//go:embed muscle_groups.json
var canonicalMuscleGroups []byte

// maxNestingDepth bounds the recursive walk over the dataset. The dataset
// supports exactly one level of sub-grouping (e.g. "Arms" containing
// "Biceps"/"Triceps"); anything deeper is a malformed dataset.
const maxNestingDepth = 2

// node is one entry in the dataset tree: either a leaf carrying muscles and
// an image URL, or a mapping of sub-group name to further nodes. A node is a
// leaf iff it has a "muscles" or "imageUrl" key.
type node struct {
	Muscles  []domain.Muscle
	ImageURL string
	Children map[string]node
}

func (n node) leaf() bool {
	return n.Children == nil
}

// parseNode shape-checks a raw JSON object into a node.
func parseNode(raw json.RawMessage, depth int) (node, error) {
	if depth > maxNestingDepth {
		return node{}, fmt.Errorf("muscle group dataset nested deeper than %d levels", maxNestingDepth)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return node{}, fmt.Errorf("muscle group entry is not an object: %w", err)
	}

	_, hasMuscles := fields["muscles"]
	_, hasImage := fields["imageUrl"]
	if hasMuscles || hasImage {
		var leaf struct {
			Muscles  []domain.Muscle `json:"muscles"`
			ImageURL string          `json:"imageUrl"`
		}
		if err := json.Unmarshal(raw, &leaf); err != nil {
			return node{}, err
		}
		return node{Muscles: leaf.Muscles, ImageURL: leaf.ImageURL}, nil
	}

	children := make(map[string]node, len(fields))
	for name, sub := range fields {
		child, err := parseNode(sub, depth+1)
		if err != nil {
			return node{}, fmt.Errorf("sub-group %q: %w", name, err)
		}
		children[name] = child
	}
	return node{Children: children}, nil
}

// flatten collapses a node into a single muscle list and image URL. Nested
// sub-groups contribute their muscles in sub-group name order; the last
// non-empty image URL wins, matching the original dataset loader.
func flatten(n node) ([]domain.Muscle, string) {
	if n.leaf() {
		return n.Muscles, n.ImageURL
	}

	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	var muscles []domain.Muscle
	var imageURL string
	for _, name := range names {
		subMuscles, subImage := flatten(n.Children[name])
		muscles = append(muscles, subMuscles...)
		if subImage != "" {
			imageURL = subImage
		}
	}
	return muscles, imageURL
}

// Load parses raw dataset JSON into flat MuscleGroup records, one per
// top-level group name, sorted by name for deterministic output.
func Load(raw []byte) ([]domain.MuscleGroup, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("parse muscle group dataset: %w", err)
	}

	names := make([]string, 0, len(top))
	for name := range top {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]domain.MuscleGroup, 0, len(names))
	for _, name := range names {
		n, err := parseNode(top[name], 1)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		muscles, imageURL := flatten(n)
		if muscles == nil {
			muscles = []domain.Muscle{}
		}
		groups = append(groups, domain.MuscleGroup{
			Name:     name,
			Muscles:  muscles,
			ImageURL: imageURL,
		})
	}
	return groups, nil
}

// CanonicalMuscleGroups returns the bundled canonical dataset, flattened.
func CanonicalMuscleGroups() ([]domain.MuscleGroup, error) {
	return Load(canonicalMuscleGroups)
}
