package dictscrape

// ExampleFragment is one example block as it appears on the page.
// A non-empty Pattern starts a new group.
type ExampleFragment struct {
	Pattern string
	Example string
}

// GroupExamples partitions fragments into pattern-labeled groups.
//
// Fragments before the first labeled one form a leading group with an empty
// pattern. A labeled fragment opens a group and contributes its own example;
// following unlabeled fragments join it until the next labeled fragment.
// Fragments without example text add no sentence but still open groups.
func GroupExamples(frags []ExampleFragment) []ExampleGroup {
	var groups []ExampleGroup
	for i, frag := range frags {
		if i == 0 || frag.Pattern != "" {
			groups = append(groups, ExampleGroup{Pattern: frag.Pattern})
		}
		if frag.Example == "" {
			continue
		}
		last := &groups[len(groups)-1]
		last.Examples = append(last.Examples, frag.Example)
	}

	// An unlabeled leading run without sentences is not a group.
	if len(groups) > 0 && groups[0].Pattern == "" && len(groups[0].Examples) == 0 {
		groups = groups[1:]
	}
	return groups
}
