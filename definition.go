package dictscrape

// SenseKind distinguishes top-level senses from sub-senses.
type SenseKind int

// Sense kinds.
const (
	SenseTop SenseKind = iota
	SenseSub
)

// String returns the markup class the kind is read from.
func (k SenseKind) String() string {
	if k == SenseSub {
		return "SUB-SENSE-BODY"
	}
	return "SENSE-BODY"
}

// SenseBlock is one sense or sub-sense as read from the page, before nesting.
type SenseBlock struct {
	Kind     SenseKind
	Number   string
	Meaning  string
	Keywords Keywords
	Examples []ExampleGroup
}

// definitionFold is the accumulator threaded through BuildDefinitions.
type definitionFold struct {
	defs   []Definition
	parent int // index into defs of the sense sub-senses attach to; -1 before the first sense
}

func (f definitionFold) step(b SenseBlock, pos int) (definitionFold, error) {
	def := Definition{
		Number:   b.Number,
		Meaning:  b.Meaning,
		Keywords: b.Keywords,
		Examples: b.Examples,
	}

	switch b.Kind {
	case SenseTop:
		f.defs = append(f.defs, def)
		f.parent = len(f.defs) - 1
	case SenseSub:
		if f.parent < 0 {
			return f, Errorf(EPARSE, "sub-sense at position %d precedes any sense", pos)
		}
		p := &f.defs[f.parent]
		p.SubDefinitions = append(p.SubDefinitions, def)
	default:
		return f, Errorf(EPARSE, "unknown sense kind %d at position %d", b.Kind, pos)
	}

	return f, nil
}

// BuildDefinitions nests sense blocks into a definition tree in a single pass.
// Each sub-sense attaches to the nearest preceding top-level sense; runs of
// sub-senses stay siblings under that sense. A sub-sense before any sense is
// an EPARSE error.
func BuildDefinitions(blocks []SenseBlock) ([]Definition, error) {
	acc := definitionFold{parent: -1}
	for i, b := range blocks {
		var err error
		if acc, err = acc.step(b, i); err != nil {
			return nil, err
		}
	}
	return acc.defs, nil
}
