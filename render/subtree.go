package render

import "github.com/aymericzip/benchmark-intl/workload"

// VariantSubtree binds a tree to the shared dataset so the benchmark layer
// can drive render passes without knowing either one.
type VariantSubtree struct {
	Tree    *Tree
	Dataset workload.Dataset
}

// Render runs one pass and reports how many instances were constructed.
func (s VariantSubtree) Render(displayLocale string, generation int) (int, error) {
	if _, err := s.Tree.Render(s.Dataset, displayLocale, generation); err != nil {
		return 0, err
	}
	constructed, _ := s.Tree.LastPass()
	return constructed, nil
}
