package domain

import "strings"

const (
	PrefixFilter = "prefix"
	SuffixFilter = "suffix"
)

type FilterRule struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (f FilterRule) Valid() bool {
	return f.Name == PrefixFilter || f.Name == SuffixFilter
}

func (f FilterRule) FilterKey(key string) bool {
	if f.Name == PrefixFilter {
		return strings.HasPrefix(key, f.Value)
	}

	if f.Name == SuffixFilter {
		return strings.HasSuffix(key, f.Value)
	}

	panic("expected FilterRule Name to be prefix or suffix but was " + f.Name)
}

// FilterSet is the conjunction of rules configured for one bucket. An empty
// set matches every key.
type FilterSet []FilterRule

func (s FilterSet) Matches(key string) bool {
	for _, f := range s {
		if !f.FilterKey(key) {
			return false
		}
	}

	return true
}
