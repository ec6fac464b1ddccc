package domain_test

import (
	"github.com/kbsync/minio-listener/internal/domain"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFilterSetNoRules(t *testing.T) {
	set := domain.FilterSet{}

	assert.True(t, set.Matches("test1.bin"))
	assert.True(t, set.Matches("test1.txt"))
	assert.True(t, set.Matches("test2.bin"))
}

func TestFilterSetSuffixOnly(t *testing.T) {
	set := domain.FilterSet{
		{
			Name:  domain.SuffixFilter,
			Value: "bin",
		},
	}

	assert.True(t, set.Matches("test1.bin"))
	assert.False(t, set.Matches("test1.txt"))
	assert.True(t, set.Matches("test2.bin"))
}

func TestFilterSetPrefixOnly(t *testing.T) {
	set := domain.FilterSet{
		{
			Name:  domain.PrefixFilter,
			Value: "test1",
		},
	}

	assert.True(t, set.Matches("test1.bin"))
	assert.True(t, set.Matches("test1.txt"))
	assert.False(t, set.Matches("test2.bin"))
}

func TestFilterSetPrefixAndSuffix(t *testing.T) {
	set := domain.FilterSet{
		{
			Name:  domain.PrefixFilter,
			Value: "test1",
		},
		{
			Name:  domain.SuffixFilter,
			Value: "bin",
		},
	}

	assert.True(t, set.Matches("test1.bin"))
	assert.False(t, set.Matches("test1.txt"))
	assert.False(t, set.Matches("test2.bin"))
}

func TestFilterRuleValid(t *testing.T) {
	assert.True(t, domain.FilterRule{Name: domain.PrefixFilter}.Valid())
	assert.True(t, domain.FilterRule{Name: domain.SuffixFilter}.Valid())
	assert.False(t, domain.FilterRule{Name: "regex"}.Valid())
}
