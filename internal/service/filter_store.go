package service

import (
	"fmt"
	"github.com/kbsync/minio-listener/internal/domain"
	"gopkg.in/yaml.v2"
	"os"
)

// FilterStore holds the optional per-bucket key filters loaded at startup.
// Buckets without configured rules pass every key through.
type FilterStore struct {
	buckets map[string]domain.FilterSet
}

func NewFilterStore(cfg Config) (*FilterStore, error) {
	store := &FilterStore{
		buckets: make(map[string]domain.FilterSet),
	}

	path := cfg.FilterPath()
	if path == "" {
		return store, nil
	}

	err := store.Load(path)
	if err != nil {
		return nil, err
	}

	return store, nil
}

func (store *FilterStore) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		err := LoadError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}
	defer file.Close()

	var rules map[string]domain.FilterSet
	err = yaml.NewDecoder(file).Decode(&rules)
	if err != nil {
		err := DecodeError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}

	for bucket, set := range rules {
		for _, rule := range set {
			if !rule.Valid() {
				err := DecodeError{
					path: path,
					base: fmt.Errorf("filter rule for bucket %s has name %q, expected prefix or suffix", bucket, rule.Name),
				}
				logger.Error(err)
				return err
			}
		}

		logger.Infof("Loaded %d filter rules for bucket %s", len(set), bucket)
		store.buckets[bucket] = set
	}

	return nil
}

// Matches reports whether key passes the rules configured for bucket.
func (store *FilterStore) Matches(bucket string, key string) bool {
	set, ok := store.buckets[bucket]
	if !ok {
		return true
	}

	return set.Matches(key)
}
