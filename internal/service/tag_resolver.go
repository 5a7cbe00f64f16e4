package service

import "recipebox/internal/model"

// ResolveTags rewrites each recipe's tags slice in place, substituting tag
// names for any identifier found in the tag collection. Identifiers with no
// matching tag are left untouched. Resolution is display-only and never
// written back to the store.
func ResolveTags(recipes []model.Recipe, tags []model.Tag) {
	tagNames := make(map[string]string, len(tags))
	for _, tag := range tags {
		tagNames[tag.ID.Hex()] = tag.Name
	}

	for i := range recipes {
		for k, tagID := range recipes[i].Tags {
			if name, ok := tagNames[tagID]; ok {
				recipes[i].Tags[k] = name
			}
		}
	}
}
