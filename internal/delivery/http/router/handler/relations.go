package handler

import (
	"strings"

	"bazaar/internal/domain/repository"
)

// parseRelations reads the comma-separated "relations" query parameter into
// a RelationSet. An absent parameter yields the given default set; an
// explicit "relations=" yields the bare profile with nothing attached.
func parseRelations(raw string, present bool, fallback repository.RelationSet) repository.RelationSet {
	if !present {
		return fallback
	}

	relations := repository.RelationSet{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		relations = append(relations, repository.Relation(name))
	}

	return relations
}
