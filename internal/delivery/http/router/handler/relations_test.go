package handler

import (
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestParseRelations_AbsentUsesFallback(t *testing.T) {
	fallback := repository.AllVendorRelations()

	got := parseRelations("", false, fallback)
	assert.Equal(t, fallback, got)
}

func TestParseRelations_ExplicitEmptyMeansBare(t *testing.T) {
	got := parseRelations("", true, repository.AllVendorRelations())
	assert.Empty(t, got)
}

func TestParseRelations_SplitsAndTrims(t *testing.T) {
	got := parseRelations(" services, operating_hours ,,social_media", true, nil)
	assert.Equal(t, repository.RelationSet{
		repository.RelationServices,
		repository.RelationOperatingHours,
		repository.RelationSocialMedia,
	}, got)
}
