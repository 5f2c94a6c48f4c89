// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "slices"

// Relation names a related collection or object that a caller wants attached
// to a composed view. Callers pass an explicit RelationSet instead of the
// composer eagerly loading everything.
type Relation string

const (
	// RelationServices attaches a vendor's services.
	RelationServices Relation = "services"
	// RelationOperatingHours attaches a vendor's operating hours.
	RelationOperatingHours Relation = "operating_hours"
	// RelationBusinessLocations attaches a vendor's business locations.
	RelationBusinessLocations Relation = "business_locations"
	// RelationSocialMedia attaches a vendor's social media links.
	RelationSocialMedia Relation = "social_media"
	// RelationSearchPreference attaches a customer's search preference, if any.
	RelationSearchPreference Relation = "search_preference"
	// RelationUser attaches the redacted owning user to a profile view.
	RelationUser Relation = "user"
	// RelationProfile attaches the user's profile (of either kind) to a user view.
	RelationProfile Relation = "profile"
)

// RelationSet is a caller-supplied list of relations to attach.
type RelationSet []Relation

// Has checks if the set contains a specific relation.
func (rs RelationSet) Has(r Relation) bool {
	return slices.Contains(rs, r)
}

// AllVendorRelations attaches every relation a vendor profile has.
func AllVendorRelations() RelationSet {
	return RelationSet{RelationServices, RelationOperatingHours, RelationBusinessLocations, RelationSocialMedia}
}

// AllCustomerRelations attaches every relation a customer profile has.
func AllCustomerRelations() RelationSet {
	return RelationSet{RelationSearchPreference, RelationUser}
}
