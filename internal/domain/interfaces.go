package domain

import "context"

// DistrictSource returns the districts of one province.
//
// Implementations never fail: any transport or decoding problem is reported
// out of band and surfaces as an empty result.
type DistrictSource interface {
	Districts(ctx context.Context, province RegionCode) []District
}

// RegionCatalog is the read-only table of provinces and attractions.
type RegionCatalog interface {
	Province(code RegionCode) (Province, bool)
	Provinces() []Province
	Attractions(code RegionCode) []Attraction
}
