package gigs

import "slices"

// Categories is the closed set of sector tags a gig may carry. The browser
// editor and the data file share this list, so append rather than rename
var Categories = []string{
	"Agriculture, Forestry & Fisheries",
	"Arts, Culture & Sport",
	"Construction, Property & Infrastructure",
	"Defence & Military and Security",
	"Diplomacy & International Relations",
	"Education, Academia & Research",
	"Energy (Renewables & Traditional)",
	"Environment, Climate & Sustainability",
	"Financial Services and Banking",
	"Government, Public Administration & Civil Service",
	"Health, Medical & Aged Care",
	"Legal & Judicial",
	"Lobbying & Government Relations",
	"Manufacturing & Industry",
	"Media, Communications & Public Relations",
	"Natural Resources (Mining, Oil & Gas)",
	"Nonprofit, NGO and Charity",
	"Politics, Campaigning & Party Operations",
	"Professional Services & Management Consulting",
	"Science, Engineering & Technical Professions",
	"Technology (Software, IT & Digital Services)",
	"Transport, Logistics & Tourism",
	"Retired",
}

// IsCategory reports exact membership in Categories
func IsCategory(s string) bool { return slices.Contains(Categories, s) }
