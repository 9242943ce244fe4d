// Package data holds the static package catalog served to the landing and
// checkout pages. Prices are in the local currency configured for the
// service.
package data

import "github.com/medlaunch/checkout.api.medlaunch.health/models"

var catalog = []models.PackageRest{
	{
		ID:           "uae",
		Country:      "UAE",
		Price:        "11999",
		DisplayPrice: "Rs. 11,999",
		Description:  "DHA/MOHAP licensing support, document review and exam scheduling",
		Timeline:     []string{"Eligibility check", "DataFlow verification", "Prometric exam", "License activation"},
	},
	{
		ID:           "saudi-arabia",
		Country:      "Saudi Arabia",
		Price:        "14999",
		DisplayPrice: "Rs. 14,999",
		Description:  "SCFHS classification, Mumaris Plus registration and exam scheduling",
		Timeline:     []string{"Mumaris Plus account", "DataFlow verification", "Prometric exam", "Classification"},
	},
	{
		ID:           "qatar",
		Country:      "Qatar",
		Price:        "13999",
		DisplayPrice: "Rs. 13,999",
		Description:  "DHP licensing support including dataflow and QCHP exam booking",
		Timeline:     []string{"Eligibility check", "DataFlow verification", "QCHP exam", "License issue"},
	},
	{
		ID:           "bahrain",
		Country:      "Bahrain",
		Price:        "12499",
		DisplayPrice: "Rs. 12,499",
		Description:  "NHRA licensing support and exam scheduling",
		Timeline:     []string{"Eligibility check", "NHRA application", "Exam", "License issue"},
	},
	{
		ID:           "oman",
		Country:      "Oman",
		Price:        "10999",
		DisplayPrice: "Rs. 10,999",
		Description:  "OMSB licensing support and exam scheduling",
		Timeline:     []string{"Eligibility check", "OMSB application", "Exam", "License issue"},
	},
}

// Packages returns a copy of the static package catalog
func Packages() []models.PackageRest {
	out := make([]models.PackageRest, len(catalog))
	copy(out, catalog)
	return out
}

// LookupPackage returns the catalog package with the given id, or nil when no
// such package exists. Sessions restored against a removed package fall back
// to the package selection step.
func LookupPackage(id string) *models.PackageRest {
	for i := range catalog {
		if catalog[i].ID == id {
			p := catalog[i]
			return &p
		}
	}
	return nil
}
