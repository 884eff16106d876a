package services

import (
	"treats/internal/core/domain/model/catalog"
	"treats/internal/core/domain/model/draft"
)

// defaultTreatPrices are the historical per-dozen prices used when a treat's
// catalog entry is missing.
var defaultTreatPrices = map[string]float64{
	catalog.TreatRiceKrispies: 40,
	catalog.TreatOreos:        30,
	catalog.TreatPretzels:     30,
	catalog.TreatMarshmallows: 40,
}

// Quote is the monetary breakdown for a draft's current selections.
// Deposit and Balance are each exactly half of Total; no rounding rule is
// applied, so the halves may be fractional.
type Quote struct {
	PackagePrice float64
	DesignsPrice float64
	Total        float64
	Deposit      float64
	Balance      float64
}

// CalculateQuote derives the full price breakdown for a draft's form state.
// The package component is the by-dozen sum when the by-dozen package is
// chosen, otherwise the fixed package price.
func CalculateQuote(
	form draft.FormData,
	packages []catalog.PackageOption,
	treats []catalog.TreatOption,
	designs []catalog.DesignOption,
) Quote {
	var packagePrice float64
	if form.PackageType == draft.PackageByDozen {
		packagePrice = ByDozenPrice(form, treats)
	} else {
		packagePrice = PackagePrice(form.PackageType, packages)
	}

	designsPrice := DesignsPrice(form.SelectedAdditionalDesigns, form.PackageType, designs)
	total := packagePrice + designsPrice

	return Quote{
		PackagePrice: packagePrice,
		DesignsPrice: designsPrice,
		Total:        total,
		Deposit:      total / 2,
		Balance:      total / 2,
	}
}

// PackagePrice looks up the fixed price for a non-by-dozen package type.
// An unset type or a missing catalog entry prices as zero.
func PackagePrice(packageType string, packages []catalog.PackageOption) float64 {
	if packageType == "" || packageType == draft.PackageByDozen {
		return 0
	}
	for _, p := range packages {
		if p.Key == packageType {
			return p.Price
		}
	}
	return 0
}

// ByDozenPrice sums quantity times per-dozen price over the four treat kinds.
// Treats missing from the catalog fall back to their default price.
func ByDozenPrice(form draft.FormData, treats []catalog.TreatOption) float64 {
	quantities := map[string]int{
		catalog.TreatRiceKrispies: form.RiceKrispies,
		catalog.TreatOreos:        form.Oreos,
		catalog.TreatPretzels:     form.Pretzels,
		catalog.TreatMarshmallows: form.Marshmallows,
	}

	var total float64
	for key, qty := range quantities {
		if qty <= 0 {
			continue
		}
		total += float64(qty) * treatPrice(key, treats)
	}
	return total
}

// DesignPrice prices one add-on design option under the active package type:
// the per-dozen price for by-dozen orders when the option defines one, the
// base price plus the large increase for large and xl packages, and the base
// price otherwise.
func DesignPrice(option catalog.DesignOption, packageType string) float64 {
	if packageType == draft.PackageByDozen && option.PerDozenPrice != nil {
		return *option.PerDozenPrice
	}
	if packageType == draft.PackageLarge || packageType == draft.PackageXL {
		return option.BasePrice + option.LargePriceIncrease
	}
	return option.BasePrice
}

// DesignsPrice sums DesignPrice over the selected option ids. Ids no longer
// present in the catalog are skipped silently.
func DesignsPrice(selected []string, packageType string, designs []catalog.DesignOption) float64 {
	var total float64
	for _, id := range selected {
		for _, option := range designs {
			if option.ID == id {
				total += DesignPrice(option, packageType)
				break
			}
		}
	}
	return total
}

func treatPrice(key string, treats []catalog.TreatOption) float64 {
	for _, option := range treats {
		if option.Key == key {
			return option.Price
		}
	}
	return defaultTreatPrices[key]
}
