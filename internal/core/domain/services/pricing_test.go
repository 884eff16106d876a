package services_test

import (
	"testing"

	"treats/internal/core/domain/model/catalog"
	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPackagePrice(t *testing.T) {
	packages := []catalog.PackageOption{
		{Key: "small", Price: 55},
		{Key: "large", Price: 110},
	}

	t.Run("looks up the matching entry", func(t *testing.T) {
		assert.InDelta(t, 55, services.PackagePrice("small", packages), 0.001)
		assert.InDelta(t, 110, services.PackagePrice("large", packages), 0.001)
	})

	t.Run("unset type or missing entry prices as zero", func(t *testing.T) {
		assert.Zero(t, services.PackagePrice("", packages))
		assert.Zero(t, services.PackagePrice("medium", packages))
		assert.Zero(t, services.PackagePrice("byDozen", packages))
	})
}

func TestByDozenPrice(t *testing.T) {
	form := draft.FormData{
		RiceKrispies: 2,
		Oreos:        1,
		Pretzels:     0,
		Marshmallows: 1,
	}

	t.Run("uses default treat prices when the catalog is empty", func(t *testing.T) {
		// 2x40 + 1x30 + 0x30 + 1x40 = 150
		assert.InDelta(t, 150, services.ByDozenPrice(form, nil), 0.001)
	})

	t.Run("catalog entries override the defaults", func(t *testing.T) {
		treats := []catalog.TreatOption{
			{Key: catalog.TreatRiceKrispies, Price: 45},
		}

		// 2x45 + 1x30 + 1x40 = 160
		assert.InDelta(t, 160, services.ByDozenPrice(form, treats), 0.001)
	})
}

func TestDesignPrice(t *testing.T) {
	perDozen := 12.0
	option := catalog.DesignOption{
		ID:                 "d1",
		BasePrice:          15,
		LargePriceIncrease: 5,
		PerDozenPrice:      &perDozen,
	}

	assert.InDelta(t, 20, services.DesignPrice(option, "large"), 0.001)
	assert.InDelta(t, 20, services.DesignPrice(option, "xl"), 0.001)
	assert.InDelta(t, 12, services.DesignPrice(option, "byDozen"), 0.001)
	assert.InDelta(t, 15, services.DesignPrice(option, "small"), 0.001)
	assert.InDelta(t, 15, services.DesignPrice(option, ""), 0.001)

	t.Run("by-dozen without a per-dozen price falls back to base", func(t *testing.T) {
		noDozen := catalog.DesignOption{ID: "d2", BasePrice: 8, LargePriceIncrease: 3}
		assert.InDelta(t, 8, services.DesignPrice(noDozen, "byDozen"), 0.001)
	})
}

func TestDesignsPrice(t *testing.T) {
	designs := []catalog.DesignOption{
		{ID: "d1", BasePrice: 15, LargePriceIncrease: 5},
		{ID: "d2", BasePrice: 10},
	}

	t.Run("sums selected options", func(t *testing.T) {
		assert.InDelta(t, 25, services.DesignsPrice([]string{"d1", "d2"}, "small", designs), 0.001)
	})

	t.Run("ids no longer in the catalog are skipped silently", func(t *testing.T) {
		assert.InDelta(t, 10, services.DesignsPrice([]string{"gone", "d2"}, "small", designs), 0.001)
		assert.Zero(t, services.DesignsPrice([]string{"gone"}, "small", designs))
	})
}

func TestCalculateQuote(t *testing.T) {
	packages := []catalog.PackageOption{{Key: "large", Price: 110}}
	designs := []catalog.DesignOption{{ID: "d1", BasePrice: 15, LargePriceIncrease: 5}}

	t.Run("fixed package plus designs, halved deposit", func(t *testing.T) {
		form := draft.FormData{
			PackageType:               "large",
			SelectedAdditionalDesigns: []string{"d1"},
		}

		quote := services.CalculateQuote(form, packages, nil, designs)

		assert.InDelta(t, 110, quote.PackagePrice, 0.001)
		assert.InDelta(t, 20, quote.DesignsPrice, 0.001)
		assert.InDelta(t, 130, quote.Total, 0.001)
		assert.InDelta(t, 65, quote.Deposit, 0.001)
		assert.InDelta(t, 65, quote.Balance, 0.001)
	})

	t.Run("by-dozen package prices from quantities", func(t *testing.T) {
		form := draft.FormData{
			PackageType:  "byDozen",
			RiceKrispies: 2,
			Oreos:        1,
			Marshmallows: 1,
		}

		quote := services.CalculateQuote(form, packages, nil, nil)

		assert.InDelta(t, 150, quote.PackagePrice, 0.001)
		assert.InDelta(t, 150, quote.Total, 0.001)
		assert.InDelta(t, 75, quote.Deposit, 0.001)
	})

	t.Run("deposit may be fractional", func(t *testing.T) {
		quote := services.CalculateQuote(draft.FormData{
			PackageType:               "small",
			SelectedAdditionalDesigns: []string{"d1"},
		}, []catalog.PackageOption{{Key: "small", Price: 40}}, nil, designs)

		assert.InDelta(t, 55, quote.Total, 0.001)
		assert.InDelta(t, 27.5, quote.Deposit, 0.001)
	})

	t.Run("empty selections quote as zero, never an error", func(t *testing.T) {
		quote := services.CalculateQuote(draft.FormData{}, nil, nil, nil)

		assert.Zero(t, quote.Total)
		assert.Zero(t, quote.Deposit)
	})
}
