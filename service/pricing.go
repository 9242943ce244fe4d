package service

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

var amountFormat = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// ParseAmount parses a decimal amount string, rejecting anything that is not
// a plain non-negative figure with an optional two-digit fraction
func ParseAmount(amount string) (decimal.Decimal, error) {
	if !amountFormat.MatchString(amount) {
		return decimal.Zero, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	return d, nil
}

// ComputeFinalAmount returns the payable amount after discount, floored at
// zero so an over-sized discount can never produce a negative charge
func ComputeFinalAmount(originalAmount, discountAmount decimal.Decimal) decimal.Decimal {
	finalAmount := originalAmount.Sub(discountAmount)
	if finalAmount.IsNegative() {
		return decimal.Zero
	}
	return finalAmount
}

// ResolveOriginalAmount derives the original amount from the active purchase
// target. Resolution order, first populated variant wins: milestone surcharge,
// voucher price (converted from USD at the fixed published rate), appointment
// fee, package price, additional-documents total.
func ResolveOriginalAmount(target models.PurchaseTarget, cfg *config.Config) (decimal.Decimal, error) {
	switch {
	case target.MilestoneSurcharge != nil:
		return ParseAmount(target.MilestoneSurcharge.AdditionalCharge)

	case target.VoucherSlot != nil:
		usd, err := ParseAmount(target.VoucherSlot.FinalPriceUSD)
		if err != nil {
			return decimal.Zero, err
		}
		rate, err := ParseAmount(cfg.USDConversionRate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid usd conversion rate in config: [%v]", err)
		}
		return usd.Mul(rate), nil

	case target.AppointmentSlot != nil:
		return ParseAmount(target.AppointmentSlot.Fee)

	case target.Package != nil:
		return ParseAmount(target.Package.Price)

	case target.AdditionalDocuments != nil:
		var total decimal.Decimal
		for _, doc := range target.AdditionalDocuments.Documents {
			price, err := ParseAmount(doc.Price)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(price)
		}
		return total, nil
	}

	return decimal.Zero, fmt.Errorf("purchase target has no populated variant to price")
}

// PayableAmount computes the charged amount for a session target given its
// coupon state. The discount applies uniformly to every target variant.
func PayableAmount(target models.PurchaseTarget, coupon models.CouponStateDB, cfg *config.Config) (original, payable decimal.Decimal, err error) {
	original, err = ResolveOriginalAmount(target, cfg)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	discount := decimal.Zero
	if coupon.Applied {
		discount, err = ParseAmount(coupon.DiscountAmount)
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("invalid applied discount: [%v]", err)
		}
	}

	return original, ComputeFinalAmount(original, discount), nil
}
