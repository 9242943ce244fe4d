package service

import (
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	return cfg
}

func TestUnitParseAmount(t *testing.T) {
	Convey("Plain integer amounts are accepted", t, func() {
		d, err := ParseAmount("14999")
		So(err, ShouldBeNil)
		So(d.StringFixed(2), ShouldEqual, "14999.00")
	})

	Convey("Two-digit fractions are accepted", t, func() {
		d, err := ParseAmount("1500.50")
		So(err, ShouldBeNil)
		So(d.StringFixed(2), ShouldEqual, "1500.50")
	})

	Convey("Negative, malformed and one-digit-fraction amounts are rejected", t, func() {
		for _, amount := range []string{"-5", "12.5", "12.345", "abc", ""} {
			_, err := ParseAmount(amount)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestUnitComputeFinalAmount(t *testing.T) {
	Convey("Discount is subtracted from the original amount", t, func() {
		final := ComputeFinalAmount(decimal.NewFromInt(14999), decimal.NewFromInt(1500))
		So(final.StringFixed(2), ShouldEqual, "13499.00")
	})

	Convey("A discount larger than the amount floors at zero", t, func() {
		final := ComputeFinalAmount(decimal.NewFromInt(100), decimal.NewFromInt(250))
		So(final.StringFixed(2), ShouldEqual, "0.00")
	})

	Convey("A discount equal to the amount produces zero", t, func() {
		final := ComputeFinalAmount(decimal.NewFromInt(100), decimal.NewFromInt(100))
		So(final.StringFixed(2), ShouldEqual, "0.00")
	})
}

func TestUnitResolveOriginalAmount(t *testing.T) {
	cfg := testConfig()

	Convey("Package price resolves directly", t, func() {
		target := models.NewPackageTarget(&models.PackageRest{ID: "saudi-arabia", Price: "14999"})
		amount, err := ResolveOriginalAmount(target, cfg)
		So(err, ShouldBeNil)
		So(amount.StringFixed(2), ShouldEqual, "14999.00")
	})

	Convey("Voucher prices convert from USD at the published rate", t, func() {
		target := models.NewVoucherSlotTarget(&models.VoucherSlotRest{ID: "vs-1", FinalPriceUSD: "50"})
		amount, err := ResolveOriginalAmount(target, cfg)
		So(err, ShouldBeNil)
		So(amount.StringFixed(2), ShouldEqual, "14850.00")
	})

	Convey("Milestone surcharge wins over any other populated variant", t, func() {
		target := models.PurchaseTarget{
			Kind:               models.TargetMilestoneSurcharge,
			MilestoneSurcharge: &models.MilestoneSurchargeRest{ID: "ms-1", AdditionalCharge: "3500"},
			Package:            &models.PackageRest{ID: "uae", Price: "11999"},
		}
		amount, err := ResolveOriginalAmount(target, cfg)
		So(err, ShouldBeNil)
		So(amount.StringFixed(2), ShouldEqual, "3500.00")
	})

	Convey("Appointment fee resolves directly", t, func() {
		target := models.NewAppointmentSlotTarget(&models.AppointmentSlotRest{ID: "as-1", Fee: "2500"})
		amount, err := ResolveOriginalAmount(target, cfg)
		So(err, ShouldBeNil)
		So(amount.StringFixed(2), ShouldEqual, "2500.00")
	})

	Convey("Additional documents sum their prices", t, func() {
		target := models.NewAdditionalDocumentsTarget(&models.AdditionalDocumentsRest{
			Documents: []models.DocumentCostRest{
				{Name: "good-standing", Price: "800"},
				{Name: "transcript", Price: "1200"},
			},
		})
		amount, err := ResolveOriginalAmount(target, cfg)
		So(err, ShouldBeNil)
		So(amount.StringFixed(2), ShouldEqual, "2000.00")
	})

	Convey("An empty target cannot be priced", t, func() {
		_, err := ResolveOriginalAmount(models.PurchaseTarget{Kind: models.TargetPackage}, cfg)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitPayableAmount(t *testing.T) {
	cfg := testConfig()
	target := models.NewPackageTarget(&models.PackageRest{ID: "saudi-arabia", Price: "14999"})

	Convey("No coupon leaves the payable equal to the original", t, func() {
		original, payable, err := PayableAmount(target, models.CouponStateDB{}, cfg)
		So(err, ShouldBeNil)
		So(original.StringFixed(2), ShouldEqual, "14999.00")
		So(payable.StringFixed(2), ShouldEqual, "14999.00")
	})

	Convey("An applied coupon reduces the payable amount", t, func() {
		coupon := models.CouponStateDB{Code: "SAVE1500", Applied: true, DiscountAmount: "1500.00", CouponID: "c-1"}
		original, payable, err := PayableAmount(target, coupon, cfg)
		So(err, ShouldBeNil)
		So(original.StringFixed(2), ShouldEqual, "14999.00")
		So(payable.StringFixed(2), ShouldEqual, "13499.00")
	})

	Convey("The discount applies to external targets too", t, func() {
		voucher := models.NewVoucherSlotTarget(&models.VoucherSlotRest{ID: "vs-1", FinalPriceUSD: "50"})
		coupon := models.CouponStateDB{Code: "SAVE1500", Applied: true, DiscountAmount: "1500.00", CouponID: "c-1"}
		_, payable, err := PayableAmount(voucher, coupon, cfg)
		So(err, ShouldBeNil)
		So(payable.StringFixed(2), ShouldEqual, "13350.00")
	})

	Convey("An unapplied rejection state does not discount", t, func() {
		coupon := models.CouponStateDB{Code: "BAD", Applied: false, Error: "expired"}
		_, payable, err := PayableAmount(target, coupon, cfg)
		So(err, ShouldBeNil)
		So(payable.StringFixed(2), ShouldEqual, "14999.00")
	})
}
