// Package transformers maps between database and rest models
package transformers

import (
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// CheckoutTransformer transforms checkout session data between rest and
// stored models
type CheckoutTransformer struct{}

// TransformToRest transforms a stored checkout session into its rest model.
// The purchase target and amounts are derived elsewhere; only the stored
// fields are mapped here.
func (ct CheckoutTransformer) TransformToRest(dbSession models.CheckoutSessionDB) models.CheckoutSessionRest {
	return models.CheckoutSessionRest{
		MetaData: models.CheckoutMetaData{
			ID:     dbSession.ID,
			UserID: dbSession.UserID,
		},
		Step:          dbSession.Step,
		Coupon:        models.CouponStateRest(dbSession.Coupon),
		ProofUploaded: dbSession.ProofUploaded,
		CreatedAt:     dbSession.CreatedAt,
		UpdatedAt:     dbSession.UpdatedAt,
	}
}

// SlotTransformer transforms slot and milestone records between stored and
// rest models
type SlotTransformer struct{}

// AppointmentSlotToRest transforms a stored appointment slot into its rest
// model
func (st SlotTransformer) AppointmentSlotToRest(db models.AppointmentSlotDB) models.AppointmentSlotRest {
	return models.AppointmentSlotRest{
		ID:        db.ID,
		Date:      db.Date,
		StartTime: db.StartTime,
		EndTime:   db.EndTime,
		Fee:       db.Fee,
		Available: db.Available,
	}
}

// VoucherSlotToRest transforms a stored voucher slot into its rest model
func (st SlotTransformer) VoucherSlotToRest(db models.VoucherSlotDB) models.VoucherSlotRest {
	return models.VoucherSlotRest{
		ID:            db.ID,
		ExamAuthority: db.ExamAuthority,
		ExamDate:      db.ExamDate,
		StartTime:     db.StartTime,
		EndTime:       db.EndTime,
		FinalPriceUSD: db.FinalPriceUSD,
		Available:     db.Available,
	}
}

// MilestoneStepToRest transforms a stored milestone step into the surcharge
// rest model
func (st SlotTransformer) MilestoneStepToRest(db models.MilestoneStepDB) models.MilestoneSurchargeRest {
	return models.MilestoneSurchargeRest{
		ID:               db.ID,
		CaseID:           db.CaseID,
		Name:             db.Name,
		AdditionalCharge: db.AdditionalCharge,
	}
}
