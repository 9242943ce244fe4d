// Package fixtures provides shared test data for checkout and payment
// tests.
package fixtures

import (
	"time"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

var TestUserID = "user-123"
var TestCheckoutID = "6b9e2f67-4c7a-4a3f-9d2e-0f6f3ab3c111"
var TestIdempotencyKey = "e4b2d3c1-5f6a-4b7c-8d9e-0a1b2c3d4e5f"

func GetUserDetails() models.AuthUserDetails {
	return models.AuthUserDetails{
		ID:       TestUserID,
		Email:    "demo@medlaunch.health",
		Forename: "Demo",
		Surname:  "User",
	}
}

// GetCheckoutSession returns an in-flight session at the given step with the
// given package selected
func GetCheckoutSession(step string, packageID string) *models.CheckoutSessionDB {
	return &models.CheckoutSessionDB{
		ID:                TestCheckoutID,
		UserID:            TestUserID,
		Step:              step,
		SelectedPackageID: packageID,
		TargetKind:        string(models.TargetPackage),
		TargetRefID:       packageID,
		CreatedAt:         time.Now().Truncate(time.Millisecond),
		UpdatedAt:         time.Now().Truncate(time.Millisecond),
	}
}

// GetVoucherCheckoutSession returns a session entered externally for a
// voucher slot purchase
func GetVoucherCheckoutSession(step string, voucherSlotID string) *models.CheckoutSessionDB {
	return &models.CheckoutSessionDB{
		ID:            TestCheckoutID,
		UserID:        TestUserID,
		Step:          step,
		TargetKind:    string(models.TargetVoucherSlot),
		TargetRefID:   voucherSlotID,
		ExternalEntry: true,
		CreatedAt:     time.Now().Truncate(time.Millisecond),
		UpdatedAt:     time.Now().Truncate(time.Millisecond),
	}
}

// GetMilestoneCheckoutSession returns a session entered externally for a
// milestone surcharge
func GetMilestoneCheckoutSession(stepID, caseID string) *models.CheckoutSessionDB {
	return &models.CheckoutSessionDB{
		ID:            TestCheckoutID,
		UserID:        TestUserID,
		Step:          "payment-details",
		TargetKind:    string(models.TargetMilestoneSurcharge),
		TargetRefID:   stepID,
		CaseID:        caseID,
		ExternalEntry: true,
		CreatedAt:     time.Now().Truncate(time.Millisecond),
		UpdatedAt:     time.Now().Truncate(time.Millisecond),
	}
}

func GetAppointmentSlot(id string) *models.AppointmentSlotDB {
	return &models.AppointmentSlotDB{
		ID:        id,
		Date:      "2026-09-14",
		StartTime: "10:00",
		EndTime:   "10:30",
		Fee:       "2500",
		Available: true,
	}
}

func GetVoucherSlot(id string) *models.VoucherSlotDB {
	return &models.VoucherSlotDB{
		ID:            id,
		ExamAuthority: "prometric",
		ExamDate:      "2026-10-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
		FinalPriceUSD: "50",
		Available:     true,
	}
}

func GetMilestoneStep(id, caseID string) *models.MilestoneStepDB {
	return &models.MilestoneStepDB{
		ID:               id,
		CaseID:           caseID,
		Name:             "dataflow-verification",
		AdditionalCharge: "3500",
	}
}

// GetProof returns a valid JPEG upload of the given size
func GetProof(size int64) *models.UploadedProof {
	return &models.UploadedProof{
		Filename:    "receipt.jpg",
		ContentType: "image/jpeg",
		Size:        size,
		Data:        make([]byte, size),
	}
}
