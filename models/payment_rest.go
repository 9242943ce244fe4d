package models

import "time"

// PaymentRefsRest holds whichever foreign references apply to a payment
type PaymentRefsRest struct {
	PackageID         string `json:"package_id,omitempty"`
	MilestoneStepID   string `json:"milestone_step_id,omitempty"`
	AppointmentSlotID string `json:"appointment_slot_id,omitempty"`
	VoucherSlotID     string `json:"voucher_slot_id,omitempty"`
	CouponID          string `json:"coupon_id,omitempty"`
	CaseID            string `json:"case_id,omitempty"`
}

// PaymentMetaData is payment data not served in the response body
type PaymentMetaData struct {
	ID                      string
	IdempotencyKey          string
	ExternalPaymentStatusID string
}

// PaymentResourceRest is the public facing payment record returned after a
// checkout submission
type PaymentResourceRest struct {
	MetaData      PaymentMetaData `json:"-"`
	Amount        string          `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	ProofURL      string          `json:"proof_url,omitempty"`
	CreatedBy     CreatedByRest   `json:"created_by"`
	Refs          PaymentRefsRest `json:"refs"`
	NextURL       string          `json:"next_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
	CompletedAt   time.Time       `json:"completed_at,omitempty"`
}

// CreatedByRest is the user who submitted the payment
type CreatedByRest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
}
