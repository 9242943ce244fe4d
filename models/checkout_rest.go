package models

import "time"

// IncomingCheckoutRequest is the data received in the body of the incoming
// request to create a checkout session. All fields are optional; at most one
// of the external target identifiers may be set.
type IncomingCheckoutRequest struct {
	PackageID         string `json:"package"`
	Promotion         string `json:"promotion"`
	MilestoneStepID   string `json:"step_id"`
	AppointmentSlotID string `json:"appointment_slot_id"`
	VoucherSlotID     string `json:"voucher_slot_id"`
	CaseID            string `json:"case_id"`
}

// SelectPackageRequest is the body of a package selection request
type SelectPackageRequest struct {
	PackageID string `json:"package" validate:"required"`
}

// ApplyCouponRequest is the body of a coupon application request
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// SubmitPaymentRequest is the body of a checkout submission request
type SubmitPaymentRequest struct {
	PaymentMethod  string `json:"payment_method"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,uuid4"`
}

// CouponStateRest holds the outcome of the most recent coupon operation on a
// checkout session. Applied implies a non-negative discount and a coupon id.
type CouponStateRest struct {
	Code           string `json:"code,omitempty"`
	Applied        bool   `json:"applied"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	CouponID       string `json:"coupon_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// CheckoutMetaData is checkout session data not served in the response body
type CheckoutMetaData struct {
	ID     string
	UserID string
}

// CheckoutLinksRest is a set of URLs related to the resource, including self
type CheckoutLinksRest struct {
	Self     string `json:"self" validate:"required"`
	Journey  string `json:"journey"`
	ThankYou string `json:"thank_you,omitempty"`
}

// CheckoutSessionRest is the public facing checkout session returned in
// responses
type CheckoutSessionRest struct {
	MetaData        CheckoutMetaData  `json:"-"`
	Step            string            `json:"step"`
	SelectedPackage *PackageRest      `json:"selected_package,omitempty"`
	Target          PurchaseTarget    `json:"target"`
	Coupon          CouponStateRest   `json:"coupon"`
	OriginalAmount  string            `json:"original_amount"`
	PayableAmount   string            `json:"payable_amount"`
	Currency        string            `json:"currency"`
	ProofUploaded   bool              `json:"proof_uploaded"`
	Links           CheckoutLinksRest `json:"links"`
	CreatedAt       time.Time         `json:"created_at,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty"`
}

// CheckoutResourcesRest is the catalog plus currently available slots served
// to the listing pages
type CheckoutResourcesRest struct {
	Packages         []PackageRest         `json:"packages"`
	AppointmentSlots []AppointmentSlotRest `json:"appointment_slots"`
	VoucherSlots     []VoucherSlotRest     `json:"voucher_slots"`
}
