package models

import "time"

// CouponStateDB is the stored form of a coupon state
type CouponStateDB struct {
	Code           string `json:"code,omitempty"`
	Applied        bool   `json:"applied"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	CouponID       string `json:"coupon_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// CheckoutSessionDB is the persisted unit of an in-flight checkout. Only
// identifiers are stored for the selected package and the external target;
// both are re-resolved on load so a session can never resurrect a package
// that has been removed from the catalog.
type CheckoutSessionDB struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	Step              string        `json:"step"`
	SelectedPackageID string        `json:"selected_package_id,omitempty"`
	TargetKind        string        `json:"target_kind"`
	TargetRefID       string        `json:"target_ref_id,omitempty"`
	CaseID            string        `json:"case_id,omitempty"`
	ExternalEntry     bool          `json:"external_entry"`
	Coupon            CouponStateDB `json:"coupon"`
	ProofUploaded     bool          `json:"proof_uploaded"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
