package models

// OutgoingCouponValidationRequest is the body sent to the coupon validation
// service
type OutgoingCouponValidationRequest struct {
	Code      string `json:"code"`
	UserID    string `json:"user_id"`
	PackageID string `json:"package_id,omitempty"`
	Amount    string `json:"amount"`
}

// IncomingCouponValidationResponse is the validity decision returned by the
// coupon validation service. The client never computes eligibility itself.
type IncomingCouponValidationResponse struct {
	IsValid        bool   `json:"is_valid"`
	CouponID       string `json:"coupon_id,omitempty"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}
