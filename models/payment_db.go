package models

import "time"

// PaymentResourceDB contains all payment details to be stored in the DB
type PaymentResourceDB struct {
	ID                      string                `bson:"_id"`
	IdempotencyKey          string                `bson:"idempotency_key"`
	ExternalPaymentStatusID string                `bson:"external_payment_status_id,omitempty"`
	Data                    PaymentResourceDataDB `bson:"data"`
}

// PaymentResourceDataDB is the payment detail stored under the record root
type PaymentResourceDataDB struct {
	Amount        string        `bson:"amount"`
	Currency      string        `bson:"currency"`
	Status        string        `bson:"status"`
	PaymentMethod string        `bson:"payment_method"`
	ProofURL      string        `bson:"proof_url,omitempty"`
	CreatedBy     CreatedByDB   `bson:"created_by"`
	Refs          PaymentRefsDB `bson:"refs"`
	CreatedAt     time.Time     `bson:"created_at,omitempty"`
	CompletedAt   time.Time     `bson:"completed_at,omitempty"`
}

// CreatedByDB is the user who submitted the payment
type CreatedByDB struct {
	ID       string `bson:"id"`
	Email    string `bson:"email"`
	Forename string `bson:"forename"`
	Surname  string `bson:"surname"`
}

// PaymentRefsDB holds whichever foreign references apply to a payment
type PaymentRefsDB struct {
	PackageID         string `bson:"package_id,omitempty"`
	MilestoneStepID   string `bson:"milestone_step_id,omitempty"`
	AppointmentSlotID string `bson:"appointment_slot_id,omitempty"`
	VoucherSlotID     string `bson:"voucher_slot_id,omitempty"`
	CouponID          string `bson:"coupon_id,omitempty"`
	CaseID            string `bson:"case_id,omitempty"`
}

// VoucherPurchaseDB is the dependent record created for a voucher-slot
// payment
type VoucherPurchaseDB struct {
	ID            string    `bson:"_id"`
	PaymentID     string    `bson:"payment_id"`
	VoucherSlotID string    `bson:"voucher_slot_id"`
	UserID        string    `bson:"user_id"`
	CreatedAt     time.Time `bson:"created_at"`
}

// AppointmentBookingDB is the dependent record created for an
// appointment-slot payment
type AppointmentBookingDB struct {
	ID                string    `bson:"_id"`
	PaymentID         string    `bson:"payment_id"`
	AppointmentSlotID string    `bson:"appointment_slot_id"`
	UserID            string    `bson:"user_id"`
	CreatedAt         time.Time `bson:"created_at"`
}

// AppointmentSlotDB is a bookable appointment slot as stored in the DB
type AppointmentSlotDB struct {
	ID        string `bson:"_id"`
	Date      string `bson:"date"`
	StartTime string `bson:"start_time"`
	EndTime   string `bson:"end_time"`
	Fee       string `bson:"fee"`
	Available bool   `bson:"available"`
}

// VoucherSlotDB is a purchasable exam voucher slot as stored in the DB
type VoucherSlotDB struct {
	ID            string `bson:"_id"`
	ExamAuthority string `bson:"exam_authority"`
	ExamDate      string `bson:"exam_date"`
	StartTime     string `bson:"start_time"`
	EndTime       string `bson:"end_time"`
	FinalPriceUSD string `bson:"final_price"`
	Available     bool   `bson:"available"`
}

// MilestoneStepDB is a case milestone step carrying an additional charge
type MilestoneStepDB struct {
	ID               string `bson:"_id"`
	CaseID           string `bson:"case_id"`
	Name             string `bson:"name"`
	AdditionalCharge string `bson:"additional_charge"`
}
