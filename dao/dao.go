// Package dao provides access to the backend stores: MongoDB for payment and
// booking records, Redis for in-flight checkout sessions.
package dao

import (
	"context"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

//go:generate mockgen -source=dao.go -destination=mock_dao.go -package=dao

// DAO is an interface for accessing payment, booking and slot records from a
// backend store
type DAO interface {
	CreatePaymentResource(ctx context.Context, paymentResource *models.PaymentResourceDB) error
	GetPaymentResource(ctx context.Context, id string) (*models.PaymentResourceDB, error)
	GetPaymentResourceByIdempotencyKey(ctx context.Context, key string) (*models.PaymentResourceDB, error)
	PatchPaymentResource(ctx context.Context, id string, paymentUpdate *models.PaymentResourceDB) error
	CreateVoucherPurchase(ctx context.Context, purchase *models.VoucherPurchaseDB) error
	CreateAppointmentBooking(ctx context.Context, booking *models.AppointmentBookingDB) error
	GetAppointmentSlot(ctx context.Context, id string) (*models.AppointmentSlotDB, error)
	GetVoucherSlot(ctx context.Context, id string) (*models.VoucherSlotDB, error)
	GetMilestoneStep(ctx context.Context, id string) (*models.MilestoneStepDB, error)
	MarkAppointmentSlotUnavailable(ctx context.Context, id string) error
	MarkVoucherSlotUnavailable(ctx context.Context, id string) error
	ListAvailableAppointmentSlots(ctx context.Context) ([]models.AppointmentSlotDB, error)
	ListAvailableVoucherSlots(ctx context.Context) ([]models.VoucherSlotDB, error)
}

// SessionStore is a key-value persistence port for in-flight checkout
// sessions. Every step transition is saved through it and a confirmed
// submission clears it.
type SessionStore interface {
	Save(ctx context.Context, session *models.CheckoutSessionDB) error
	Load(ctx context.Context, id string) (*models.CheckoutSessionDB, error)
	Clear(ctx context.Context, id string) error
}
