package service

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/transformers"
)

// PaymentStatus Enum Type
type PaymentStatus int

// Enumeration containing all possible payment statuses
const (
	Pending PaymentStatus = 1 + iota
	Paid
	Failed
)

// String representation of payment statuses
var paymentStatuses = [...]string{
	"pending",
	"paid",
	"failed",
}

func (paymentStatus PaymentStatus) String() string {
	return paymentStatuses[paymentStatus-1]
}

// Supported payment methods
const (
	MethodBankTransfer = "bank-transfer"
	MethodPayPal       = "paypal"
)

// SubmissionService runs the checkout submission chain: proof upload, payment
// record insert, dependent booking or voucher insert, slot update, session
// clear. The steps are strictly sequential with no rollback; a resubmission
// with the same idempotency key resumes from the failed step.
type SubmissionService struct {
	CheckoutService *CheckoutService
	FileStore       *FileStoreService
	PayPal          *PayPalService
	Config          config.Config
}

// SubmitPayment validates the submission, persists the payment record with
// its proof, creates whichever dependent record the target requires and
// confirms the checkout
func (service *SubmissionService) SubmitPayment(req *http.Request, session *models.CheckoutSessionDB, proof *models.UploadedProof, incoming models.SubmitPaymentRequest) (*models.PaymentResourceRest, ResponseType, error) {
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		return nil, NotAuthenticated, fmt.Errorf("no authenticated user for checkout submission")
	}

	ctx := req.Context()

	method := incoming.PaymentMethod
	if method == "" {
		method = MethodBankTransfer
	}
	if method != MethodBankTransfer && method != MethodPayPal {
		return nil, InvalidData, fmt.Errorf("unsupported payment method [%s]", method)
	}

	// A resubmission with a known idempotency key must not create a second
	// payment record; it picks the chain up at the dependent writes.
	existingPayment, err := service.CheckoutService.DAO.GetPaymentResourceByIdempotencyKey(ctx, incoming.IdempotencyKey)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking idempotency key: [%v]", err)
	}
	if existingPayment != nil {
		return service.completeSubmission(ctx, session, existingPayment)
	}

	target, responseType, err := service.CheckoutService.resolveTarget(ctx, session)
	if err != nil {
		return nil, responseType, err
	}

	milestonePath := target.MilestoneSurcharge != nil

	step, err := StepFromString(session.Step)
	if err != nil {
		return nil, Error, err
	}
	submittable := step == UploadProof ||
		(step == PaymentDetails && (milestonePath || method == MethodPayPal))
	if !submittable {
		return nil, Forbidden, fmt.Errorf("cannot submit checkout at step [%s]", session.Step)
	}

	proofRequired := method == MethodBankTransfer && !(milestonePath && proof == nil && step == PaymentDetails)
	if proofRequired && (proof == nil || proof.Size == 0) {
		return nil, MissingProof, fmt.Errorf("a proof of payment file is required")
	}

	if proof != nil && proof.Size > 0 {
		if responseType, err = ValidateProof(proof, service.Config.MaxProofSizeBytes); err != nil {
			return nil, responseType, err
		}
	}

	_, payable, err := PayableAmount(target, session.Coupon, &service.Config)
	if err != nil {
		return nil, Error, fmt.Errorf("error computing payable amount: [%v]", err)
	}

	proofURL := ""
	if proof != nil && proof.Size > 0 {
		proofURL, err = service.FileStore.UploadProof(ctx, userDetails.ID, proof)
		if err != nil {
			return nil, UploadFailed, fmt.Errorf("error uploading proof of payment: [%v]", err)
		}
	}

	payment := &models.PaymentResourceDB{
		ID:             generateID(),
		IdempotencyKey: incoming.IdempotencyKey,
		Data: models.PaymentResourceDataDB{
			Amount:        payable.StringFixed(2),
			Currency:      service.Config.Currency,
			Status:        Pending.String(),
			PaymentMethod: method,
			ProofURL:      proofURL,
			CreatedBy: models.CreatedByDB{
				ID:       userDetails.ID,
				Email:    userDetails.Email,
				Forename: userDetails.Forename,
				Surname:  userDetails.Surname,
			},
			Refs:      paymentRefs(target, session),
			CreatedAt: time.Now().Truncate(time.Millisecond),
		},
	}

	var nextURL string
	if method == MethodPayPal {
		orderID, approvalURL, payPalResponseType, payPalErr := service.PayPal.CreateOrderForCheckout(session.ID, payable.StringFixed(2))
		if payPalErr != nil {
			return nil, payPalResponseType, payPalErr
		}
		payment.ExternalPaymentStatusID = orderID
		nextURL = approvalURL
	}

	err = service.CheckoutService.DAO.CreatePaymentResource(ctx, payment)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing payment record: [%v]", err)
	}

	paymentRest, responseType, err := service.completeSubmission(ctx, session, payment)
	if err != nil {
		return nil, responseType, err
	}
	if nextURL != "" {
		paymentRest.NextURL = nextURL
	}
	return paymentRest, Success, nil
}

// completeSubmission runs the dependent writes that follow the payment
// record: a voucher purchase or appointment booking, the slot availability
// update, and the session clear. Dependent ids are derived from the payment
// id so a retried chain never duplicates them.
func (service *SubmissionService) completeSubmission(ctx context.Context, session *models.CheckoutSessionDB, payment *models.PaymentResourceDB) (*models.PaymentResourceRest, ResponseType, error) {
	now := time.Now().Truncate(time.Millisecond)

	switch models.TargetKind(session.TargetKind) {
	case models.TargetVoucherSlot:
		purchase := &models.VoucherPurchaseDB{
			ID:            "vp-" + payment.ID,
			PaymentID:     payment.ID,
			VoucherSlotID: session.TargetRefID,
			UserID:        session.UserID,
			CreatedAt:     now,
		}
		if err := service.CheckoutService.DAO.CreateVoucherPurchase(ctx, purchase); err != nil {
			return nil, Error, fmt.Errorf("error writing voucher purchase: [%v]", err)
		}
		if err := service.CheckoutService.DAO.MarkVoucherSlotUnavailable(ctx, session.TargetRefID); err != nil {
			return nil, Error, fmt.Errorf("error marking voucher slot unavailable: [%v]", err)
		}

	case models.TargetAppointmentSlot:
		booking := &models.AppointmentBookingDB{
			ID:                "ab-" + payment.ID,
			PaymentID:         payment.ID,
			AppointmentSlotID: session.TargetRefID,
			UserID:            session.UserID,
			CreatedAt:         now,
		}
		if err := service.CheckoutService.DAO.CreateAppointmentBooking(ctx, booking); err != nil {
			return nil, Error, fmt.Errorf("error writing appointment booking: [%v]", err)
		}
		if err := service.CheckoutService.DAO.MarkAppointmentSlotUnavailable(ctx, session.TargetRefID); err != nil {
			return nil, Error, fmt.Errorf("error marking appointment slot unavailable: [%v]", err)
		}
	}

	session.Step = Confirmation.String()
	session.UpdatedAt = now
	if err := service.CheckoutService.Store.Clear(ctx, session.ID); err != nil {
		return nil, Error, fmt.Errorf("error clearing checkout session: [%v]", err)
	}

	paymentRest := transformers.PaymentTransformer{}.TransformToRest(*payment)
	return &paymentRest, Success, nil
}

func paymentRefs(target models.PurchaseTarget, session *models.CheckoutSessionDB) models.PaymentRefsDB {
	refs := models.PaymentRefsDB{
		CaseID: session.CaseID,
	}
	if session.Coupon.Applied {
		refs.CouponID = session.Coupon.CouponID
	}
	switch {
	case target.Package != nil:
		refs.PackageID = target.Package.ID
	case target.MilestoneSurcharge != nil:
		refs.MilestoneStepID = target.MilestoneSurcharge.ID
	case target.AppointmentSlot != nil:
		refs.AppointmentSlotID = target.AppointmentSlot.ID
	case target.VoucherSlot != nil:
		refs.VoucherSlotID = target.VoucherSlot.ID
	}
	return refs
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by
// 13 numbers derived from the current time
func generateID() (i string) {
	rand.Seed(time.Now().UTC().UnixNano())
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}
