package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/fixtures"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

func submissionTestService(mockDAO *dao.MockDAO, mockStore *dao.MockSessionStore, sdk PayPalSDK) *SubmissionService {
	cfg := config.DefaultConfig()
	cfg.CheckoutWebURL = "https://medlaunch.health"
	cfg.FileStoreURL = "http://filestore.test"

	checkout := &CheckoutService{
		DAO:     mockDAO,
		Store:   mockStore,
		Coupons: CouponService{Config: *cfg},
		Config:  *cfg,
	}
	return &SubmissionService{
		CheckoutService: checkout,
		FileStore:       &FileStoreService{Config: *cfg},
		PayPal:          &PayPalService{Client: sdk, DAO: mockDAO, Config: *cfg},
		Config:          *cfg,
	}
}

func submitRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/checkouts/"+fixtures.TestCheckoutID+"/submit", nil)
	return req.WithContext(helpers.WithUserDetails(req.Context(), fixtures.GetUserDetails()))
}

func registerFileStoreResponder() {
	httpmock.RegisterResponder("PUT", `=~^http://filestore\.test/object/payment-proofs/.*`,
		httpmock.NewStringResponder(201, ""))
}

func TestUnitSubmitPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDAO := dao.NewMockDAO(mockCtrl)
	mockStore := dao.NewMockSessionStore(mockCtrl)
	mockSDK := NewMockPayPalSDK(mockCtrl)
	service := submissionTestService(mockDAO, mockStore, mockSDK)

	incoming := models.SubmitPaymentRequest{IdempotencyKey: fixtures.TestIdempotencyKey}

	Convey("No authenticated user in context", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		session := fixtures.GetCheckoutSession("upload-proof", "uae")

		_, responseType, err := service.SubmitPayment(req, session, fixtures.GetProof(1024), incoming)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, NotAuthenticated)
	})

	Convey("An unsupported payment method is invalid", t, func() {
		session := fixtures.GetCheckoutSession("upload-proof", "uae")
		bad := models.SubmitPaymentRequest{PaymentMethod: "cheque", IdempotencyKey: fixtures.TestIdempotencyKey}

		_, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(1024), bad)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Submission is forbidden before the proof upload step", t, func() {
		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		session := fixtures.GetCheckoutSession("select-package", "")

		_, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(1024), incoming)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Forbidden)
	})

	Convey("A bank transfer without a proof file is rejected", t, func() {
		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		session := fixtures.GetCheckoutSession("upload-proof", "uae")

		_, responseType, err := service.SubmitPayment(submitRequest(), session, nil, incoming)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, MissingProof)
	})

	Convey("A package purchase by bank transfer runs the full chain", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerFileStoreResponder()

		session := fixtures.GetCheckoutSession("upload-proof", "uae")
		var createdPayment *models.PaymentResourceDB

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		mockDAO.EXPECT().CreatePaymentResource(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payment *models.PaymentResourceDB) error {
				createdPayment = payment
				return nil
			})
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(2*1024*1024), incoming)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, "pending")
		So(payment.Amount, ShouldEqual, "11999.00")
		So(payment.Currency, ShouldEqual, "PKR")
		So(payment.PaymentMethod, ShouldEqual, "bank-transfer")
		So(payment.ProofURL, ShouldContainSubstring, "/object/public/payment-proofs/user-123/")
		So(payment.Refs.PackageID, ShouldEqual, "uae")
		So(payment.CreatedBy.ID, ShouldEqual, fixtures.TestUserID)
		So(session.Step, ShouldEqual, "confirmation")

		So(createdPayment, ShouldNotBeNil)
		So(createdPayment.IdempotencyKey, ShouldEqual, fixtures.TestIdempotencyKey)
		So(len(createdPayment.ID), ShouldEqual, 20)
	})

	Convey("An applied coupon reduces the charged amount", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerFileStoreResponder()

		session := fixtures.GetCheckoutSession("upload-proof", "saudi-arabia")
		session.Coupon = models.CouponStateDB{Code: "SAVE1500", Applied: true, DiscountAmount: "1500.00", CouponID: "c-1"}

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		mockDAO.EXPECT().CreatePaymentResource(gomock.Any(), gomock.Any()).Return(nil)
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(1024), incoming)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Amount, ShouldEqual, "13499.00")
		So(payment.Refs.CouponID, ShouldEqual, "c-1")
	})

	Convey("A voucher purchase books the slot and records the purchase", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerFileStoreResponder()

		session := fixtures.GetVoucherCheckoutSession("upload-proof", "vs-1")
		var paymentID string

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		mockDAO.EXPECT().GetVoucherSlot(gomock.Any(), "vs-1").Return(fixtures.GetVoucherSlot("vs-1"), nil)
		mockDAO.EXPECT().CreatePaymentResource(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payment *models.PaymentResourceDB) error {
				paymentID = payment.ID
				return nil
			})
		mockDAO.EXPECT().CreateVoucherPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, purchase *models.VoucherPurchaseDB) error {
				So(purchase.ID, ShouldEqual, "vp-"+paymentID)
				So(purchase.VoucherSlotID, ShouldEqual, "vs-1")
				So(purchase.UserID, ShouldEqual, fixtures.TestUserID)
				return nil
			})
		mockDAO.EXPECT().MarkVoucherSlotUnavailable(gomock.Any(), "vs-1").Return(nil)
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(1024), incoming)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Amount, ShouldEqual, "14850.00")
		So(payment.Refs.VoucherSlotID, ShouldEqual, "vs-1")
	})

	Convey("A milestone surcharge submits from payment details without a proof", t, func() {
		session := fixtures.GetMilestoneCheckoutSession("ms-1", "case-9")

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		mockDAO.EXPECT().GetMilestoneStep(gomock.Any(), "ms-1").Return(fixtures.GetMilestoneStep("ms-1", "case-9"), nil)
		mockDAO.EXPECT().CreatePaymentResource(gomock.Any(), gomock.Any()).Return(nil)
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, nil, incoming)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Amount, ShouldEqual, "3500.00")
		So(payment.ProofURL, ShouldBeEmpty)
		So(payment.Refs.MilestoneStepID, ShouldEqual, "ms-1")
		So(payment.Refs.CaseID, ShouldEqual, "case-9")
	})

	Convey("A resubmission with a known idempotency key resumes, not duplicates", t, func() {
		session := fixtures.GetVoucherCheckoutSession("upload-proof", "vs-1")
		existing := &models.PaymentResourceDB{
			ID:             "11111111111111111111",
			IdempotencyKey: fixtures.TestIdempotencyKey,
			Data:           models.PaymentResourceDataDB{Amount: "14850.00", Status: "pending"},
		}

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(existing, nil)
		mockDAO.EXPECT().CreateVoucherPurchase(gomock.Any(), gomock.Any()).Return(nil)
		mockDAO.EXPECT().MarkVoucherSlotUnavailable(gomock.Any(), "vs-1").Return(nil)
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, nil, incoming)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.MetaData.ID, ShouldEqual, "11111111111111111111")
		So(payment.Amount, ShouldEqual, "14850.00")
	})

	Convey("A file store failure surfaces as an upload failure", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("PUT", `=~^http://filestore\.test/object/payment-proofs/.*`,
			httpmock.NewStringResponder(500, "store down"))

		session := fixtures.GetCheckoutSession("upload-proof", "uae")
		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)

		_, responseType, err := service.SubmitPayment(submitRequest(), session, fixtures.GetProof(1024), incoming)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, UploadFailed)
	})

	Convey("A PayPal submission creates an order and returns the approval URL", t, func() {
		session := fixtures.GetCheckoutSession("payment-details", "uae")
		paypalRequest := models.SubmitPaymentRequest{PaymentMethod: "paypal", IdempotencyKey: fixtures.TestIdempotencyKey}

		mockDAO.EXPECT().GetPaymentResourceByIdempotencyKey(gomock.Any(), fixtures.TestIdempotencyKey).Return(nil, nil)
		mockSDK.EXPECT().CreateOrder(gomock.Any(), paypal.OrderIntentCapture, gomock.Any(), gomock.Any(), gomock.Any()).Return(&paypal.Order{
			ID:     "ORDER-1",
			Status: paypal.OrderStatusCreated,
			Links:  []paypal.Link{{Rel: "approve", Href: "https://paypal.test/approve/ORDER-1"}},
		}, nil)

		var createdPayment *models.PaymentResourceDB
		mockDAO.EXPECT().CreatePaymentResource(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payment *models.PaymentResourceDB) error {
				createdPayment = payment
				return nil
			})
		mockStore.EXPECT().Clear(gomock.Any(), session.ID).Return(nil)

		payment, responseType, err := service.SubmitPayment(submitRequest(), session, nil, paypalRequest)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.NextURL, ShouldEqual, "https://paypal.test/approve/ORDER-1")
		So(payment.PaymentMethod, ShouldEqual, "paypal")
		So(createdPayment.ExternalPaymentStatusID, ShouldEqual, "ORDER-1")
	})
}
