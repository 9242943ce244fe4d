package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

func payPalTestService(sdk PayPalSDK, mockDAO *dao.MockDAO) PayPalService {
	cfg := config.DefaultConfig()
	cfg.CheckoutWebURL = "https://medlaunch.health"
	return PayPalService{Client: sdk, DAO: mockDAO, Config: *cfg}
}

func TestUnitCreateOrderForCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSDK := NewMockPayPalSDK(mockCtrl)
	mockDAO := dao.NewMockDAO(mockCtrl)
	service := payPalTestService(mockSDK, mockDAO)

	Convey("The order is priced in USD at the published rate", t, func() {
		mockSDK.EXPECT().CreateOrder(gomock.Any(), paypal.OrderIntentCapture, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, units []paypal.PurchaseUnitRequest, _ *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error) {
				So(len(units), ShouldEqual, 1)
				So(units[0].Amount.Currency, ShouldEqual, "USD")
				So(units[0].Amount.Value, ShouldEqual, "50.50")
				So(appContext.ReturnURL, ShouldEqual, "https://medlaunch.health/checkout/chk-1/paypal-return")
				return &paypal.Order{
					ID:     "ORDER-1",
					Status: paypal.OrderStatusCreated,
					Links:  []paypal.Link{{Rel: "approve", Href: "https://paypal.test/approve/ORDER-1"}},
				}, nil
			})

		orderID, nextURL, responseType, err := service.CreateOrderForCheckout("chk-1", "14998.50")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(orderID, ShouldEqual, "ORDER-1")
		So(nextURL, ShouldEqual, "https://paypal.test/approve/ORDER-1")
	})

	Convey("An order that does not come back CREATED is an error", t, func() {
		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
			&paypal.Order{ID: "ORDER-2", Status: paypal.OrderStatusVoided}, nil)

		_, _, responseType, err := service.CreateOrderForCheckout("chk-1", "100")

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Error)
	})

	Convey("A malformed amount never reaches PayPal", t, func() {
		_, _, responseType, err := service.CreateOrderForCheckout("chk-1", "lots")
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})
}

func TestUnitCapturePaymentAndMarkPaid(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSDK := NewMockPayPalSDK(mockCtrl)
	mockDAO := dao.NewMockDAO(mockCtrl)
	service := payPalTestService(mockSDK, mockDAO)

	payment := &models.PaymentResourceDB{
		ID:                      "11111111111111111111",
		ExternalPaymentStatusID: "ORDER-1",
		Data:                    models.PaymentResourceDataDB{Status: "pending"},
	}

	Convey("An approved order is captured and the payment marked paid", t, func() {
		mockSDK.EXPECT().GetOrder(gomock.Any(), "ORDER-1").Return(&paypal.Order{ID: "ORDER-1", Status: paypal.OrderStatusApproved}, nil)
		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "ORDER-1", gomock.Any()).Return(&paypal.CaptureOrderResponse{}, nil)
		mockDAO.EXPECT().PatchPaymentResource(gomock.Any(), payment.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch *models.PaymentResourceDB) error {
				So(patch.Data.Status, ShouldEqual, "paid")
				So(patch.Data.CompletedAt.IsZero(), ShouldBeFalse)
				return nil
			})

		responseType, err := service.CapturePaymentAndMarkPaid(context.Background(), payment)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("An already completed order is not captured again", t, func() {
		mockSDK.EXPECT().GetOrder(gomock.Any(), "ORDER-1").Return(&paypal.Order{ID: "ORDER-1", Status: paypal.OrderStatusCompleted}, nil)
		mockDAO.EXPECT().PatchPaymentResource(gomock.Any(), payment.ID, gomock.Any()).Return(nil)

		responseType, err := service.CapturePaymentAndMarkPaid(context.Background(), payment)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("An unapproved order cannot be captured", t, func() {
		mockSDK.EXPECT().GetOrder(gomock.Any(), "ORDER-1").Return(&paypal.Order{ID: "ORDER-1", Status: paypal.OrderStatusCreated}, nil)

		responseType, err := service.CapturePaymentAndMarkPaid(context.Background(), payment)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Forbidden)
	})
}
