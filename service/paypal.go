package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plutov/paypal/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

//go:generate mockgen -source=paypal.go -destination=mock_paypal.go -package=service

var payPalClient *paypal.Client

// GetPayPalClient returns the shared PayPal SDK client, creating it on first
// use
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	payPalClient = c
	return payPalClient, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PayPalService handles the specific functionality of paying for a checkout
// through PayPal instead of a bank-transfer proof upload
type PayPalService struct {
	Client PayPalSDK
	DAO    dao.DAO
	Config config.Config
}

// CreateOrderForCheckout creates a PayPal order for the payable amount and
// returns the order id together with the approval URL the payer is redirected
// to. PayPal orders are priced in USD at the fixed published rate.
func (pp *PayPalService) CreateOrderForCheckout(checkoutID string, payableAmount string) (string, string, ResponseType, error) {
	usdAmount, err := convertToUSD(payableAmount, &pp.Config)
	if err != nil {
		return "", "", InvalidData, fmt.Errorf("error converting amount for PayPal: [%v]", err)
	}

	order, err := pp.Client.CreateOrder(
		context.Background(),
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: checkoutID,
				Amount: &paypal.PurchaseUnitAmount{
					Value:    usdAmount,
					Currency: "USD",
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: fmt.Sprintf("%s/checkout/%s/paypal-return", pp.Config.CheckoutWebURL, checkoutID),
		},
	)
	if err != nil {
		return "", "", Error, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug().Msgf("paypal order response status: %s", order.Status)
		return "", "", Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var nextURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			nextURL = link.Href
		}
	}

	return order.ID, nextURL, Success, nil
}

// CapturePaymentAndMarkPaid captures an approved PayPal order and patches the
// payment record to paid
func (pp *PayPalService) CapturePaymentAndMarkPaid(ctx context.Context, payment *models.PaymentResourceDB) (ResponseType, error) {
	order, err := pp.Client.GetOrder(ctx, payment.ExternalPaymentStatusID)
	if err != nil {
		return Error, fmt.Errorf("error checking payment status with PayPal: [%v]", err)
	}

	if order.Status != paypal.OrderStatusApproved && order.Status != paypal.OrderStatusCompleted {
		return Forbidden, fmt.Errorf("paypal order [%s] not approved - status is %s", order.ID, order.Status)
	}

	if order.Status == paypal.OrderStatusApproved {
		_, err = pp.Client.CaptureOrder(ctx, order.ID, paypal.CaptureOrderRequest{})
		if err != nil {
			return Error, fmt.Errorf("error capturing PayPal order: [%v]", err)
		}
	}

	patch := &models.PaymentResourceDB{
		Data: models.PaymentResourceDataDB{
			Status:      Paid.String(),
			CompletedAt: time.Now().Truncate(time.Millisecond),
		},
	}
	err = pp.DAO.PatchPaymentResource(ctx, payment.ID, patch)
	if err != nil {
		return Error, fmt.Errorf("error updating payment status: [%v]", err)
	}

	return Success, nil
}

func convertToUSD(amount string, cfg *config.Config) (string, error) {
	local, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	rate, err := ParseAmount(cfg.USDConversionRate)
	if err != nil {
		return "", fmt.Errorf("invalid usd conversion rate in config: [%v]", err)
	}
	if rate.Equal(decimal.Zero) {
		return "", fmt.Errorf("usd conversion rate is zero")
	}
	return local.DivRound(rate, 2).StringFixed(2), nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
