package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// CouponService validates coupon codes against the remote coupon service and
// records the outcome on checkout sessions. Eligibility and discount amounts
// are decided entirely by the remote service.
type CouponService struct {
	Config config.Config
}

// Apply asks the coupon service to validate the code for the session's user
// and amount, then records the decision in the session coupon state. A
// rejection is a normal outcome stored in the state; only gateway failures
// are errors.
func (service *CouponService) Apply(ctx context.Context, session *models.CheckoutSessionDB, code string, originalAmount string) (ResponseType, error) {
	if code == "" {
		return InvalidData, fmt.Errorf("coupon code is empty")
	}

	// Re-applying the coupon that is already applied changes nothing.
	if session.Coupon.Applied && session.Coupon.Code == code {
		return Success, nil
	}

	validationResponse, err := service.validateCoupon(ctx, models.OutgoingCouponValidationRequest{
		Code:      code,
		UserID:    session.UserID,
		PackageID: session.SelectedPackageID,
		Amount:    originalAmount,
	})
	if err != nil {
		return Error, fmt.Errorf("error validating coupon: [%v]", err)
	}

	if !validationResponse.IsValid {
		errorMessage := validationResponse.ErrorMessage
		if errorMessage == "" {
			errorMessage = "this coupon cannot be applied to your purchase"
		}
		session.Coupon = models.CouponStateDB{
			Code:    code,
			Applied: false,
			Error:   errorMessage,
		}
		return Success, nil
	}

	if validationResponse.CouponID == "" {
		return Error, fmt.Errorf("coupon service returned a valid decision with no coupon id")
	}

	discount, err := ParseAmount(validationResponse.DiscountAmount)
	if err != nil {
		return Error, fmt.Errorf("coupon service returned an invalid discount: [%v]", err)
	}

	session.Coupon = models.CouponStateDB{
		Code:           code,
		Applied:        true,
		DiscountAmount: discount.StringFixed(2),
		CouponID:       validationResponse.CouponID,
	}

	return Success, nil
}

func (service *CouponService) validateCoupon(ctx context.Context, validationRequest models.OutgoingCouponValidationRequest) (*models.IncomingCouponValidationResponse, error) {
	requestBody, err := json.Marshal(validationRequest)
	if err != nil {
		return nil, fmt.Errorf("error marshalling coupon validation request: [%v]", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", service.Config.CouponAPIURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for coupon service: [%v]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+service.Config.CouponAPIBearerToken)
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to coupon service: [%v]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from coupon service: [%v]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from coupon service", resp.StatusCode)
	}

	validationResponse := &models.IncomingCouponValidationResponse{}
	err = json.Unmarshal(body, validationResponse)
	if err != nil {
		return nil, fmt.Errorf("error reading response from coupon service: [%v]", err)
	}

	return validationResponse, nil
}
