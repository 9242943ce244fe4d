package transformers

import (
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// PaymentTransformer transforms payment resource data between rest and
// database models
type PaymentTransformer struct{}

// TransformToDB transforms a payment resource rest model into its database
// model
func (pt PaymentTransformer) TransformToDB(rest models.PaymentResourceRest) models.PaymentResourceDB {
	paymentResourceData := models.PaymentResourceDataDB{
		Amount:        rest.Amount,
		Currency:      rest.Currency,
		Status:        rest.Status,
		PaymentMethod: rest.PaymentMethod,
		ProofURL:      rest.ProofURL,
		CreatedAt:     rest.CreatedAt,
		CompletedAt:   rest.CompletedAt,
	}

	paymentResourceData.CreatedBy = models.CreatedByDB(rest.CreatedBy)
	paymentResourceData.Refs = models.PaymentRefsDB(rest.Refs)

	return models.PaymentResourceDB{
		ID:                      rest.MetaData.ID,
		IdempotencyKey:          rest.MetaData.IdempotencyKey,
		ExternalPaymentStatusID: rest.MetaData.ExternalPaymentStatusID,
		Data:                    paymentResourceData,
	}
}

// TransformToRest transforms a payment resource database model into its rest
// model
func (pt PaymentTransformer) TransformToRest(dbResource models.PaymentResourceDB) models.PaymentResourceRest {
	return models.PaymentResourceRest{
		MetaData: models.PaymentMetaData{
			ID:                      dbResource.ID,
			IdempotencyKey:          dbResource.IdempotencyKey,
			ExternalPaymentStatusID: dbResource.ExternalPaymentStatusID,
		},
		Amount:        dbResource.Data.Amount,
		Currency:      dbResource.Data.Currency,
		Status:        dbResource.Data.Status,
		PaymentMethod: dbResource.Data.PaymentMethod,
		ProofURL:      dbResource.Data.ProofURL,
		CreatedBy:     models.CreatedByRest(dbResource.Data.CreatedBy),
		Refs:          models.PaymentRefsRest(dbResource.Data.Refs),
		CreatedAt:     dbResource.Data.CreatedAt,
		CompletedAt:   dbResource.Data.CompletedAt,
	}
}
