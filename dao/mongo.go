package dao

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

var client *mongo.Client

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	c, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot
	// continue.
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to mongodb")
	}

	// Check we can connect to the mongodb instance. The provided database and
	// collections do not have to exist at this point.
	pingContext, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	err = c.Ping(pingContext, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("ping to mongodb timed out")
	}

	client = c
	return client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is a MongoDB implementation of the DAO interface
type MongoService struct {
	db  MongoDatabaseInterface
	cfg *config.Config
}

// NewMongoService returns a MongoService backed by the configured database
func NewMongoService(cfg *config.Config) *MongoService {
	return &MongoService{
		db:  getMongoDatabase(cfg.MongoDBURL, cfg.Database),
		cfg: cfg,
	}
}

// CreatePaymentResource writes a new payment resource to the DB
func (m *MongoService) CreatePaymentResource(ctx context.Context, paymentResource *models.PaymentResourceDB) error {
	collection := m.db.Collection(m.cfg.PaymentsCollection)
	_, err := collection.InsertOne(ctx, paymentResource)
	return err
}

// GetPaymentResource gets a payment resource from the DB.
// If the payment is not found, nil is returned with no error.
func (m *MongoService) GetPaymentResource(ctx context.Context, id string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.db.Collection(m.cfg.PaymentsCollection)
	dbResource := collection.FindOne(ctx, bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetPaymentResourceByIdempotencyKey gets the payment resource previously
// created with the supplied client idempotency key, if any
func (m *MongoService) GetPaymentResourceByIdempotencyKey(ctx context.Context, key string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.db.Collection(m.cfg.PaymentsCollection)
	dbResource := collection.FindOne(ctx, bson.M{"idempotency_key": key})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// PatchPaymentResource patches a payment resource in the DB
func (m *MongoService) PatchPaymentResource(ctx context.Context, id string, paymentUpdate *models.PaymentResourceDB) error {
	collection := m.db.Collection(m.cfg.PaymentsCollection)

	patchUpdate := make(bson.M)

	// Patch only these fields
	if paymentUpdate.Data.Status != "" {
		patchUpdate["data.status"] = paymentUpdate.Data.Status
	}
	if paymentUpdate.Data.PaymentMethod != "" {
		patchUpdate["data.payment_method"] = paymentUpdate.Data.PaymentMethod
	}
	if paymentUpdate.Data.ProofURL != "" {
		patchUpdate["data.proof_url"] = paymentUpdate.Data.ProofURL
	}
	if !paymentUpdate.Data.CompletedAt.IsZero() {
		patchUpdate["data.completed_at"] = paymentUpdate.Data.CompletedAt
	}
	if paymentUpdate.ExternalPaymentStatusID != "" {
		patchUpdate["external_payment_status_id"] = paymentUpdate.ExternalPaymentStatusID
	}

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patchUpdate})
	return err
}

// CreateVoucherPurchase writes the dependent voucher purchase record for a
// payment. Purchase ids are derived from the payment id, so a duplicate key
// means a resubmission already wrote this record and is not an error.
func (m *MongoService) CreateVoucherPurchase(ctx context.Context, purchase *models.VoucherPurchaseDB) error {
	collection := m.db.Collection(m.cfg.VoucherPurchasesCollection)
	_, err := collection.InsertOne(ctx, purchase)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// CreateAppointmentBooking writes the dependent appointment booking record
// for a payment. Duplicate keys are tolerated for the same reason as
// voucher purchases.
func (m *MongoService) CreateAppointmentBooking(ctx context.Context, booking *models.AppointmentBookingDB) error {
	collection := m.db.Collection(m.cfg.AppointmentBookingsCollection)
	_, err := collection.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// GetAppointmentSlot gets an appointment slot from the DB.
// If the slot is not found, nil is returned with no error.
func (m *MongoService) GetAppointmentSlot(ctx context.Context, id string) (*models.AppointmentSlotDB, error) {
	var slot models.AppointmentSlotDB

	collection := m.db.Collection(m.cfg.AppointmentSlotsCollection)
	dbResource := collection.FindOne(ctx, bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&slot)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// GetVoucherSlot gets a voucher slot from the DB.
// If the slot is not found, nil is returned with no error.
func (m *MongoService) GetVoucherSlot(ctx context.Context, id string) (*models.VoucherSlotDB, error) {
	var slot models.VoucherSlotDB

	collection := m.db.Collection(m.cfg.VoucherSlotsCollection)
	dbResource := collection.FindOne(ctx, bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&slot)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// GetMilestoneStep gets a case milestone step from the DB.
// If the step is not found, nil is returned with no error.
func (m *MongoService) GetMilestoneStep(ctx context.Context, id string) (*models.MilestoneStepDB, error) {
	var step models.MilestoneStepDB

	collection := m.db.Collection(m.cfg.MilestoneStepsCollection)
	dbResource := collection.FindOne(ctx, bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&step)
	if err != nil {
		return nil, err
	}

	return &step, nil
}

// MarkAppointmentSlotUnavailable marks an appointment slot as no longer
// bookable
func (m *MongoService) MarkAppointmentSlotUnavailable(ctx context.Context, id string) error {
	collection := m.db.Collection(m.cfg.AppointmentSlotsCollection)
	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"available": false}})
	return err
}

// MarkVoucherSlotUnavailable marks a voucher slot as no longer purchasable
func (m *MongoService) MarkVoucherSlotUnavailable(ctx context.Context, id string) error {
	collection := m.db.Collection(m.cfg.VoucherSlotsCollection)
	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"available": false}})
	return err
}

// ListAvailableAppointmentSlots returns all appointment slots still open for
// booking
func (m *MongoService) ListAvailableAppointmentSlots(ctx context.Context) ([]models.AppointmentSlotDB, error) {
	collection := m.db.Collection(m.cfg.AppointmentSlotsCollection)

	cursor, err := collection.Find(ctx, bson.M{"available": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.AppointmentSlotDB
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// ListAvailableVoucherSlots returns all voucher slots still open for purchase
func (m *MongoService) ListAvailableVoucherSlots(ctx context.Context) ([]models.VoucherSlotDB, error) {
	collection := m.db.Collection(m.cfg.VoucherSlotsCollection)

	cursor, err := collection.Find(ctx, bson.M{"available": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.VoucherSlotDB
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
