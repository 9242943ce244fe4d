// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                      string `env:"BIND_ADDR"                        flag:"bind-addr"                        flagDesc:"Bind address"`
	Database                      string `env:"MONGODB_DATABASE"                 flag:"mongodb-database"                 flagDesc:"MongoDB database for data"`
	MongoDBURL                    string `env:"MONGODB_URL"                      flag:"mongodb-url"                      flagDesc:"MongoDB server URL"`
	PaymentsCollection            string `env:"MONGODB_PAYMENTS_COLLECTION"      flag:"mongodb-payments-collection"      flagDesc:"MongoDB collection for payment records"`
	VoucherPurchasesCollection    string `env:"MONGODB_VOUCHERS_COLLECTION"      flag:"mongodb-vouchers-collection"      flagDesc:"MongoDB collection for voucher purchases"`
	AppointmentBookingsCollection string `env:"MONGODB_BOOKINGS_COLLECTION"      flag:"mongodb-bookings-collection"      flagDesc:"MongoDB collection for appointment bookings"`
	AppointmentSlotsCollection    string `env:"MONGODB_APPT_SLOTS_COLLECTION"    flag:"mongodb-appt-slots-collection"    flagDesc:"MongoDB collection for appointment slots"`
	VoucherSlotsCollection        string `env:"MONGODB_VOUCHER_SLOTS_COLLECTION" flag:"mongodb-voucher-slots-collection" flagDesc:"MongoDB collection for voucher slots"`
	MilestoneStepsCollection      string `env:"MONGODB_MILESTONES_COLLECTION"    flag:"mongodb-milestones-collection"    flagDesc:"MongoDB collection for case milestone steps"`
	RedisAddr                     string `env:"REDIS_ADDR"                       flag:"redis-addr"                       flagDesc:"Redis server address for checkout sessions"`
	RedisPassword                 string `env:"REDIS_PASSWORD"                   flag:"redis-password"                   flagDesc:"Redis password"`
	SessionTTLHours               int    `env:"SESSION_TTL_HOURS"                flag:"session-ttl-hours"                flagDesc:"Hours an unfinished checkout session is kept"`
	JWTSecret                     string `env:"JWT_SECRET"                       flag:"jwt-secret"                       flagDesc:"Secret used to verify bearer tokens"`
	CheckoutWebURL                string `env:"CHECKOUT_WEB_URL"                 flag:"checkout-web-url"                 flagDesc:"Base URL for the checkout web frontend"`
	CouponAPIURL                  string `env:"COUPON_API_URL"                   flag:"coupon-api-url"                   flagDesc:"URL used to validate coupon codes"`
	CouponAPIBearerToken          string `env:"COUPON_API_BEARER_TOKEN"          flag:"coupon-api-bearer-token"          flagDesc:"Bearer token used to authenticate coupon validation calls"`
	FileStoreURL                  string `env:"FILE_STORE_URL"                   flag:"file-store-url"                   flagDesc:"URL of the object store holding payment proofs"`
	FileStoreBearerToken          string `env:"FILE_STORE_BEARER_TOKEN"          flag:"file-store-bearer-token"          flagDesc:"Bearer token used to authenticate object store calls"`
	FileStoreBucket               string `env:"FILE_STORE_BUCKET"                flag:"file-store-bucket"                flagDesc:"Object store bucket for payment proofs"`
	PaypalEnv                     string `env:"PAYPAL_ENV"                       flag:"paypal-env"                       flagDesc:"PayPal environment, live or test"`
	PaypalClientID                string `env:"PAYPAL_CLIENT_ID"                 flag:"paypal-client-id"                 flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret                  string `env:"PAYPAL_SECRET"                    flag:"paypal-secret"                    flagDesc:"Secret used to authenticate API calls with PayPal"`
	Currency                      string `env:"CURRENCY"                         flag:"currency"                         flagDesc:"Local currency code payments are charged in"`
	USDConversionRate             string `env:"USD_CONVERSION_RATE"              flag:"usd-conversion-rate"              flagDesc:"Fixed published rate used to convert voucher prices from USD"`
	MaxProofSizeBytes             int64  `env:"MAX_PROOF_SIZE_BYTES"             flag:"max-proof-size-bytes"             flagDesc:"Maximum accepted payment proof file size in bytes"`
	RetryCooldownSeconds          int    `env:"RETRY_COOLDOWN_SECONDS"           flag:"retry-cooldown-seconds"           flagDesc:"Cooldown hint returned with retryable gateway failures"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                      "checkout",
		PaymentsCollection:            "payments",
		VoucherPurchasesCollection:    "voucher_purchases",
		AppointmentBookingsCollection: "appointment_bookings",
		AppointmentSlotsCollection:    "appointment_slots",
		VoucherSlotsCollection:        "voucher_slots",
		MilestoneStepsCollection:      "milestone_steps",
		SessionTTLHours:               24,
		FileStoreBucket:               "payment-proofs",
		Currency:                      "PKR",
		USDConversionRate:             "297",
		MaxProofSizeBytes:             5242880,
		RetryCooldownSeconds:          15,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
