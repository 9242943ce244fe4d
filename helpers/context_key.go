package helpers

import (
	"context"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyUserDetails is a specific key for identifying "user_details" contexts added to the http request
var ContextKeyUserDetails = ContextKey("user_details")

// ContextKeyCheckoutSession is a specific key for identifying "checkout_session" contexts added to the http request
var ContextKeyCheckoutSession = ContextKey("checkout_session")

// WithUserDetails stores the authenticated user's details in the context
func WithUserDetails(ctx context.Context, userDetails models.AuthUserDetails) context.Context {
	return context.WithValue(ctx, ContextKeyUserDetails, userDetails)
}

// WithCheckoutSession stores a loaded checkout session in the context
func WithCheckoutSession(ctx context.Context, session *models.CheckoutSessionDB) context.Context {
	return context.WithValue(ctx, ContextKeyCheckoutSession, session)
}

// CheckoutSessionFromContext retrieves the checkout session loaded by the
// checkout authentication interceptor
func CheckoutSessionFromContext(ctx context.Context) (*models.CheckoutSessionDB, bool) {
	session, ok := ctx.Value(ContextKeyCheckoutSession).(*models.CheckoutSessionDB)
	return session, ok && session != nil
}
