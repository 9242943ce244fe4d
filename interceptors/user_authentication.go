package interceptors

import (
	"fmt"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// UserAuthenticationInterceptor validates the bearer token on incoming
// requests and stores the authenticated user's details in the request
// context
type UserAuthenticationInterceptor struct {
	Config config.Config
}

// UserAuthenticationIntercept rejects requests without a valid HS256 bearer
// token
func (uai UserAuthenticationInterceptor) UserAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Ctx(r.Context()).Error().Msg("UserAuthenticationInterceptor unauthorised: no bearer token")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(uai.Config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.Ctx(r.Context()).Error().Err(err).Msg("UserAuthenticationInterceptor unauthorised: invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		userDetails := userDetailsFromClaims(claims)
		if userDetails.ID == "" {
			log.Ctx(r.Context()).Error().Msg("UserAuthenticationInterceptor unauthorised: token has no subject")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := helpers.WithUserDetails(r.Context(), userDetails)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userDetailsFromClaims(claims jwt.MapClaims) models.AuthUserDetails {
	details := models.AuthUserDetails{}
	if sub, ok := claims["sub"].(string); ok {
		details.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		details.Email = email
	}
	if forename, ok := claims["forename"].(string); ok {
		details.Forename = forename
	}
	if surname, ok := claims["surname"].(string); ok {
		details.Surname = surname
	}
	return details
}
