package interceptors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/fixtures"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
)

func checkoutRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/checkouts/"+fixtures.TestCheckoutID, nil)
	req = mux.SetURLVars(req, map[string]string{"checkout_id": fixtures.TestCheckoutID})
	userDetails := fixtures.GetUserDetails()
	userDetails.ID = userID
	return req.WithContext(helpers.WithUserDetails(req.Context(), userDetails))
}

func TestUnitCheckoutAuthenticationIntercept(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStore := dao.NewMockSessionStore(mockCtrl)
	interceptor := CheckoutAuthenticationInterceptor{Store: mockStore}

	Convey("No checkout id in the URL", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/checkouts/", nil)

		interceptor.CheckoutAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("No user details in the context", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/checkouts/"+fixtures.TestCheckoutID, nil)
		req = mux.SetURLVars(req, map[string]string{"checkout_id": fixtures.TestCheckoutID})

		interceptor.CheckoutAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Error loading the session", t, func() {
		mockStore.EXPECT().Load(gomock.Any(), fixtures.TestCheckoutID).Return(nil, errors.New("redis down"))

		w := httptest.NewRecorder()
		interceptor.CheckoutAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, checkoutRequest(fixtures.TestUserID))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Session not found", t, func() {
		mockStore.EXPECT().Load(gomock.Any(), fixtures.TestCheckoutID).Return(nil, nil)

		w := httptest.NewRecorder()
		interceptor.CheckoutAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, checkoutRequest(fixtures.TestUserID))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Session belongs to another user", t, func() {
		session := fixtures.GetCheckoutSession("select-package", "")
		mockStore.EXPECT().Load(gomock.Any(), fixtures.TestCheckoutID).Return(session, nil)

		w := httptest.NewRecorder()
		interceptor.CheckoutAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, checkoutRequest("someone-else"))
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Owned session is stored in the context", t, func() {
		session := fixtures.GetCheckoutSession("select-package", "")
		mockStore.EXPECT().Load(gomock.Any(), fixtures.TestCheckoutID).Return(session, nil)

		var sawSession bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawSession = helpers.CheckoutSessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		interceptor.CheckoutAuthenticationIntercept(next).ServeHTTP(w, checkoutRequest(fixtures.TestUserID))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(sawSession, ShouldBeTrue)
	})
}
