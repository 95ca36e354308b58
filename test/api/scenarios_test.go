/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/energy-qa/energy-conformance/test/api"
	"github.com/energy-qa/energy-conformance/test/api/mock"
)

// TestResetUnauthorized ensures the reset is sent with credentials stripped.
func TestResetUnauthorized(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	client.EXPECT().Reset(gomock.Any(), http.StatusUnauthorized, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, opts ...api.RequestOption) (*api.Response, error) {
			req, err := http.NewRequest(http.MethodPost, "http://localhost/reset", nil)
			require.NoError(t, err)

			req.Header.Set("Authorization", "Bearer token")

			for _, opt := range opts {
				opt(req)
			}

			require.Empty(t, req.Header.Get("Authorization"))

			return jsonResponse(http.StatusUnauthorized, `{"message":"Unauthorized"}`), nil
		})

	require.NoError(t, api.ResetUnauthorized(t.Context(), client, newFixture(t)))
}

// TestBuyAllEnergy ensures one order is recorded per listed energy type.
func TestBuyAllEnergy(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)

	gomock.InOrder(
		client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":1},{"id":2},{"id":3}]`), nil),
		client.EXPECT().Buy(gomock.Any(), api.EnergyID(1), 10, http.StatusOK).Return(jsonResponse(http.StatusOK, `{"orderId":101}`), nil),
		client.EXPECT().Buy(gomock.Any(), api.EnergyID(2), 10, http.StatusOK).Return(jsonResponse(http.StatusOK, `{"orderId":102}`), nil),
		client.EXPECT().Buy(gomock.Any(), api.EnergyID(3), 10, http.StatusOK).Return(jsonResponse(http.StatusOK, `{"orderId":103}`), nil),
	)

	require.NoError(t, api.BuyAllEnergy(t.Context(), client, fixture))
	require.Equal(t, []api.OrderID{101, 102, 103}, fixture.OrderIDs())
}

// TestBuyAllEnergyEmptyListing ensures an empty listing is a precondition
// failure raised before any purchase.
func TestBuyAllEnergyEmptyListing(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)

	client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `{"id":[]}`), nil)

	err := api.BuyAllEnergy(t.Context(), client, fixture)
	require.ErrorIs(t, err, api.ErrPrecondition)
	require.NotErrorIs(t, err, api.ErrAssertion)

	var precondition *api.PreconditionError
	require.ErrorAs(t, err, &precondition)
	require.Equal(t, api.ScenarioBuyAllEnergy, precondition.Scenario)
	require.Empty(t, fixture.OrderIDs())
}

// TestEnergyIDsStableEmptyListing ensures the precondition names the scenario.
func TestEnergyIDsStableEmptyListing(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[]`), nil)

	err := api.EnergyIDsStable(t.Context(), client, newFixture(t))
	require.ErrorIs(t, err, api.ErrPrecondition)

	var precondition *api.PreconditionError
	require.ErrorAs(t, err, &precondition)
	require.Equal(t, api.ScenarioEnergyIDsStable, precondition.Scenario)
}

// TestBuyEnergyMissingOrderID ensures a success without an order id fails.
func TestBuyEnergyMissingOrderID(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	client.EXPECT().Buy(gomock.Any(), api.EnergyID(1), 10, http.StatusOK).Return(jsonResponse(http.StatusOK, `{"message":"ok"}`), nil)

	_, err := api.BuyEnergy(t.Context(), client, 1, 10)
	require.ErrorIs(t, err, api.ErrAssertion)

	var field *api.FieldError
	require.ErrorAs(t, err, &field)
	require.Equal(t, "orderId", field.Field)
}

// TestListAndVerifyOrders ensures the first date is captured and every order
// is verified.
func TestListAndVerifyOrders(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)
	fixture.AddOrderID(101)
	fixture.AddOrderID(102)

	gomock.InOrder(
		client.EXPECT().Orders(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":101,"quantity":10,"creationDate":"2024-03-05T10:00:00"},{"id":102,"quantity":10,"creationDate":"2024-03-05T10:00:01"}]`), nil),
		client.EXPECT().Order(gomock.Any(), api.OrderID(101), http.StatusOK).Return(jsonResponse(http.StatusOK, `{"id":101,"quantity":10}`), nil),
		client.EXPECT().Order(gomock.Any(), api.OrderID(102), http.StatusOK).Return(jsonResponse(http.StatusOK, `{"id":102,"quantity":10}`), nil),
	)

	require.NoError(t, api.ListAndVerifyOrders(t.Context(), client, fixture))

	date, ok := fixture.FirstOrderDate()
	require.True(t, ok)
	require.Equal(t, "2024-03-05T10:00:00", date)
}

// TestListAndVerifyOrdersVacuous ensures zero collected orders still passes.
func TestListAndVerifyOrdersVacuous(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)

	client.EXPECT().Orders(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[]`), nil)

	require.NoError(t, api.ListAndVerifyOrders(t.Context(), client, fixture))

	_, ok := fixture.FirstOrderDate()
	require.False(t, ok)
}

// TestListAndVerifyOrdersQuantityMismatch ensures a wrong quantity is reported.
func TestListAndVerifyOrdersQuantityMismatch(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)
	fixture.AddOrderID(101)

	client.EXPECT().Orders(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[]`), nil)
	client.EXPECT().Order(gomock.Any(), api.OrderID(101), http.StatusOK).Return(jsonResponse(http.StatusOK, `{"id":101,"quantity":5}`), nil)

	err := api.ListAndVerifyOrders(t.Context(), client, fixture)

	var field *api.FieldError
	require.ErrorAs(t, err, &field)
	require.Equal(t, "quantity", field.Field)
	require.Equal(t, 10, field.Expected)
	require.Equal(t, 5, field.Actual)
}

// TestCountOrdersBeforeNowWithoutDate ensures the missing prerequisite is
// reported before any request is made.
func TestCountOrdersBeforeNowWithoutDate(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	err := api.CountOrdersBeforeNow(t.Context(), client, newFixture(t))
	require.True(t, api.IsPrecondition(err))
	require.ErrorContains(t, err, "no order date available")
}

// TestCountOrdersBeforeNow ensures the count is recorded without assertion.
func TestCountOrdersBeforeNow(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)
	fixture.SetFirstOrderDate("2024-03-05T10:00:00")
	fixture.Now = func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}

	client.EXPECT().Orders(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":1,"quantity":10,"creationDate":"2024-03-05T10:00:00"},{"id":2,"quantity":10,"creationDate":"2024-03-05T13:00:00"},{"id":3,"quantity":10}]`), nil)

	require.NoError(t, api.CountOrdersBeforeNow(t.Context(), client, fixture))

	count, ok := fixture.OrdersBeforeNow()
	require.True(t, ok)
	require.Equal(t, 1, count)
}

// TestUnauthorizedLogin ensures the message is checked as well as the status.
func TestUnauthorizedLogin(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	client.EXPECT().Login(gomock.Any(), api.InvalidCredentials, http.StatusUnauthorized).Return(jsonResponse(http.StatusUnauthorized, `{"message":"Unauthorized"}`), nil)
	require.NoError(t, api.UnauthorizedLogin(t.Context(), client, newFixture(t)))

	client.EXPECT().Login(gomock.Any(), api.InvalidCredentials, http.StatusUnauthorized).Return(jsonResponse(http.StatusUnauthorized, `{"message":"Forbidden"}`), nil)

	err := api.UnauthorizedLogin(t.Context(), client, newFixture(t))

	var field *api.FieldError
	require.ErrorAs(t, err, &field)
	require.Equal(t, "message", field.Field)
}

// TestBadBuyRequestStatus ensures a status mismatch from the client surfaces.
func TestBadBuyRequestStatus(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	statusError := &api.StatusError{Method: http.MethodPut, Path: "/buy/1/-5", Expected: http.StatusBadRequest, Actual: http.StatusOK}

	client.EXPECT().Buy(gomock.Any(), api.BadRequestEnergyID, api.NegativeQuantity, http.StatusBadRequest).Return(jsonResponse(http.StatusOK, `{"orderId":1}`), statusError)

	err := api.BadBuyRequest(t.Context(), client, newFixture(t))
	require.ErrorIs(t, err, api.ErrAssertion)
	require.ErrorAs(t, err, &statusError)
}

// TestResetAuthorized ensures the issued token is used for the reset.
func TestResetAuthorized(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)
	fixture := newFixture(t)
	fixture.Credentials = api.Credentials{Username: "test", Password: "testing"}

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), fixture.Credentials, http.StatusOK).Return(jsonResponse(http.StatusOK, `{"access_token":"abc"}`), nil),
		client.EXPECT().Reset(gomock.Any(), http.StatusOK, gomock.Any()).Return(jsonResponse(http.StatusOK, `{"message":"Success"}`), nil),
	)

	require.NoError(t, api.ResetAuthorized(t.Context(), client, fixture))
}

// TestResetAuthorizedWithoutCredentials ensures nothing is sent without a login.
func TestResetAuthorizedWithoutCredentials(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	require.True(t, api.IsPrecondition(api.ResetAuthorized(t.Context(), client, newFixture(t))))
}

// TestEnergyIDsStable ensures a changed listing is reported.
func TestEnergyIDsStable(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	gomock.InOrder(
		client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":1},{"id":2}]`), nil),
		client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":2},{"id":1}]`), nil),
		client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":1},{"id":2}]`), nil),
		client.EXPECT().EnergyIDs(gomock.Any(), http.StatusOK).Return(jsonResponse(http.StatusOK, `[{"id":1},{"id":3}]`), nil),
	)

	require.NoError(t, api.EnergyIDsStable(t.Context(), client, newFixture(t)))

	err := api.EnergyIDsStable(t.Context(), client, newFixture(t))

	var field *api.FieldError
	require.ErrorAs(t, err, &field)
	require.Equal(t, "id", field.Field)
	require.Contains(t, field.Actual, "added [3], removed [2]")
}

// TestBuyBoundaryQuantities ensures zero must be refused like a negative.
func TestBuyBoundaryQuantities(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockClientInterface(c)

	gomock.InOrder(
		client.EXPECT().Buy(gomock.Any(), api.BadRequestEnergyID, -1, http.StatusBadRequest).Return(jsonResponse(http.StatusBadRequest, `{"message":"Bad Request"}`), nil),
		client.EXPECT().Buy(gomock.Any(), api.BadRequestEnergyID, 0, 0).Return(jsonResponse(http.StatusOK, `{"orderId":7}`), nil),
	)

	err := api.BuyBoundaryQuantities(t.Context(), client, newFixture(t))

	var field *api.FieldError
	require.ErrorAs(t, err, &field)
	require.Equal(t, "status", field.Field)
}
