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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

const (
	ScenarioResetUnauthorized     = "reset-unauthorized"
	ScenarioResetAuthorized       = "reset-authorized"
	ScenarioEnergyIDsStable       = "energy-ids-stable"
	ScenarioBuyAllEnergy          = "buy-all-energy"
	ScenarioListAndVerifyOrders   = "list-and-verify-orders"
	ScenarioCountOrdersBeforeNow  = "count-orders-before-now"
	ScenarioUnauthorizedLogin     = "unauthorized-login"
	ScenarioBadBuyRequest         = "bad-buy-request"
	ScenarioBuyBoundaryQuantities = "buy-boundary-quantities"
)

const (
	// MessageUnauthorized is returned with a 401.
	MessageUnauthorized = "Unauthorized"
	// MessageBadRequest is returned with a 400.
	MessageBadRequest = "Bad Request"

	// BadRequestEnergyID is the energy bought with invalid quantities.
	BadRequestEnergyID EnergyID = 1
	// NegativeQuantity is the quantity the bad request scenario submits.
	NegativeQuantity = -5
)

// InvalidCredentials are rejected by every deployment.
//
//nolint:gochecknoglobals
var InvalidCredentials = Credentials{
	Username: "wrongUser",
	Password: "wrongPassword",
}

// ResetUnauthorized checks that a reset without credentials is refused.
func ResetUnauthorized(ctx context.Context, c ClientInterface, _ *Fixture) error {
	if _, err := c.Reset(ctx, http.StatusUnauthorized, WithoutAuth()); err != nil {
		return fmt.Errorf("resetting without credentials: %w", err)
	}

	return nil
}

// ResetAuthorized logs in with the fixture credentials and resets the data
// with the issued token.
func ResetAuthorized(ctx context.Context, c ClientInterface, f *Fixture) error {
	if f.Credentials.Username == "" || f.Credentials.Password == "" {
		return NewPreconditionError(ScenarioResetAuthorized, "no credentials configured")
	}

	login, err := Login(ctx, c, f.Credentials, http.StatusOK)
	if err != nil {
		return err
	}

	if login.AccessToken == "" {
		return &FieldError{Field: "access_token", Expected: "a token", Actual: "nothing"}
	}

	if _, err := c.Reset(ctx, http.StatusOK, WithBearerToken(login.AccessToken)); err != nil {
		return fmt.Errorf("resetting with credentials: %w", err)
	}

	return nil
}

// EnergyIDsStable lists the energy ids twice and checks both listings hold
// the same set.
func EnergyIDsStable(ctx context.Context, c ClientInterface, f *Fixture) error {
	first, err := ListEnergyIDs(ctx, c)
	if err != nil {
		return withScenario(ScenarioEnergyIDsStable, err)
	}

	second, err := ListEnergyIDs(ctx, c)
	if err != nil {
		return withScenario(ScenarioEnergyIDsStable, err)
	}

	a := set.New[EnergyID](first...)
	b := set.New[EnergyID](second...)

	added := sortedIDs(b.Difference(a))
	removed := sortedIDs(a.Difference(b))

	if len(added) != 0 || len(removed) != 0 {
		return &FieldError{
			Field:    "id",
			Expected: fmt.Sprintf("%v", sortedIDs(a)),
			Actual:   fmt.Sprintf("%v (added %v, removed %v)", sortedIDs(b), added, removed),
		}
	}

	f.Log.Info("energy listing is stable", "ids", len(first))

	return nil
}

// BuyAllEnergy buys the default quantity of every listed energy type and
// records each order.
func BuyAllEnergy(ctx context.Context, c ClientInterface, f *Fixture) error {
	ids, err := ListEnergyIDs(ctx, c)
	if err != nil {
		return withScenario(ScenarioBuyAllEnergy, err)
	}

	for _, id := range ids {
		orderID, err := BuyEnergy(ctx, c, id, f.DefaultQuantity)
		if err != nil {
			return err
		}

		f.Log.Info("bought energy", "energyID", id, "quantity", f.DefaultQuantity, "orderID", orderID)

		f.AddOrderID(orderID)
	}

	return nil
}

// ListAndVerifyOrders records the first listed creation date, then checks
// every order bought during the run.
func ListAndVerifyOrders(ctx context.Context, c ClientInterface, f *Fixture) error {
	orders, err := ListOrders(ctx, c)
	if err != nil {
		return err
	}

	if len(orders) > 0 && orders[0].CreationDate != "" {
		f.SetFirstOrderDate(orders[0].CreationDate)
	}

	orderIDs := f.OrderIDs()

	// Zero collected orders passes vacuously. It usually means the buy
	// scenario was not run first.
	if len(orderIDs) == 0 {
		f.Log.Info("WARNING no orders were collected, nothing to verify", "listed", len(orders))
	}

	for _, orderID := range orderIDs {
		if err := VerifyOrder(ctx, c, orderID, f.DefaultQuantity); err != nil {
			return err
		}
	}

	return nil
}

// CountOrdersBeforeNow counts listed orders created before the current time.
// The count is observational and never asserted.
func CountOrdersBeforeNow(ctx context.Context, c ClientInterface, f *Fixture) error {
	if _, ok := f.FirstOrderDate(); !ok {
		return NewPreconditionError(ScenarioCountOrdersBeforeNow, "no order date available")
	}

	orders, err := ListOrders(ctx, c)
	if err != nil {
		return err
	}

	count := CountCreatedBefore(orders, f.Now())

	f.SetOrdersBeforeNow(count)
	f.Log.Info("orders before current time", "count", count, "total", len(orders))

	return nil
}

// UnauthorizedLogin checks that invalid credentials are refused.
func UnauthorizedLogin(ctx context.Context, c ClientInterface, _ *Fixture) error {
	return ExpectLoginRejected(ctx, c, InvalidCredentials)
}

// ExpectLoginRejected checks that credentials are refused with 401 and the
// standard message.
func ExpectLoginRejected(ctx context.Context, c ClientInterface, credentials Credentials) error {
	resp, err := c.Login(ctx, credentials, http.StatusUnauthorized)
	if err != nil {
		return fmt.Errorf("logging in as %q: %w", credentials.Username, err)
	}

	return ExpectMessage(resp, MessageUnauthorized)
}

// BadBuyRequest checks that a negative quantity is refused.
func BadBuyRequest(ctx context.Context, c ClientInterface, _ *Fixture) error {
	return ExpectBuyRejected(ctx, c, BadRequestEnergyID, NegativeQuantity)
}

// ExpectBuyRejected checks that a purchase is refused with 400 and the
// standard message.
func ExpectBuyRejected(ctx context.Context, c ClientInterface, energyID EnergyID, quantity int) error {
	resp, err := c.Buy(ctx, energyID, quantity, http.StatusBadRequest)
	if err != nil {
		return fmt.Errorf("buying %d units of energy %d: %w", quantity, energyID, err)
	}

	return ExpectMessage(resp, MessageBadRequest)
}

// BuyBoundaryQuantities checks that -1 is refused and that 0 is answered
// with the same status as -1.
func BuyBoundaryQuantities(ctx context.Context, c ClientInterface, f *Fixture) error {
	if err := ExpectBuyRejected(ctx, c, BadRequestEnergyID, -1); err != nil {
		return err
	}

	resp, err := c.Buy(ctx, BadRequestEnergyID, 0, 0)
	if err != nil {
		return fmt.Errorf("buying 0 units of energy %d: %w", BadRequestEnergyID, err)
	}

	f.Log.Info("zero quantity purchase answered", "status", resp.StatusCode)

	if resp.StatusCode != http.StatusBadRequest {
		return &FieldError{Field: "status", Expected: http.StatusBadRequest, Actual: resp.StatusCode}
	}

	return nil
}

func sortedIDs(s set.Set[EnergyID]) []EnergyID {
	var ids []EnergyID

	for id := range s.All() {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// withScenario names the scenario in an anonymous precondition failure.
func withScenario(scenario string, err error) error {
	var precondition *PreconditionError
	if errors.As(err, &precondition) && precondition.Scenario == "" {
		precondition.Scenario = scenario
	}

	return err
}
