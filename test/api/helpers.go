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
	"fmt"
	"net/http"
)

// BuyEnergy purchases quantity units of energyID and returns the new order.
func BuyEnergy(ctx context.Context, c ClientInterface, energyID EnergyID, quantity int) (OrderID, error) {
	resp, err := c.Buy(ctx, energyID, quantity, http.StatusOK)
	if err != nil {
		return 0, fmt.Errorf("buying %d units of energy %d: %w", quantity, energyID, err)
	}

	var result BuyResponse
	if err := resp.Decode(&result); err != nil {
		return 0, err
	}

	if result.OrderID == nil {
		return 0, &FieldError{
			Field:    "orderId",
			Expected: "an order id",
			Actual:   "nothing",
		}
	}

	return *result.OrderID, nil
}

// ListEnergyIDs fetches every purchasable energy id. An empty listing is a
// precondition failure rather than an assertion failure: nothing downstream
// can be tested without data.
func ListEnergyIDs(ctx context.Context, c ClientInterface) ([]EnergyID, error) {
	resp, err := c.EnergyIDs(ctx, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing energy ids: %w", err)
	}

	var ids EnergyIDList
	if err := resp.Decode(&ids); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, NewPreconditionError("", "no energy ids retrieved")
	}

	return ids, nil
}

// ListOrders fetches every order.
func ListOrders(ctx context.Context, c ClientInterface) ([]Order, error) {
	resp, err := c.Orders(ctx, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	var orders []Order
	if err := resp.Decode(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// VerifyOrder checks that orderID resolves to an order of quantity units.
func VerifyOrder(ctx context.Context, c ClientInterface, orderID OrderID, quantity int) error {
	resp, err := c.Order(ctx, orderID, http.StatusOK)
	if err != nil {
		return fmt.Errorf("getting order %d: %w", orderID, err)
	}

	var order Order
	if err := resp.Decode(&order); err != nil {
		return err
	}

	if order.ID != orderID {
		return &FieldError{Field: "id", Expected: orderID, Actual: order.ID}
	}

	if order.Quantity != quantity {
		return &FieldError{Field: "quantity", Expected: quantity, Actual: order.Quantity}
	}

	return nil
}

// Login submits credentials and returns the decoded response.
func Login(ctx context.Context, c ClientInterface, credentials Credentials, expectedStatus int) (*LoginResponse, error) {
	resp, err := c.Login(ctx, credentials, expectedStatus)
	if err != nil {
		return nil, fmt.Errorf("logging in as %q: %w", credentials.Username, err)
	}

	var result LoginResponse
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ExpectMessage checks the message field of an error response.
func ExpectMessage(resp *Response, message string) error {
	var body ErrorResponse
	if err := resp.Decode(&body); err != nil {
		return err
	}

	if body.Message != message {
		return &FieldError{Field: "message", Expected: message, Actual: body.Message}
	}

	return nil
}
