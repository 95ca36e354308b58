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
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// EnergyID identifies a purchasable energy type.
type EnergyID int

// OrderID identifies an order created by a successful purchase.
type OrderID int

// Order is the remote record created by a purchase.
type Order struct {
	ID           OrderID `json:"id"`
	Quantity     int     `json:"quantity"`
	CreationDate string  `json:"creationDate,omitempty"`
}

// BuyResponse is returned by a successful purchase.
type BuyResponse struct {
	OrderID *OrderID `json:"orderId"`
	Message string   `json:"message,omitempty"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	Message     string `json:"message,omitempty"`
}

// EnergyIDList is the decoded energy listing. Deployments have been seen
// answering with an array of objects, an object holding an id array, or an
// object of energy records keyed by name; all of them decode here.
type EnergyIDList []EnergyID

func (l *EnergyIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []struct {
			ID *EnergyID `json:"id"`
		}

		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decoding energy listing array: %w", err)
		}

		ids := make(EnergyIDList, 0, len(items))

		for _, item := range items {
			if item.ID != nil {
				ids = append(ids, *item.ID)
			}
		}

		*l = ids

		return nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("decoding energy listing object: %w", err)
	}

	if raw, ok := object["id"]; ok {
		var ids []EnergyID
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("decoding energy id array: %w", err)
		}

		*l = ids

		return nil
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	// Keep the result stable across runs.
	slices.Sort(keys)

	ids := make(EnergyIDList, 0, len(object))

	for _, key := range keys {
		var record struct {
			EnergyID *EnergyID `json:"energy_id"`
		}

		if err := json.Unmarshal(object[key], &record); err != nil {
			return fmt.Errorf("decoding energy record %q: %w", key, err)
		}

		if record.EnergyID != nil {
			ids = append(ids, *record.EnergyID)
		}
	}

	*l = ids

	return nil
}
