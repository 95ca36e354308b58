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
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Administration endpoints.
func (e *Endpoints) Reset() string {
	return "/reset"
}

func (e *Endpoints) Login() string {
	return "/login"
}

// Energy endpoints.
func (e *Endpoints) ListEnergyIDs() string {
	return "/api/energy-ids"
}

func (e *Endpoints) Buy(energyID EnergyID, quantity int) (string, error) {
	id, err := pathParam("id", int(energyID))
	if err != nil {
		return "", err
	}

	q, err := pathParam("quantity", quantity)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/buy/%s/%s", id, q), nil
}

// Order endpoints.
func (e *Endpoints) ListOrders() string {
	return "/orders"
}

func (e *Endpoints) GetOrder(orderID OrderID) (string, error) {
	id, err := pathParam("orderId", int(orderID))
	if err != nil {
		return "", err
	}

	return "/orders/" + id, nil
}

// pathParam renders a simple-style path parameter the way generated clients do.
func pathParam(name string, value any) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("styling path parameter %s: %w", name, err)
	}

	return styled, nil
}
