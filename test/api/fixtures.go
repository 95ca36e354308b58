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
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Fixture is the state threaded through one ordered run of the scenarios.
// It is created once per run, passed by reference to every scenario and
// discarded when the run ends. Scenarios run sequentially so there is no
// locking.
type Fixture struct {
	// RunID tags every request of the run.
	RunID string
	// DefaultQuantity is the number of units bought per energy type.
	DefaultQuantity int
	// Credentials are used by authenticated scenarios, if set.
	Credentials Credentials
	// Log receives scenario progress and observations.
	Log logr.Logger
	// Now is the clock used for creation date comparison.
	Now func() time.Time

	orderIDs        []OrderID
	firstOrderDate  string
	hasFirstDate    bool
	ordersBeforeNow int
	hasCount        bool
}

// NewFixture creates empty run state from the configuration.
func NewFixture(config *TestConfig, log logr.Logger) *Fixture {
	return &Fixture{
		RunID:           uuid.NewString(),
		DefaultQuantity: config.DefaultQuantity,
		Credentials:     config.Credentials(),
		Log:             log,
		Now:             time.Now,
	}
}

// AddOrderID appends an order created during the run.
func (f *Fixture) AddOrderID(id OrderID) {
	f.orderIDs = append(f.orderIDs, id)
}

// OrderIDs returns the orders created during the run, in purchase order.
func (f *Fixture) OrderIDs() []OrderID {
	return slices.Clone(f.orderIDs)
}

// SetFirstOrderDate records the creation date of the first listed order.
func (f *Fixture) SetFirstOrderDate(date string) {
	f.firstOrderDate = date
	f.hasFirstDate = true
}

// FirstOrderDate returns the recorded creation date, if any.
func (f *Fixture) FirstOrderDate() (string, bool) {
	return f.firstOrderDate, f.hasFirstDate
}

// SetOrdersBeforeNow records the observed count of orders created before now.
func (f *Fixture) SetOrdersBeforeNow(count int) {
	f.ordersBeforeNow = count
	f.hasCount = true
}

// OrdersBeforeNow returns the observed count, if it was taken.
func (f *Fixture) OrdersBeforeNow() (int, bool) {
	return f.ordersBeforeNow, f.hasCount
}
