//go:build integration

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

//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/energy-qa/energy-conformance/test/api"
)

// The pipeline specs share fixture state and must run in declaration order.
var _ = Describe("Energy Order Pipeline", Ordered, func() {
	var fixture *api.Fixture

	BeforeAll(func() {
		fixture = api.NewFixture(config, GinkgoLogr)
	})

	Context("When resetting data", func() {
		It("should refuse a reset without credentials", func() {
			// Given: No authentication token
			// When: I request a data reset
			// Then: The request should be rejected with 401 Unauthorized
			Expect(api.ResetUnauthorized(ctx, client, fixture)).To(Succeed())
		})

		It("should allow a reset with a token issued by login", func() {
			if !config.HasCredentials() {
				Skip("API_USERNAME and API_PASSWORD are not set")
			}

			// Given: Valid credentials
			// When: I log in and reset with the issued token
			// Then: Both requests should succeed
			Expect(api.ResetAuthorized(ctx, client, fixture)).To(Succeed())
		})
	})

	Context("When buying energy", func() {
		It("should buy every listed energy type", func() {
			// Given: The listed energy ids
			// When: I buy the default quantity of each
			Expect(api.BuyAllEnergy(ctx, client, fixture)).To(Succeed())

			// Then: One order should be recorded per energy id
			ids, err := api.ListEnergyIDs(ctx, client)
			Expect(err).NotTo(HaveOccurred())
			Expect(fixture.OrderIDs()).To(HaveLen(len(ids)))

			GinkgoWriter.Printf("Bought %d orders\n", len(fixture.OrderIDs()))
		})
	})

	Context("When reading orders back", func() {
		It("should list and resolve every bought order", func() {
			// Given: Orders bought earlier in the run
			// When: I list all orders and fetch each bought order
			// Then: Each order should carry the bought quantity
			Expect(api.ListAndVerifyOrders(ctx, client, fixture)).To(Succeed())
		})

		It("should count the orders created before now", func() {
			// Given: The first order creation date recorded above
			// When: I count orders created before the current time
			// Then: The count is reported
			Expect(api.CountOrdersBeforeNow(ctx, client, fixture)).To(Succeed())

			count, ok := fixture.OrdersBeforeNow()
			Expect(ok).To(BeTrue())

			GinkgoWriter.Printf("Orders before current time: %d\n", count)
		})
	})
})
