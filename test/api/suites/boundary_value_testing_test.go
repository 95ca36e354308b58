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

var _ = Describe("Boundary Value Testing", func() {
	Context("When submitting invalid quantities", func() {
		It("should reject a negative quantity with Bad Request", func() {
			Expect(api.BadBuyRequest(ctx, client, nil)).To(Succeed())
		})

		It("should treat zero like a negative quantity", func() {
			Expect(api.BuyBoundaryQuantities(ctx, client, api.NewFixture(config, GinkgoLogr))).To(Succeed())
		})
	})
})
