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

package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/energy-qa/energy-conformance/test/api"
)

var _ = Describe("Energy Discovery", func() {
	Context("When listing energy ids", func() {
		It("should return at least one id", func() {
			ids, err := api.ListEnergyIDs(ctx, client)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).NotTo(BeEmpty())

			GinkgoWriter.Printf("Found %d energy ids\n", len(ids))
		})

		It("should return the same ids when listed twice", func() {
			Expect(api.EnergyIDsStable(ctx, client, api.NewFixture(config, GinkgoLogr))).To(Succeed())
		})
	})
})
