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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/energy-qa/energy-conformance/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When logging in", func() {
		Describe("Given invalid credentials", func() {
			It("should reject the known bad login", func() {
				Expect(api.UnauthorizedLogin(ctx, client, nil)).To(Succeed())
			})

			It("should reject random logins with the same message", func() {
				for range 5 {
					Expect(api.ExpectLoginRejected(ctx, client, api.RandomCredentials())).To(Succeed())
				}
			})

			It("should reject an empty login", func() {
				resp, err := client.Login(ctx, api.Credentials{}, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", 400))
				Expect(resp.StatusCode).To(BeNumerically("<", 500))
			})
		})
	})

	Context("When resetting without valid credentials", func() {
		DescribeTable("should always refuse with 401",
			func(opts ...api.RequestOption) {
				_, err := client.Reset(ctx, http.StatusUnauthorized, append([]api.RequestOption{api.WithoutAuth()}, opts...)...)
				Expect(err).NotTo(HaveOccurred())
			},
			Entry("with no Authorization header"),
			Entry("with an empty Authorization header", api.WithHeader("Authorization", "")),
			Entry("with a bare Bearer scheme", api.WithHeader("Authorization", "Bearer")),
			Entry("with a bogus bearer token", api.WithBearerToken("not-a-token")),
			Entry("with basic credentials", api.WithHeader("Authorization", "Basic dGVzdDp0ZXN0aW5n")),
			Entry("with garbage", api.WithHeader("Authorization", "%%%")),
		)
	})
})
