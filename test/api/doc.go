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

// Package api provides the conformance suite for the energy order API.
//
// # Separate Client Implementation
//
// The suite talks to the API through its own small HTTP client (APIClient)
// rather than a generated one. Any legitimate change to the API contract must
// have a compensating change here, which keeps contract drift visible in
// review.
//
// The client carries features tailored for conformance testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Optional response validation against the embedded OpenAPI document
//   - Direct access to HTTP status codes and response bodies
//
// # Scenarios
//
// Scenarios are plain functions over a ClientInterface and a Fixture. Some of
// them depend on state produced by earlier ones (order ids, the first creation
// date), so they are registered with a Runner that executes them sequentially
// in declaration order and enforces the declared dependency edges. The ginkgo
// suites under suites/ drive the same functions from an Ordered container.
//
// Local precondition failures (an empty energy listing, a missing date from an
// earlier scenario) are reported as PreconditionError so they can be told apart
// from API defects, which surface as StatusError, FieldError or SchemaError.
package api
