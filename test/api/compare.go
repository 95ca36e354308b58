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
	"time"
)

// TimestampLayout is the ISO-8601 local date-time form, with trailing zero
// fractional digits trimmed, that "now" is rendered in before comparison.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// CreatedBefore reports whether an order creation date sorts before now.
//
// The comparison is lexicographic on strings. It agrees with chronological
// order only when the remote dates use the same layout and zone as
// TimestampLayout; a date in another zone or with a suffix such as "Z"
// compares by its text alone.
func CreatedBefore(creationDate string, now time.Time) bool {
	return creationDate < FormatTimestamp(now)
}

// CountCreatedBefore counts orders whose creation date sorts before now.
// Orders without a creation date are not counted.
func CountCreatedBefore(orders []Order, now time.Time) int {
	count := 0

	for _, order := range orders {
		if order.CreationDate == "" {
			continue
		}

		if CreatedBefore(order.CreationDate, now) {
			count++
		}
	}

	return count
}
