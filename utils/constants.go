// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix for cached resolved-availability keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL bounds how long a resolved availability entry may be
// served before recomputation.
const AvailabilityCacheTTL = 5 * time.Minute

// DateLayout is the canonical date string format used across the API and
// the database.
const DateLayout = "2006-01-02"
