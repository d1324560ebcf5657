package product

import (
	"strconv"
	"time"

	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/config/environment_variables"
)

// AvailabilityPredicate gates the list-products read. It exists as an
// injectable chaos hook: the production default degrades the call during
// one configured hour so failure paths stay exercised.
type AvailabilityPredicate func() error

// NewAvailabilityPredicate reads DEGRADED_HOUR (0-23) from the
// environment. When unset or unparsable the catalog is always available.
func NewAvailabilityPredicate() AvailabilityPredicate {
	return NewDegradedWindowPredicate(environment_variables.EnvironmentVariables.DEGRADED_HOUR, time.Now)
}

func NewDegradedWindowPredicate(hourSetting string, now func() time.Time) AvailabilityPredicate {
	hour, err := strconv.Atoi(hourSetting)
	if err != nil || hour < 0 || hour > 23 {
		return func() error { return nil }
	}
	return func() error {
		if now().Hour() == hour {
			return common.NewError(common.KindServiceUnavailable, "d4c5c021-faf3-4c5a-98ab-2f20f3b8f0ef", "product catalog is temporarily unavailable")
		}
		return nil
	}
}
