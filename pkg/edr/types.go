package edr

import "errors"

// ErrUnavailable is returned when the requested time window has no
// intersection with the collection's temporal extent.
var ErrUnavailable = errors.New("edr: requested window outside forecast coverage")

// ParameterValue is one forecast parameter resolved for a time window.
type ParameterValue struct {
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// Wire types for the EDR collection metadata document.
type collectionDoc struct {
	Extent struct {
		Temporal struct {
			Values []string `json:"values"`
		} `json:"temporal"`
	} `json:"extent"`
}

// Wire types for the CoverageJSON position response.
// Each coverage carries a single time axis value and a single range value.
type coverageCollection struct {
	Coverages []coverage `json:"coverages"`
	Parameters map[string]struct {
		Unit struct {
			Symbol string `json:"symbol"`
		} `json:"unit"`
	} `json:"parameters"`
}

type coverage struct {
	Domain struct {
		Axes struct {
			T struct {
				Values []string `json:"values"`
			} `json:"t"`
		} `json:"axes"`
	} `json:"domain"`
	Ranges map[string]struct {
		Values []float64 `json:"values"`
	} `json:"ranges"`
}
