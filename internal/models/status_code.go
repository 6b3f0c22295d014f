package models

import "fmt"

// AllowedStatusCodes are the status codes tracked by name in reports.
var AllowedStatusCodes = []string{"200", "301", "400", "401", "403", "404", "405", "500"}

var allowedStatusCodeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedStatusCodes))
	for _, code := range AllowedStatusCodes {
		set[code] = struct{}{}
	}
	return set
}()

// IsAllowedStatusCode reports whether code is on the allow-list.
func IsAllowedStatusCode(code string) bool {
	_, ok := allowedStatusCodeSet[code]
	return ok
}

// StatusCodePolicy decides which status codes get a counter.
type StatusCodePolicy string

const (
	StatusCodesAllowList StatusCodePolicy = "allow_list"
	StatusCodesAny       StatusCodePolicy = "any"
)

func NewStatusCodePolicyFromString(s string) (StatusCodePolicy, error) {
	switch StatusCodePolicy(s) {
	case StatusCodesAllowList, StatusCodesAny:
		return StatusCodePolicy(s), nil
	default:
		return "", fmt.Errorf("invalid status code policy: %q", s)
	}
}

// Tracks reports whether a counter is kept for code under this policy.
func (p StatusCodePolicy) Tracks(code string) bool {
	switch p {
	case StatusCodesAny:
		return true
	case StatusCodesAllowList:
		return IsAllowedStatusCode(code)
	default:
		panic(fmt.Sprintf("invalid StatusCodePolicy: %q", p))
	}
}
