package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Parse maps a configured value, including the short aliases "dev", "prod"
// and "stage", onto a known Environment. Anything else is Development.
func Parse(value string) Environment {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
