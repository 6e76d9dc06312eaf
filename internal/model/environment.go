package model

// Environment represents the deployment environment of the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// ParseEnvironment maps unknown values to development.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case EnvironmentProduction:
		return EnvironmentProduction
	case EnvironmentStaging:
		return EnvironmentStaging
	default:
		return EnvironmentDevelopment
	}
}

func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
