package model

// Scope identifies the account namespace a request operates in.
type Scope struct {
	UserID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
