package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the end user behind one request.
type Scope struct {
	// Phone is the sender's WhatsApp address (e.g. "whatsapp:+5541999990000").
	Phone string

	// ProfileName is the WhatsApp display name, when the transport provides it.
	ProfileName string
}
