// Package constants defines configuration values shared across layers.
package constants

// Environment modes.
const (
	EnvDevelop    = "dev"
	EnvProduction = "prod"
	EnvTest       = "test"
)

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Notifier delivery modes.
const (
	NotifierModeDirect = "direct"
	NotifierModeQueued = "queued"
)

// HeaderJWT carries the identity token on HTTP requests and connection params.
const HeaderJWT = "x-jwt"

// RestaurantPageSize is the number of restaurants per page.
const RestaurantPageSize = 25

// MaxRestaurantPage caps the requested page so the offset cannot overflow.
const MaxRestaurantPage = 1_000_000
