// Package constants holds string identifiers shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used on developer machines.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Event types published by the marketplace.
const (
	EventBusinessRegistered = "business.registered"
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)
