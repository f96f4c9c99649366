// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Event publisher providers.
const (
	EventProviderNoop   = "noop"
	EventProviderLocal  = "local"
	EventProviderGoogle = "google"
	EventProviderKafka  = "kafka"
)

// DefaultUserCreatedTopic is the topic user-created events are sent to.
const DefaultUserCreatedTopic = "new-user"
