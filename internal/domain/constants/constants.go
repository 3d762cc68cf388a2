// Package constants holds values shared across layers.
package constants

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session cookie names.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Identity lifecycle event types.
const (
	EventIdentityRegistered = "identity.registered"
	EventSessionStarted     = "session.started"
	EventSessionRefreshed   = "session.refreshed"
	EventSessionEnded       = "session.ended"
)
