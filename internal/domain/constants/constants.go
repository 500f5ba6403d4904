// Package constants collects provider names and catalog defaults shared across layers.
package constants

import "time"

// Environments
const (
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
	PubSubProviderLocal    = "local"
)

// Image storage providers
const (
	StorageProviderBlob  = "blob"
	StorageProviderMinio = "minio"
)

// Catalog defaults
const (
	DefaultPageNumber          = 1
	DefaultPageSize            = 5
	DefaultPlaceholderImageURL = "https://placehold.co/300x300"
	DefaultMaxImageSize        = 2 << 20
)

// Response cache profiles
const (
	CacheProfileDefault10 = 10 * time.Second
	CacheProfileDefault20 = 20 * time.Second
)
