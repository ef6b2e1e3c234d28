package di

import (
	"github.com/savaki/artifact-notifier/internal/receiver"
)

// ReceiverProviders are the constructors needed to serve the local receiver.
// receiver.Config must be provided separately.
var ReceiverProviders = []any{
	receiver.NewStore,
	receiver.NewPayloadValidator,
	ProvideGraphQL,
	receiver.NewHandler,
}
