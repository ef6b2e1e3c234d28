package di

import "net/http"

// ProvideHTTPClient returns a client with library default timeouts. Each
// process makes a single request, so nothing is shared across calls.
func ProvideHTTPClient() *http.Client {
	return &http.Client{}
}
