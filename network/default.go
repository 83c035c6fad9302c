package network

import (
	"github.com/atres-cli/atres/key"
	"github.com/spf13/viper"
)

// Default builds the fetcher described by the current configuration.
func Default() *HTTPFetcher {
	client := Client
	if viper.GetBool(key.NetworkTLSFingerprint) {
		client = FingerprintClient()
	}

	return NewFetcher(client, viper.GetString(key.NetworkUserAgent))
}
