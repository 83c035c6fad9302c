package network

// Browser TLS fingerprinting.
//
// The catalog's login service sits behind a CDN that is picky about Go's default Client Hello.
// fingerprintTransport dials with uTLS mimicking Chrome 120 and negotiates h2 first, falling back
// to a forced HTTP/1.1 handshake when the server refuses it. Plain http:// requests are left to
// the regular transport.

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/atres-cli/atres/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return h2Transport
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

type fingerprintTransport struct {
	plain http.RoundTripper
}

// FingerprintClient returns a client whose https requests carry a Chrome TLS fingerprint.
func FingerprintClient() *http.Client {
	return &http.Client{
		Timeout:   Client.Timeout,
		Transport: &fingerprintTransport{plain: newTransport()},
	}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := getH2Transport().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// The body was consumed by the failed attempt; retry only when it can be replayed.
	retry := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}

	log.Debugf("h2 handshake with %s failed, falling back to http/1.1: %v", req.URL.Host, err)
	return h1Transport.RoundTrip(retry)
}

// dialTLS creates a TLS connection mimicking Chrome 120's Client Hello.
// A nil protos advertises both h2 and http/1.1, as Chrome does.
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
