package tlstest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/reqkit/security/tlstest"
)

func TestPKIHandshake(t *testing.T) {
	pki := tlstest.New(t)

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	srv.TLS = pki.ServerConfig()
	srv.StartTLS()
	defer srv.Close()

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: pki.ClientConfig()}}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = http.Get(srv.URL)
	assert.Error(t, err)
}

func TestPKIFiles(t *testing.T) {
	pki := tlstest.New(t)
	for _, path := range []string{pki.CAFile, pki.CertFile, pki.KeyFile, tlstest.InvalidPEM(t)} {
		assert.FileExists(t, path)
	}
	assert.Len(t, pki.Leaf.Certificate, 1)
}
