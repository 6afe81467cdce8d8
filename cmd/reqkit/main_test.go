package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/transport"
)

func TestSpecFromFlags(t *testing.T) {
	o := &callOptions{
		method:     "post",
		scheme:     "HTTP",
		host:       "api.example.com",
		apiVersion: "v2",
		path:       "search",
		query:      []string{"page=1", "limit=10"},
		headers:    []string{"X-Trace=abc"},
		data:       []string{"name=ada", "age=36", "admin=true", "zip=01234x"},
	}
	spec, err := o.spec("users")
	require.NoError(t, err)

	m, err := spec.Materialize(config.Static{AuthToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "POST", m.Method)
	assert.Equal(t, "http://api.example.com/v2/users/search?page=1&limit=10", m.URL)
	assert.Equal(t, "abc", m.Header.Get("X-Trace"))
	assert.Equal(t, "tok", m.Header.Get("Authorization"))
	assert.JSONEq(t, `{"admin":true,"age":36,"name":"ada","zip":"01234x"}`, string(m.Body))
}

func TestSpecFromFlags_NoAuthNoVersion(t *testing.T) {
	o := &callOptions{method: "GET", scheme: "https", noAuth: true, noVersion: true}
	spec, err := o.spec("health")
	require.NoError(t, err)

	m, err := spec.Materialize(config.Static{BaseHost: "h", DefaultVersion: "v1", AuthToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "https://h/health", m.URL)
	assert.Empty(t, m.Header.Get("Authorization"))
}

func TestSpecFromFlags_BadPair(t *testing.T) {
	for _, o := range []*callOptions{
		{query: []string{"novalue"}},
		{headers: []string{"=v"}},
		{data: []string{"x"}},
	} {
		_, err := o.spec("x")
		assert.Error(t, err)
	}
}

func TestScalar(t *testing.T) {
	assert.Equal(t, float64(3), scalar("3"))
	assert.Equal(t, true, scalar("true"))
	assert.Nil(t, scalar("null"))
	assert.Equal(t, "ada", scalar("ada"))
	assert.Equal(t, `"quoted"`, scalar(`"quoted"`))
	assert.Equal(t, "[1]", scalar("[1]"))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"auth": c.GetHeader("Authorization"), "page": c.Query("page")})
	})
	r.DELETE("/users/1", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.POST("/v1/users", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusCreated, "application/json", body)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunCall(t *testing.T) {
	srv := upstream(t)
	cfgFile := writeConfig(t, `
name: reqkit-test
environment: development
logging:
  level: error
client:
  base_host: `+srv.Listener.Addr().String()+`
  default_version: v1
  auth_token: Bearer from-file
`)

	for _, driver := range []string{"http", "resty"} {
		t.Run(driver, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			o := &callOptions{
				method:     "GET",
				scheme:     "http",
				query:      []string{"page=2"},
				client:     driver,
				configFile: cfgFile,
				showStatus: true,
			}
			require.NoError(t, runCall(context.Background(), "users", o, &stdout, &stderr))
			assert.JSONEq(t, `{"auth":"Bearer from-file","page":"2"}`, stdout.String())
			assert.Contains(t, stderr.String(), "HTTP 200")
		})
	}
}

func TestRunCall_PostBody(t *testing.T) {
	srv := upstream(t)
	cfgFile := writeConfig(t, "client:\n  base_host: "+srv.Listener.Addr().String()+"\n  default_version: v1\n")

	var stdout, stderr bytes.Buffer
	o := &callOptions{
		method:     "POST",
		scheme:     "http",
		data:       []string{"name=ada", "n=1"},
		configFile: cfgFile,
	}
	require.NoError(t, runCall(context.Background(), "users", o, &stdout, &stderr))
	assert.JSONEq(t, `{"n":1,"name":"ada"}`, stdout.String())
}

func TestRunCall_NoContent(t *testing.T) {
	srv := upstream(t)
	cfgFile := writeConfig(t, "name: reqkit-test\n")

	var stdout, stderr bytes.Buffer
	o := &callOptions{
		method:     "DELETE",
		scheme:     "http",
		host:       srv.Listener.Addr().String(),
		noVersion:  true,
		configFile: cfgFile,
		showStatus: true,
	}
	require.NoError(t, runCall(context.Background(), "users/1", o, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "HTTP 204")
}

func TestRunCall_ClassifiedFailure(t *testing.T) {
	cfgFile := writeConfig(t, "name: reqkit-test\n")

	var stdout, stderr bytes.Buffer
	o := &callOptions{method: "GET", scheme: "https", host: "bad host", configFile: cfgFile}
	err := runCall(context.Background(), "users", o, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, transport.IsRequestConstructionFailed(err))
	assert.Empty(t, stdout.String())
}

func TestRunCall_InvalidDriver(t *testing.T) {
	cfgFile := writeConfig(t, "name: reqkit-test\n")

	o := &callOptions{method: "GET", scheme: "https", client: "smoke-signals", configFile: cfgFile}
	err := runCall(context.Background(), "users", o, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver")
}

func TestLoadAppConfig_EnvOverlay(t *testing.T) {
	cfgFile := writeConfig(t, "client:\n  base_host: from-file\n  auth_token: file-token\n")
	t.Setenv("REQKIT_AUTH_TOKEN", "env-token")

	cfg, err := loadAppConfig(&callOptions{configFile: cfgFile})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Client.BaseHost)
	assert.Equal(t, "env-token", cfg.Client.AuthToken)
	assert.Equal(t, serviceName, cfg.Name)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "http", cfg.Channel.Driver)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "dev")
}

func TestCallCommandRequiresEndpoint(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"call"})
	assert.Error(t, root.Execute())
}
