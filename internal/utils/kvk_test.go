package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileBody = `{
  "kvkNummer": "12345678",
  "naam": "Bakkerij Jansen B.V.",
  "_embedded": {
    "hoofdvestiging": {
      "adressen": [
        {"straatnaam": "Dorpsstraat", "huisnummer": 12, "huisnummerToevoeging": "bis",
         "huisletter": "A", "postcode": "1234AB", "plaats": "Utrecht"}
      ]
    }
  }
}`

func kvkServer(t *testing.T, search, profile http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/zoeken", search)
	mux.HandleFunc("/api/v1/basisprofielen/", profile)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func found(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte(`{"resultaten":[{"kvkNummer":"12345678"}]}`))
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
}

func TestLookupFound(t *testing.T) {
	var gotKey, gotQuery string
	srv := kvkServer(t,
		func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("apikey")
			gotQuery = r.URL.RawQuery
			found(w, r)
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/basisprofielen/12345678", r.URL.Path)
			_, _ = w.Write([]byte(profileBody))
		},
	)

	p, err := NewKvkClient(srv.URL, " secret ").Lookup(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "kvkNummer=12345678&pagina=1&resultatenPerPagina=1", gotQuery)

	assert.Equal(t, "Bakkerij Jansen B.V.", p.CompanyName)
	assert.Equal(t, "Dorpsstraat", p.StreetName)
	assert.Equal(t, "12", p.HouseNumber)
	assert.Equal(t, "bis", p.HouseNumberAddition)
	assert.Equal(t, "A", p.HouseLetter)
	assert.Equal(t, "1234AB", p.PostalCode)
	assert.Equal(t, "Utrecht", p.Place)
}

func TestLookupWithoutAddress(t *testing.T) {
	srv := kvkServer(t, found, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"naam":"Holding B.V."}`))
	})
	p, err := NewKvkClient(srv.URL, "k").Lookup(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Equal(t, "Holding B.V.", p.CompanyName)
	assert.Empty(t, p.HouseNumber)
}

func TestLookupErrors(t *testing.T) {
	emptySearch := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resultaten":[]}`))
	}
	tests := []struct {
		name    string
		search  http.HandlerFunc
		profile http.HandlerFunc
		want    int
	}{
		{"empty search", emptySearch, status(http.StatusOK), http.StatusNotFound},
		{"bad key", status(http.StatusUnauthorized), status(http.StatusOK), http.StatusServiceUnavailable},
		{"profile missing", found, status(http.StatusNotFound), http.StatusNotFound},
		{"rate limited", status(http.StatusTooManyRequests), status(http.StatusOK), http.StatusTooManyRequests},
		{"upstream error", found, status(http.StatusBadGateway), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := kvkServer(t, tt.search, tt.profile)
			_, err := NewKvkClient(srv.URL, "k").Lookup(context.Background(), "12345678")
			require.Error(t, err)
			assert.Equal(t, tt.want, AsLookupError(err).Status)
		})
	}
}

func TestLookupRejectsInput(t *testing.T) {
	c := NewKvkClient("", "k")
	for _, n := range []string{"", "1234567", "123456789", "1234567a"} {
		_, err := c.Lookup(context.Background(), n)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, AsLookupError(err).Status, n)
	}

	_, err := NewKvkClient("", "  ").Lookup(context.Background(), "12345678")
	assert.Equal(t, http.StatusServiceUnavailable, AsLookupError(err).Status)
}

func TestLookupTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewKvkClient(srv.URL, "k").Lookup(context.Background(), "12345678")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, AsLookupError(err).Status)
}
