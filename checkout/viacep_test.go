package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCEPClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	data, err := NewCEPClient(srv.URL).Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", data.Street)
	assert.Equal(t, "Bela Vista", data.Neighborhood)
	assert.Equal(t, "São Paulo", data.City)
	assert.Equal(t, "SP", data.State)
}

func TestCEPClientLookupUnknownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	_, err := NewCEPClient(srv.URL).Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrCEPNotFound)
}

func TestCEPClientLookupRejectsShortCEP(t *testing.T) {
	c := NewCEPClient("http://viacep.invalid")

	_, err := c.Lookup(context.Background(), "0131010")
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = c.Lookup(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrInvalidCEP)
}

func TestCEPClientLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewCEPClient(srv.URL).Lookup(context.Background(), "01310100")
	assert.Error(t, err)
}
