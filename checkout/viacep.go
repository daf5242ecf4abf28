package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

var (
	ErrInvalidCEP  = errors.New("cep must have exactly 8 digits")
	ErrCEPNotFound = errors.New("cep not found")
)

// CEPClient looks up Brazilian postal codes against a ViaCEP-compatible
// service. Failures never touch form state; the caller just keeps whatever
// the customer already typed.
type CEPClient struct {
	baseURL string
	client  *http.Client
}

func NewCEPClient(baseURL string) *CEPClient {
	return &CEPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves an 8-digit CEP to its address. The service flags unknown
// codes with an "erro" field on a 200 response, which is mapped to
// ErrCEPNotFound.
func (c *CEPClient) Lookup(ctx context.Context, cep string) (models.CepData, error) {
	clean := DigitsOnly(cep)
	if len(clean) != 8 {
		return models.CepData{}, ErrInvalidCEP
	}

	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.CepData{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.CepData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.CepData{}, fmt.Errorf("cep lookup returned status %d", resp.StatusCode)
	}

	var data models.CepData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.CepData{}, err
	}
	if data.Erro {
		return models.CepData{}, ErrCEPNotFound
	}
	return data, nil
}
