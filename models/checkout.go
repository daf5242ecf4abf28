package models

// UserData is the checkout form. It lives for one submission only and is
// never persisted.
type UserData struct {
	Name          string `json:"name"`
	CPF           string `json:"cpf"`
	Phone         string `json:"phone"`
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	Complement    string `json:"complement,omitempty"`
	AgreeShipping bool   `json:"agreeShipping"`
}

// CepData is the address-lookup response shape (ViaCEP field names).
type CepData struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro,omitempty"`
}
