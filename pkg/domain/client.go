package domain

// Client is an invoicing counterparty. Plain CRUD, no derived state.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
