package domain

// Customer is a plain CRUD entity; the store assigns the id.
type Customer struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type CreateCustomerRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
}
