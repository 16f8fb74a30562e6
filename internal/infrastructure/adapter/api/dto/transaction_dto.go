package dto

// CreateTransactionRequest is the payload for recording an income or expense.
// The amount is validated by the ledger service so malformed values produce
// domain errors instead of binding errors.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	CategoryID  *uint64 `json:"category_id"`
	Description string  `json:"description"`
}

// UpdateTransactionRequest is a partial update; absent fields keep the
// stored values.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	CategoryID  *uint64  `json:"category_id"`
	Description *string  `json:"description"`
}

// TransactionResponse confirms a created or updated transaction
type TransactionResponse struct {
	Message string  `json:"message"`
	ID      uint64  `json:"id"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
}
