package add_block

// AddBlockRequest HTTP request model. Без time блокируется весь день
type AddBlockRequest struct {
	Date   string  `json:"date" validate:"required"`
	Time   *string `json:"time,omitempty"`
	Reason string  `json:"reason" validate:"max=500"`
}
