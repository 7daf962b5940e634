package create_blocked_slot

// CreateBlockedSlotRequest HTTP request model
type CreateBlockedSlotRequest struct {
	Date string  `json:"date" validate:"required"`
	Time string  `json:"time" validate:"required"`
	Note *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}
