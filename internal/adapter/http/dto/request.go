package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/usecase"
)

// AddRecordRequest represents a request to add a record.
type AddRecordRequest struct {
	Kind     string          `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddRecordRequest) ToUseCaseInput() (usecase.AddRecordInput, error) {
	kind, err := domain.ParseKind(r.Kind)
	if err != nil {
		return usecase.AddRecordInput{}, err
	}

	return usecase.AddRecordInput{
		Kind:     kind,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
	}, nil
}

// UpdateRecordRequest represents an edit. Omitted fields are left unchanged.
type UpdateRecordRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateRecordRequest) ToUseCaseInput(id string) usecase.UpdateRecordInput {
	return usecase.UpdateRecordInput{
		ID:       id,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
	}
}

// Empty reports whether the edit changes nothing.
func (r *UpdateRecordRequest) Empty() bool {
	return r.Amount == nil && r.Category == nil && r.Date == nil
}
