package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/farm-ledger/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear lote: %w", domain.NewValidationError("cantidad actual mayor que la inicial", "current_quantity"))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"current_quantity"}, ve.Fields)
	assert.Equal(t, "entrada inválida: cantidad actual mayor que la inicial (current_quantity)", ve.Error())
}
