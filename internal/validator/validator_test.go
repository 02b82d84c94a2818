package validator_test

import (
	"testing"

	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SignUpRequest(t *testing.T) {
	t.Parallel()

	v := validator.New()

	valid := &dto.SignUpRequest{
		FirstName: "Timur",
		LastName:  "Akhmetov",
		Email:     "timur@eco.com",
		Password:  "password123",
		Role:      "Teacher",
	}
	assert.NoError(t, v.Validate(valid))

	// Пустая роль проходит user_role: обязательность решает доменный слой
	valid.Role = ""
	assert.NoError(t, v.Validate(valid))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.Validate(&dto.SignUpRequest{
		FirstName: "Timur",
		LastName:  "Akhmetov",
		Email:     "not-an-email",
		Password:  "short",
		Role:      "WIZARD",
	})
	require.Error(t, err)

	var valErr *validator.ValidationError
	require.ErrorAs(t, err, &valErr)

	// Клиент видит имена полей из JSON-тегов DTO
	assert.Contains(t, valErr.Errors, "email")
	assert.Contains(t, valErr.Errors, "password")
	assert.Contains(t, valErr.Errors, "role")
	assert.Equal(t, "must be one of STUDENT, TEACHER, AMBASSADOR, ADMIN", valErr.Errors["role"])
}

func TestValidate_UpdateProgressRequest(t *testing.T) {
	t.Parallel()

	v := validator.New()

	tests := []struct {
		name    string
		req     dto.UpdateProgressRequest
		wantErr bool
	}{
		{"валидный инкремент", dto.UpdateProgressRequest{PathID: "p1", IncrementPercent: 12.5}, false},
		{"нулевой инкремент", dto.UpdateProgressRequest{PathID: "p1", IncrementPercent: 0}, true},
		{"отрицательный инкремент", dto.UpdateProgressRequest{PathID: "p1", IncrementPercent: -5}, true},
		{"больше ста процентов", dto.UpdateProgressRequest{PathID: "p1", IncrementPercent: 101}, true},
		{"без pathId", dto.UpdateProgressRequest{IncrementPercent: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
