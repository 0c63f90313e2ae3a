package presentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/errs"
)

func TestValidatorUsesJSONNames(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 121)
	bad := "not a url"

	err := NewValidator().Validate(dto.CreatePhotoRequest{GuestName: &long, ImageURL: &bad})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)

	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Message
	}

	assert.Equal(t, map[string]string{
		"filename":  "Required",
		"guestName": "Must contain at most 120 character(s)",
		"imageUrl":  "Invalid url",
	}, got)
}

func TestValidatorAcceptsMinimalRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewValidator().Validate(dto.CreatePhotoRequest{Filename: "a.jpg"}))
}
