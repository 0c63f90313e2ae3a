package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

const dataURLPrefix = "data:"

var ErrInvalidDataURL = errors.New("invalid data url")

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, dataURLPrefix)
}

// EncodeDataURL builds a base64 data URL for data tagged with mediaType.
func EncodeDataURL(mediaType string, data []byte) string {
	return dataURLPrefix + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL returns the media type and payload of a data URL. Only the
// base64 form is accepted.
func DecodeDataURL(s string) (string, []byte, error) {
	if !IsDataURL(s) {
		return "", nil, ErrInvalidDataURL
	}

	header, payload, ok := strings.Cut(strings.TrimPrefix(s, dataURLPrefix), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURL
	}

	mediaType := strings.TrimSuffix(header, ";base64")
	if mediaType == "" {
		mediaType = "text/plain"
	}

	return mediaType, data, nil
}
