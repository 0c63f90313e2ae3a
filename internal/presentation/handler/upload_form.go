package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"wedshare/internal/domain/entity"
	"wedshare/internal/domain/errs"
	"wedshare/internal/presentation"
)

const maxTextFieldBytes = 64 << 10

var errMalformedForm = errors.New("malformed multipart form")

// readUploadForm streams a multipart body and collects the file part named
// field plus the description and guest name. The file is read through a
// limit of maxBytes+1, so an oversized file fails without buffering the rest.
func readUploadForm(r *http.Request, field string, accepts func(string) bool, maxBytes int64) (entity.UploadRequest, error) {
	req := entity.UploadRequest{}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get(presentation.TypeKey))
	if err != nil || mediaType != "multipart/form-data" || params["boundary"] == "" {
		return req, fmt.Errorf("%w: request is not multipart/form-data", errs.ErrMissingFile)
	}

	mr := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return req, fmt.Errorf("%w: %w", errMalformedForm, err)
		}

		switch part.FormName() {
		case field:
			if req.Data != nil {
				continue
			}

			req.ContentType = part.Header.Get(presentation.TypeKey)
			if req.ContentType == "" {
				req.ContentType = "application/octet-stream"
			}

			if !accepts(req.ContentType) {
				return req, fmt.Errorf("%w: %s", errs.ErrUnsupportedMediaType, req.ContentType)
			}

			req.Data, err = readLimited(part, maxBytes)
			if err != nil {
				return req, err
			}

		case presentation.DescriptionField:
			value, err := readText(part)
			if err != nil {
				return req, err
			}

			if value != "" {
				req.Description = &value
			}

		case presentation.GuestNameField:
			if req.GuestName, err = readText(part); err != nil {
				return req, err
			}
		}
	}

	if req.Data == nil {
		return req, errs.ErrMissingFile
	}

	return req, nil
}

func readLimited(part *multipart.Part, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errMalformedForm, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedForm, err)
	}

	if int64(len(data)) > maxBytes {
		return nil, errs.ErrPayloadTooLarge
	}

	return data, nil
}

func readText(part *multipart.Part) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxTextFieldBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errMalformedForm, err)
	}

	return string(data), nil
}
