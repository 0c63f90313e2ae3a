package model

import (
	"time"

	"wedshare/pkg/utils"
)

const AnonymousGuest = "Anonymous"

type LocationKind string

const (
	LocationURL    LocationKind = "url"
	LocationInline LocationKind = "inline"
)

// Location tells a client where a photo's bytes live: a remote URL or an
// inline data URL.
type Location struct {
	Kind  LocationKind `json:"kind"  bson:"kind"`
	Value string       `json:"value" bson:"value"`
}

// LocationOf classifies a raw reference; data URLs are inline, anything else is a URL.
func LocationOf(ref string) Location {
	if utils.IsDataURL(ref) {
		return Location{Kind: LocationInline, Value: ref}
	}

	return Location{Kind: LocationURL, Value: ref}
}

type Photo struct {
	ID          string    `json:"id"          bson:"_id"`
	Filename    string    `json:"filename"    bson:"filename"`
	Location    Location  `json:"location"    bson:"location"`
	Description *string   `json:"description" bson:"description"`
	GuestName   string    `json:"guestName"   bson:"guest_name"`
	UploadedAt  time.Time `json:"uploadedAt"  bson:"uploaded_at"`
}

// PhotoInput is a validated create request; ID and UploadedAt are assigned by the backend.
type PhotoInput struct {
	Filename    string
	Location    Location
	Description *string
	GuestName   string
}

// Normalize applies the defaults every backend stores: an empty description
// becomes null and an empty guest name becomes AnonymousGuest.
func (in PhotoInput) Normalize() PhotoInput {
	if in.Description != nil && *in.Description == "" {
		in.Description = nil
	}

	if in.GuestName == "" {
		in.GuestName = AnonymousGuest
	}

	return in
}

// NewPhoto builds the stored record for in.
func NewPhoto(id string, in PhotoInput, uploadedAt time.Time) Photo {
	in = in.Normalize()

	return Photo{
		ID:          id,
		Filename:    in.Filename,
		Location:    in.Location,
		Description: in.Description,
		GuestName:   in.GuestName,
		UploadedAt:  uploadedAt,
	}
}
