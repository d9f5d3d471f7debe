package dto

import (
	"time"

	"arthive/internal/domains/user/model"
)

// ProfileResponse is the authenticated user's own view of their account.
// The password hash never leaves the service layer.
type ProfileResponse struct {
	ID                  string   `json:"id"`
	Email               string   `json:"email"`
	FullName            string   `json:"fullName"`
	Level               string   `json:"level"`
	ProfileImage        string   `json:"profileImage,omitempty"`
	PreferredTags       []string `json:"preferredTags"`
	PreferredArtists    []string `json:"preferredArtists"`
	PreferredLocations  []string `json:"preferredLocations"`
	FavoriteExhibitions []string `json:"favoriteExhibitions"`
	IsVerified          bool     `json:"isVerified"`
	LastLogin           string   `json:"lastLogin,omitempty"`
	CreatedAt           string   `json:"createdAt"`
}

func (r *ProfileResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.FullName = mod.FullName
	r.Level = mod.Level
	r.ProfileImage = mod.ProfileImage
	r.PreferredTags = mod.PreferredTags
	r.PreferredArtists = mod.PreferredArtists
	r.PreferredLocations = mod.PreferredLocations
	r.FavoriteExhibitions = mod.FavoriteExhibitions
	r.IsVerified = mod.IsVerified
	r.CreatedAt = mod.CreatedAt.Format(time.RFC3339)

	if mod.LastLogin.Valid {
		r.LastLogin = mod.LastLogin.Time.Format(time.RFC3339)
	}

	if r.PreferredTags == nil {
		r.PreferredTags = []string{}
	}

	if r.PreferredArtists == nil {
		r.PreferredArtists = []string{}
	}

	if r.PreferredLocations == nil {
		r.PreferredLocations = []string{}
	}

	if r.FavoriteExhibitions == nil {
		r.FavoriteExhibitions = []string{}
	}
}

type UpdateProfileRequest struct {
	FullName     *string `db:"full_name"     json:"fullName"     validate:"omitempty,min=1,max=120"`
	ProfileImage *string `db:"profile_image" json:"profileImage" validate:"omitempty,url"`
}

// UpdatePreferencesRequest replaces the user's recommendation preferences
// wholesale. Sending an empty array clears that dimension.
type UpdatePreferencesRequest struct {
	PreferredTags      []string `db:"preferred_tags"      json:"preferredTags"      validate:"omitempty,dive,min=1,max=60"`
	PreferredArtists   []string `db:"preferred_artists"   json:"preferredArtists"   validate:"omitempty,dive,min=1,max=120"`
	PreferredLocations []string `db:"preferred_locations" json:"preferredLocations" validate:"omitempty,dive,min=1,max=120"`
}

func (req *UpdatePreferencesRequest) Normalize() {
	if req.PreferredTags == nil {
		req.PreferredTags = []string{}
	}

	if req.PreferredArtists == nil {
		req.PreferredArtists = []string{}
	}

	if req.PreferredLocations == nil {
		req.PreferredLocations = []string{}
	}
}

// IsEmpty reports whether every preference dimension is blank after the
// update, used to flag profiles that fall back to popularity ranking.
func (req *UpdatePreferencesRequest) IsEmpty() bool {
	return len(req.PreferredTags) == 0 && len(req.PreferredArtists) == 0 && len(req.PreferredLocations) == 0
}
