package model

import (
	"database/sql"

	"arthive/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                  = "id"
	FieldEmail               = "email"
	FieldPassword            = "password"
	FieldFullName            = "full_name"
	FieldLevel               = "level"
	FieldProfileImage        = "profile_image"
	FieldFavoriteExhibitions = "favorite_exhibitions"
	FieldPreferredTags       = "preferred_tags"
	FieldPreferredArtists    = "preferred_artists"
	FieldPreferredLocations  = "preferred_locations"
	FieldIsVerified          = "is_verified"
	FieldLastLogin           = "last_login"
	FieldActive              = "active"
)

type User struct {
	ID                  string         `db:"id"`
	Email               string         `db:"email"`
	Password            string         `db:"password"`
	FullName            string         `db:"full_name"`
	Level               string         `db:"level"`
	ProfileImage        string         `db:"profile_image"`
	FavoriteExhibitions pq.StringArray `db:"favorite_exhibitions"`
	PreferredTags       pq.StringArray `db:"preferred_tags"`
	PreferredArtists    pq.StringArray `db:"preferred_artists"`
	PreferredLocations  pq.StringArray `db:"preferred_locations"`
	IsVerified          bool           `db:"is_verified"`
	LastLogin           sql.NullTime   `db:"last_login"`
	Active              bool           `db:"active"`
	model.Metadata
}

// HasPreferences reports whether the user has set any recommendation
// preference at all.
func (u *User) HasPreferences() bool {
	return len(u.PreferredTags) > 0 || len(u.PreferredArtists) > 0 || len(u.PreferredLocations) > 0
}
