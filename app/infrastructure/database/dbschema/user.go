package dbschema

import (
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User is written by the registration flow; this service only reads the profile columns.
type User struct {
	BaseModel
	Address         string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	TwitterPfpURL   *string `gorm:"column:twitter_pfp_url;type:text"`
	TwitterUsername *string `gorm:"column:twitter_username;type:varchar(100)"`
}

func NewSchemaUser(u *stateuser.StateUser) *User {
	return &User{
		Address:         stateuser.NormalizeAddress(u.Address),
		TwitterPfpURL:   u.Image,
		TwitterUsername: u.Username,
	}
}

func (u *User) EtoD() *stateuser.StateUser {
	return &stateuser.StateUser{
		Address:  u.Address,
		Image:    u.TwitterPfpURL,
		Username: u.TwitterUsername,
	}
}
