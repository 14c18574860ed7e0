package domain

import "time"

// Profile is the signed-in platform user.
type Profile struct {
	Email      string
	FullName   string
	SignedInAt time.Time
}

func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
