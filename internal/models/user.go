package models

// UserProfile is the identity and role data of the signed-in user.
type UserProfile struct {
	ID        string            `json:"id"`
	UserName  string            `json:"userName"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Roles     []string          `json:"roles"`
	AvatarURL string            `json:"avatarUrl,omitempty"`
	Volunteer *VolunteerProfile `json:"volunteer,omitempty"`
}

// VolunteerProfile is the optional volunteer sub-profile of a user.
type VolunteerProfile struct {
	Skills       []string `json:"skills,omitempty"`
	Certificates []string `json:"certificates,omitempty"`
	Requisites   string   `json:"requisites,omitempty"`
	SocialLinks  []string `json:"socialLinks,omitempty"`
}

// AuthResult is the payload of successful login and refresh calls.
type AuthResult struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}
