// Package user holds the contract of the external user profile lookup.
package user

// Profile is a public user profile.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	RealName string `json:"realName,omitempty"`
}

// DisplayName prefers the real name over the username.
func (p Profile) DisplayName() string {
	if p.RealName != "" {
		return p.RealName
	}
	return p.Username
}
