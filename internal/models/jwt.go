package models

// JWTClaims represents the structure of the JWT token claims issued by the identity provider
type JWTClaims struct {
	JTI         string   `json:"jti"`
	Exp         int64    `json:"exp"`
	IAT         int64    `json:"iat"`
	ISS         string   `json:"iss"`
	AUD         []string `json:"aud"`
	SUB         string   `json:"sub"`
	AZP         string   `json:"azp"`
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	Scope             string `json:"scope"`
	EmailVerified     bool   `json:"email_verified"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// HasRole reports whether the realm roles include role
func (c *JWTClaims) HasRole(role string) bool {
	if c == nil || role == "" {
		return false
	}
	for _, r := range c.RealmAccess.Roles {
		if r == role {
			return true
		}
	}
	return false
}
