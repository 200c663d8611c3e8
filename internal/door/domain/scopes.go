package domain

const (
	ScopeKeysRead   = "keys:read"
	ScopeKeysWrite  = "keys:write"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// Scopes lists the token scopes granted to u.
func (u User) Scopes() []string {
	s := []string{ScopeKeysRead, ScopeKeysWrite}
	if u.IsAdmin {
		s = append(s, ScopeAdminRead, ScopeAdminWrite)
	}
	return s
}
