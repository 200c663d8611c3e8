package doorsdk

import (
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
)

// ============================================================================
// Error Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g. "invalid_request", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is returned from POST /v1/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of granted scopes
	Scope string `json:"scope,omitempty"`
}

// JWKSResponse is the JSON Web Key Set served at /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Health Types
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// Bootstrap Types
// ============================================================================

// BootstrapRequest creates the first administrator of an empty system.
type BootstrapRequest struct {
	AdminUserName string `json:"admin_user_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

type BootstrapResponse struct {
	AdminUserName string `json:"admin_user_name"`
}

// ============================================================================
// User Types
// ============================================================================

// RegisterRequest signs up a new account.
type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse never carries password or validation material.
type UserResponse struct {
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// Share Types
// ============================================================================

// Share states as reported in ShareResponse.State.
const (
	ShareStateUnvalidated = "unvalidated"
	ShareStateValidated   = "validated"
	ShareStateBlacklisted = "blacklisted"
)

// ShareResponse describes one user share. Share is the raw 4L byte share,
// standard base64 encoded in JSON.
type ShareResponse struct {
	ID            string    `json:"id"`
	UserName      string    `json:"user_name"`
	DoorName      string    `json:"door_name"`
	Share         []byte    `json:"share" swaggertype:"string" format:"base64"`
	State         string    `json:"state"`
	IsValidated   bool      `json:"is_validated"`
	IsBlacklisted bool      `json:"is_blacklisted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListSharesResponse struct {
	Shares []ShareResponse `json:"shares"`
}

// KeyRequest asks for a share on a door.
type KeyRequest struct {
	DoorName string `json:"door_name"`
}

// ShareFilter narrows GET /v1/admin/shares. Nil flags match both values.
type ShareFilter struct {
	UserName      string
	DoorName      string
	IsValidated   *bool
	IsBlacklisted *bool
	Offset        int
	Limit         int
}

type IdentifyRequest struct {
	Share []byte `json:"share" swaggertype:"string" format:"base64"`
}

type IdentifyResponse struct {
	UserName string `json:"user_name"`
}

// ============================================================================
// Door Types
// ============================================================================

type CreateDoorRequest struct {
	Name string `json:"name"`
}

// DoorResponse is the public view of a door. The secret is never included.
type DoorResponse struct {
	Name      string    `json:"name"`
	Share     []byte    `json:"share" swaggertype:"string" format:"base64"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedDoorResponse is returned once, on creation. It is the only response
// that carries the door secret.
type CreatedDoorResponse struct {
	Name      string    `json:"name"`
	Share     []byte    `json:"share" swaggertype:"string" format:"base64"`
	Secret    []byte    `json:"secret" swaggertype:"string" format:"base64"`
	CreatedAt time.Time `json:"created_at"`
}

type ListDoorsResponse struct {
	Doors []DoorResponse `json:"doors"`
}

// DoorSecretRequest authenticates a door reader by its secret.
type DoorSecretRequest struct {
	Secret []byte `json:"secret" swaggertype:"string" format:"base64"`
}

// SyncResponse carries the door record and the shares it must refuse.
type SyncResponse struct {
	Door        DoorResponse    `json:"door"`
	Blacklisted []ShareResponse `json:"blacklisted"`
}

// VerifyRequest is sent by a door reader that scanned a user share.
type VerifyRequest struct {
	Secret []byte `json:"secret" swaggertype:"string" format:"base64"`
	Share  []byte `json:"share" swaggertype:"string" format:"base64"`
}

type VerifyResponse struct {
	Granted  bool   `json:"granted"`
	UserName string `json:"user_name,omitempty"`
	ShareID  string `json:"share_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
