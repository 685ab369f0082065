package domain

// RequestContext carries the authenticated caller, filled from JWT claims by
// the auth middleware.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
