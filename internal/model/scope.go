package model

// Scope carries the authenticated caller's identity through a request.
// It is extracted from the JWT by the auth middleware and handed to
// usecases; an empty UserID means the request is anonymous.
type Scope struct {
	UserID string
	Email  string
}

// IsAnonymous reports whether the scope belongs to an unauthenticated caller.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
