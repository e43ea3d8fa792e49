package auth

import "github.com/heartmarshall/inventory-dashboard/internal/domain"

// AuthResult is returned by Login.
type AuthResult struct {
	Session *domain.Session
	User    *domain.User
}
