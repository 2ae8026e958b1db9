package ports

import "github.com/controlempleados/employee-records/internal/core/domain"

// TokenIssuer creates signed, time-bounded identity tokens.
type TokenIssuer interface {
	Issue(accountID int64, username string, role domain.RoleName) (string, error)
}

// TokenValidator verifies a bearer token and returns its typed claims.
// Every failure mode (bad signature, wrong issuer or audience, expired)
// surfaces as domain.ErrInvalidToken.
type TokenValidator interface {
	Validate(token string) (*domain.TokenClaims, error)
}
