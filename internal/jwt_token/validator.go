package jwttoken

import "ainadeul/pkg/platform/middleware/auth"

// Validator returns the service as the auth middleware's token validator.
func (s *JWTService) Validator() auth.JWTValidator {
	return middlewareValidator{svc: s}
}

type middlewareValidator struct {
	svc *JWTService
}

func (v middlewareValidator) ValidateToken(raw string) (*auth.JWTClaims, error) {
	claims, err := v.svc.ValidateToken(raw)
	if err != nil {
		return nil, err
	}
	return &auth.JWTClaims{UserID: claims.UserID, SessionID: claims.SessionID}, nil
}
