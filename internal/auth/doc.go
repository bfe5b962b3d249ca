// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package auth implements account credentials and session tokens.

# Components

  - TokenIssuer: HS256 JWTs carrying {id, iat, nbf, exp} with a 30 day lifetime
  - PasswordHasher: bcrypt hashing at a configurable cost
  - CredentialService: Register, Verify and Profile over a store.UserStore
  - Middleware: accepts "Authorization: Bearer <token>" or a "token" cookie

# Usage

	issuer, err := auth.NewTokenIssuer(cfg.Security.JWTSecret)
	creds := auth.NewCredentialService(st, auth.NewPasswordHasher(cfg.Security.BcryptCost))

	user, err := creds.Verify(ctx, email, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
	    // 401, same answer for unknown email and wrong password
	}
	token, err := issuer.Issue(user.ID)

	r.With(auth.NewMiddleware(issuer).Authenticate).Get("/me", handler)

Handlers behind the middleware read the caller with UserIDFromContext.
*/
package auth
