package constants

// ContextKeyUserID is the gin context key holding the authenticated user id.
const ContextKeyUserID = "user_id"

// TokenHeaderScheme is the expected Authorization header scheme,
// as in "Authorization: Token <key>".
const TokenHeaderScheme = "Token"

// TokenKeyBytes is the number of random bytes behind a token key.
// Hex-encoded this yields the 40-character opaque key.
const TokenKeyBytes = 20
