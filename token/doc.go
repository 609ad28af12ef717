// Package token derives expiry metadata from bearer credentials that happen
// to be JWTs. The session core treats credentials as opaque; this package is
// the one place that peeks inside, and only to recover the exp claim when the
// authentication backend did not send explicit expiry timestamps.
//
// Parsing is deliberately unverified: a client process holds no signing keys,
// and the expiry read here gates nothing security-critical — the backend
// still rejects an expired or forged token on every call. A credential that
// is not a JWT, or a JWT without exp, simply contributes no expiry, and the
// accessor fails closed on the missing timestamp.
package token
