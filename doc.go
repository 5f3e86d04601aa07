// Package xsrftoken implements a double-submit token scheme for cross-site
// request forgery protection.
//
// Contents
//
//   - SessionToken: a 32-byte random secret issued once per session, the
//     root of trust for verification (New, DecodeSessionToken)
//   - RequestToken: a per-issuance token derived from a SessionToken via a
//     one-time pad (SessionToken.Mint, DecodeRequestToken)
//   - Fixed-width URL-safe base64 transport encoding for both token types
//   - Constant-time verification (SessionToken.Verify)
//   - Best-effort wiping of secret material (Wipe methods)
//
// # Usage
//
// Issue one SessionToken per session and persist its encoded form in a
// signed or encrypted cookie. For each protected form or request, mint a
// RequestToken and embed its encoded form in the response. On submission,
// decode both and call Verify.
//
//	session, err := xsrftoken.New()
//	// store session.Encode() in the session cookie
//
//	req, err := session.Mint()
//	// embed req.Encode() in the form or header
//
//	// on submission:
//	session, err := xsrftoken.DecodeSessionToken(cookieValue)
//	req, err := xsrftoken.DecodeRequestToken(formValue)
//	if err := session.Verify(req); err != nil {
//		// reject the request
//	}
//
// # Notes
//
// Each minted RequestToken carries a fresh one-time pad XOR-ed with the
// session secret, so the secret never appears verbatim on the wire and two
// tokens from the same session are unlinkable. This defeats compression
// side channels (BREACH) that rely on a fixed substring recurring across
// responses.
//
// Verification is stateless: any number of RequestTokens may be outstanding
// at once, and none expire until the caller rotates the SessionToken.
// Single-use semantics, route policy, cookie flags and session lifecycle are
// the caller's responsibility; this package only derives, encodes and
// verifies tokens.
package xsrftoken
