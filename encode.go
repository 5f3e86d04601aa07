package xsrftoken

import "encoding/base64"

// enc is the transport encoding: padded URL-safe base64, so tokens embed in
// URLs, headers and HTML attributes without escaping.
var enc = base64.URLEncoding

// decodedMax is the largest byte count a valid EncodedLen-character input
// can decode to. The scratch buffer in decodeInto is sized to it so a
// padding-free input cannot overflow before the length check rejects it.
const decodedMax = EncodedLen / 4 * 3

// Encode returns the fixed-width text form of the session token, exactly
// EncodedLen characters.
func (t SessionToken) Encode() string {
	return enc.EncodeToString(t.secret[:])
}

// DecodeSessionToken reconstructs a SessionToken from its encoded form.
// It returns ErrInvalidToken unless s is exactly EncodedLen characters of
// the encoding's alphabet decoding to exactly TokenLen bytes.
func DecodeSessionToken(s string) (SessionToken, error) {
	var t SessionToken
	if err := decodeInto(&t.secret, s); err != nil {
		return SessionToken{}, err
	}
	return t, nil
}

// Encode returns the encoded pad followed by the encoded mask with no
// separator, exactly 2*EncodedLen characters.
func (r RequestToken) Encode() string {
	return enc.EncodeToString(r.otp[:]) + enc.EncodeToString(r.mask[:])
}

// DecodeRequestToken reconstructs a RequestToken from its encoded form. The
// input must be exactly 2*EncodedLen characters; the halves are split at the
// fixed offset and decoded independently. Any structural defect yields
// ErrInvalidToken with no indication of which half failed.
func DecodeRequestToken(s string) (RequestToken, error) {
	if len(s) != 2*EncodedLen {
		return RequestToken{}, ErrInvalidToken
	}
	var r RequestToken
	if err := decodeInto(&r.otp, s[:EncodedLen]); err != nil {
		return RequestToken{}, err
	}
	if err := decodeInto(&r.mask, s[EncodedLen:]); err != nil {
		return RequestToken{}, err
	}
	return r, nil
}

// decodeInto decodes s into dst, enforcing the fixed-width contract: exact
// encoded length, valid alphabet, exact decoded byte count.
func decodeInto(dst *[TokenLen]byte, s string) error {
	if len(s) != EncodedLen {
		return ErrInvalidToken
	}
	var buf [decodedMax]byte
	n, err := enc.Decode(buf[:], []byte(s))
	if err != nil || n != TokenLen {
		return ErrInvalidToken
	}
	copy(dst[:], buf[:TokenLen])
	memzero(buf[:])
	return nil
}
