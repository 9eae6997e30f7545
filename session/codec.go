package session

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// TokenTTL is the fixed validity window of a freshly minted token.
const TokenTTL = 24 * time.Hour

// Token is the decoded form of the persisted session entry: which user the
// session belongs to and when it stops being valid. ExpiresAt is absolute
// milliseconds since the Unix epoch, matching the web client's Date.now()
// arithmetic.
type Token struct {
	UserID    string `json:"userId"`
	ExpiresAt int64  `json:"exp"`
}

// Expired reports whether the token is no longer valid at nowMs. A token is
// valid strictly until its expiry instant; exp == now counts as expired.
func (t *Token) Expired(nowMs int64) bool {
	return t == nil || t.ExpiresAt <= nowMs
}

// EncodeToken mints the opaque persisted form of a token for userID, expiring
// [TokenTTL] after now. The encoding is standard base64 over compact JSON.
func EncodeToken(userID string, now time.Time) string {
	return encodeToken(&Token{
		UserID:    userID,
		ExpiresAt: now.UnixMilli() + TokenTTL.Milliseconds(),
	})
}

func encodeToken(t *Token) string {
	// Marshal of a flat struct cannot fail.
	data, _ := json.Marshal(t)
	return base64.StdEncoding.EncodeToString(data)
}

// Opaque returns the persisted encoding of t. Round-trips with
// [DecodeToken].
func (t *Token) Opaque() string {
	return encodeToken(t)
}

// DecodeToken reverses [EncodeToken]. It returns nil for anything that is not
// a well-formed token: bad base64, bad JSON, or a payload missing the subject.
func DecodeToken(opaque string) *Token {
	raw, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return nil
	}

	var t Token
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}
	if t.UserID == "" || t.ExpiresAt == 0 {
		return nil
	}
	return &t
}

// EncodeUser serializes the full user snapshot for persistence.
func EncodeUser(u *User) (string, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeUser reverses [EncodeUser], returning nil on malformed input rather
// than an error: a corrupt snapshot is treated as no snapshot at all.
func DecodeUser(data string) *User {
	var u User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil
	}
	if u.ID == "" || u.Email == "" {
		return nil
	}
	return &u
}
