package model

import (
	"bytes"

	"github.com/pkg/errors"
)

// Profile is the user record returned by the login endpoint. It is kept as
// raw JSON data because the role-bearing fields vary between deployments.
type Profile map[string]any

var ErrProfileNotObject = errors.New("profile is not a JSON object")

// DecodeProfile parses a serialized profile. Anything but a JSON object,
// including the literal null, is rejected.
func DecodeProfile(data []byte) (Profile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrProfileNotObject
	}
	var p Profile
	if err := JSON.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}
	if p == nil {
		return nil, ErrProfileNotObject
	}
	return p, nil
}

func (p Profile) Encode() ([]byte, error) {
	return JSON.Marshal(p)
}

func (p Profile) ID() string {
	return object(p).str("_id", "id")
}

func (p Profile) Email() string {
	return object(p).str("email")
}

// DisplayName falls back from name to fullName to email.
func (p Profile) DisplayName() string {
	return object(p).str("name", "fullName", "email")
}

// Identity is the authenticated user as cached by the client.
type Identity struct {
	Token   string
	Profile Profile
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.Token != "" && i.Profile != nil
}
