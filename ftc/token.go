package ftc

import "encoding/base64"

// CreateToken encodes a username and API key into the authorization
// token the FTC Events API expects. The encoding is plain base64 of
// "username:key"; whether the pair is actually valid is only discovered
// when the API rejects a request.
func CreateToken(username, key string) (string, error) {
	if username == "" {
		return "", &MissingCredentialError{Name: "username"}
	}
	if key == "" {
		return "", &MissingCredentialError{Name: "key"}
	}
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + key)), nil
}
