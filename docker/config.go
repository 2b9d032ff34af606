// Package docker shapes registry credentials into the standard docker
// client config-file format (.dockerconfigjson). The transform is a
// pure function; reading or writing the file is the caller's concern.
package docker

import "encoding/base64"

// Credential is a username/password pair for a registry endpoint.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthConfig is a single registry entry in the docker config file.
// Auth is the base64 form of "username:password" that the docker
// client expects alongside the plain fields.
type AuthConfig struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Auth     string `json:"auth,omitempty"`
}

// Config is the docker config-file shape: a map of registry endpoint
// to auth entry under the "auths" key.
type Config struct {
	Auths map[string]AuthConfig `json:"auths"`
}

// NewConfig builds a Config from a map of registry endpoint to
// credential.
func NewConfig(entries map[string]Credential) Config {
	auths := make(map[string]AuthConfig, len(entries))
	for endpoint, cred := range entries {
		auths[endpoint] = AuthConfig{
			Username: cred.Username,
			Password: cred.Password,
			Auth:     encodeAuth(cred.Username, cred.Password),
		}
	}
	return Config{Auths: auths}
}

func encodeAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
