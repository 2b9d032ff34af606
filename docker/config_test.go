package docker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(map[string]Credential{
		"registry.io": {Username: "u", Password: "p"},
	})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"auths": {
			"registry.io": {
				"username": "u",
				"password": "p",
				"auth": "dTpw"
			}
		}
	}`, string(data))
}

func TestNewConfigMultipleRegistries(t *testing.T) {
	cfg := NewConfig(map[string]Credential{
		"registry.example.com":     {Username: "robot", Password: "s3cret"},
		"ghcr.io":                  {Username: "octocat", Password: "token"},
		"localhost:5000/plaintext": {Username: "dev", Password: "dev"},
	})

	require.Len(t, cfg.Auths, 3)
	assert.Equal(t, "robot", cfg.Auths["registry.example.com"].Username)
	assert.Equal(t, "b2N0b2NhdDp0b2tlbg==", cfg.Auths["ghcr.io"].Auth)
}

func TestNewConfigEmpty(t *testing.T) {
	cfg := NewConfig(nil)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"auths": {}}`, string(data))
}
