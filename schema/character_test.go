package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterToActorSpec(t *testing.T) {
	character := &Character{
		Name:        "hello",
		Description: "sample web service",
		Repository:  "https://github.com/acme/hello.git",
		Image:       "registry.io/acme/hello",
		Command:     "/bin/hello --serve",
		Version:     "0.4.0",
		Keywords:    []string{"demo"},
	}

	spec := character.ToActorSpec()

	assert.Equal(t, "hello", spec.Name)
	assert.Equal(t, "sample web service", spec.Description)
	assert.Equal(t, NewSource("https://github.com/acme/hello.git"), spec.Source)
	assert.Equal(t, DefaultRevision, spec.Source.Revision())
	assert.Equal(t, "registry.io/acme/hello", spec.Image)
	assert.Equal(t, "/bin/hello --serve", spec.Command)

	// Packaging metadata stays on the manifest; runtime fields start
	// empty until the reconciler fills them in.
	assert.Empty(t, spec.Services)
	assert.Nil(t, spec.Build)
	assert.False(t, spec.Sync)
}

func TestCharacterToActorSpecDefaultsImage(t *testing.T) {
	character := &Character{Name: "bare", Repository: "acme/bare"}

	spec := character.ToActorSpec()
	assert.Empty(t, spec.Image)
	assert.Equal(t, "bare", spec.Name)
}

func TestCharacterString(t *testing.T) {
	character := &Character{Name: "hello", Repository: "https://github.com/acme/hello.git"}
	assert.Equal(t, "hello https://github.com/acme/hello.git", character.String())
}
