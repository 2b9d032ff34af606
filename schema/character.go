package schema

import "fmt"

// Character is the manifest a repository publishes to describe itself:
// packaging metadata plus the defaults an ActorSpec is seeded from at
// admission.
type Character struct {
	// Name of the character.
	Name string `json:"name"`

	// Version of the character.
	Version string `json:"version,omitempty"`

	// Authors of the character.
	Authors []string `json:"authors,omitempty"`

	// Description of the character.
	Description string `json:"description,omitempty"`

	// Readme is the path to the character's README file.
	Readme string `json:"readme,omitempty"`

	// Homepage URL of the character.
	Homepage string `json:"homepage,omitempty"`

	// Repository URL of the character source, e.g.
	// "https://github.com/acme/hello.git".
	Repository string `json:"repository"`

	// License identifier of the character.
	License string `json:"license,omitempty"`

	// LicenseFile is the path to the text of the license.
	LicenseFile string `json:"license_file,omitempty"`

	// Keywords for the character.
	Keywords []string `json:"keywords,omitempty"`

	// Categories of the character.
	Categories []string `json:"categories,omitempty"`

	// Exclude lists files skipped when publishing.
	Exclude []string `json:"exclude,omitempty"`

	// Include lists files published.
	Include []string `json:"include,omitempty"`

	// Publish can be used to restrict publishing of the character.
	Publish []string `json:"publish,omitempty"`

	// Image the character's build produces.
	Image string `json:"image,omitempty"`

	// Command overrides the default command declared by the container
	// image.
	Command string `json:"command,omitempty"`
}

// ToActorSpec seeds an ActorSpec from the character's metadata. The
// source starts unpinned; admission resolves and pins the revision
// afterwards.
func (c *Character) ToActorSpec() ActorSpec {
	return ActorSpec{
		Name:        c.Name,
		Description: c.Description,
		Source:      NewSource(c.Repository),
		Image:       c.Image,
		Command:     c.Command,
	}
}

func (c *Character) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.Repository)
}
