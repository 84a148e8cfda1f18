package registry

// Snowflake is a registry identifier encoded as a decimal string.
type Snowflake = string

// ApplicationCommand is a root command as served by the registry.
type ApplicationCommand struct {
	ID                Snowflake                  `json:"id,omitempty" yaml:"id,omitempty"`
	ApplicationID     Snowflake                  `json:"application_id,omitempty" yaml:"application_id,omitempty"`
	Name              string                     `json:"name" yaml:"name" validate:"required,max=32"`
	Description       string                     `json:"description" yaml:"description" validate:"max=100"`
	Options           []ApplicationCommandOption `json:"options,omitempty" yaml:"options,omitempty" validate:"omitempty,max=25,dive"`
	DefaultPermission *bool                      `json:"default_permission,omitempty" yaml:"default_permission,omitempty"`
}

// ApplicationCommandOption is a node of a command's option tree.
type ApplicationCommandOption struct {
	Type        int                              `json:"type" yaml:"type" validate:"min=1,max=11"`
	Name        string                           `json:"name" yaml:"name" validate:"required,max=32"`
	Description string                           `json:"description" yaml:"description" validate:"max=100"`
	Required    bool                             `json:"required,omitempty" yaml:"required,omitempty"`
	Choices     []ApplicationCommandOptionChoice `json:"choices,omitempty" yaml:"choices,omitempty" validate:"omitempty,max=25,dive"`
	Options     []ApplicationCommandOption       `json:"options,omitempty" yaml:"options,omitempty" validate:"omitempty,max=25,dive"`
}

// ApplicationCommandOptionChoice is a predefined value for a scalar option.
type ApplicationCommandOptionChoice struct {
	Name  string `json:"name" yaml:"name" validate:"required,max=100"`
	Value any    `json:"value" yaml:"value"`
}

type document struct {
	Commands []ApplicationCommand `json:"commands" yaml:"commands"`
}
