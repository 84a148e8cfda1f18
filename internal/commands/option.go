package commands

// Kind identifies an option variant using the registry's numeric values.
type Kind int

const (
	KindSubcommand      Kind = 1
	KindSubcommandGroup Kind = 2
	KindString          Kind = 3
	KindInteger         Kind = 4
	KindBoolean         Kind = 5
	KindUser            Kind = 6
	KindChannel         Kind = 7
	KindRole            Kind = 8
	KindMentionable     Kind = 9
	KindNumber          Kind = 10
	KindAttachment      Kind = 11
)

var kindNames = map[Kind]string{
	KindSubcommand:      "SUB_COMMAND",
	KindSubcommandGroup: "SUB_COMMAND_GROUP",
	KindString:          "STRING",
	KindInteger:         "INTEGER",
	KindBoolean:         "BOOLEAN",
	KindUser:            "USER",
	KindChannel:         "CHANNEL",
	KindRole:            "ROLE",
	KindMentionable:     "MENTIONABLE",
	KindNumber:          "NUMBER",
	KindAttachment:      "ATTACHMENT",
}

// String returns the registry name of the kind, e.g. SUB_COMMAND.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether k is one of the known registry kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// IsScalar reports whether k is a non-grouping argument kind.
func (k Kind) IsScalar() bool {
	return k >= KindString && k <= KindAttachment
}

// ScalarType is the subset of Kind valid for Scalar options.
type ScalarType = Kind

// Option is a node in a command's option tree.
type Option interface {
	Kind() Kind
	OptionName() string
	OptionDescription() string

	isOption()
}

// KindName returns the registry name of an option's kind.
func KindName(opt Option) string {
	if opt == nil {
		return Kind(0).String()
	}
	return opt.Kind().String()
}

// Choice is a predefined value for a scalar option. Value is a string or a number.
type Choice struct {
	Name  string
	Value any
}

// SubcommandGroup groups subcommands under one extra path segment.
type SubcommandGroup struct {
	Name        string
	Description string
	Subcommands []*Subcommand
}

func (*SubcommandGroup) Kind() Kind                  { return KindSubcommandGroup }
func (g *SubcommandGroup) OptionName() string        { return g.Name }
func (g *SubcommandGroup) OptionDescription() string { return g.Description }
func (*SubcommandGroup) isOption()                   {}

// Subcommand is a directly invocable child of a root command or a group.
type Subcommand struct {
	Name        string
	Description string
	Options     []*Scalar
}

func (*Subcommand) Kind() Kind                  { return KindSubcommand }
func (s *Subcommand) OptionName() string        { return s.Name }
func (s *Subcommand) OptionDescription() string { return s.Description }
func (*Subcommand) isOption()                   {}

// Scalar is an argument accepted by a leaf command.
type Scalar struct {
	Type        ScalarType
	Name        string
	Description string
	Required    bool
	Choices     []Choice
}

func (s *Scalar) Kind() Kind                { return s.Type }
func (s *Scalar) OptionName() string        { return s.Name }
func (s *Scalar) OptionDescription() string { return s.Description }
func (*Scalar) isOption()                   {}

// CommandDefinition is a root command as registered with the vendor.
type CommandDefinition struct {
	ID                string
	ApplicationID     string
	Name              string
	Description       string
	Options           []Option
	DefaultPermission *bool
}

// CompiledCommand is a flattened leaf command ready for display. Name is the
// full invocation path, e.g. "role add".
type CompiledCommand struct {
	Name        string
	Description string
	Options     []Option
}
