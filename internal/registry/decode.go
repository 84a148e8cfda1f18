package registry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format identifies an input document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a command list from r. The document may be a bare list of
// commands or an object with a "commands" key.
func Decode(r io.Reader, format Format) ([]ApplicationCommand, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read commands")
	}
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON, "":
		return decodeJSON(data)
	default:
		return nil, errors.Errorf("unsupported input format %q", format)
	}
}

// LoadFile decodes the commands file at path using FormatForPath.
func LoadFile(path string) ([]ApplicationCommand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open commands file")
	}
	defer f.Close()

	cmds, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return cmds, nil
}

func decodeJSON(data []byte) ([]ApplicationCommand, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty commands document")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '{' {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parse json")
		}
		return doc.Commands, nil
	}

	var cmds []ApplicationCommand
	if err := dec.Decode(&cmds); err != nil {
		return nil, errors.Wrap(err, "parse json")
	}
	return cmds, nil
}

func decodeYAML(data []byte) ([]ApplicationCommand, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty commands document")
	}

	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
		return doc.Commands, nil
	}

	var cmds []ApplicationCommand
	if err := node.Decode(&cmds); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	return cmds, nil
}
