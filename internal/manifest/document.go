package manifest

import (
	"bytes"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	KindSecret       = "Secret"
	KindSealedSecret = "SealedSecret"

	// DefaultNamespace is used when a manifest's metadata omits the namespace.
	DefaultNamespace = "default"
)

const (
	strTag  = "!!str"
	nullTag = "!!null"
)

// Document is a single parsed YAML manifest.
type Document struct {
	root *yaml.Node // the top-level mapping
}

// SecretMetadata addresses a secret in the cluster.
type SecretMetadata struct {
	Name      string
	Namespace string
}

// Load parses a single YAML document whose root is a mapping.
func Load(data []byte) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrParse, err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", kerrors.ErrParse)
	}

	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root is not a mapping", kerrors.ErrParse)
	}
	return &Document{root: root}, nil
}

// New builds an empty manifest with the given apiVersion and kind.
func New(apiVersion, kind string) *Document {
	doc := &Document{root: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	doc.SetString("apiVersion", apiVersion)
	doc.SetString("kind", kind)
	return doc
}

// Dump serializes the document with two-space indentation.
func (d *Document) Dump() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// Kind returns the manifest's kind, or "" when absent.
func (d *Document) Kind() string {
	return d.String("kind")
}

// String returns the scalar value of a top-level field, or "" when the field
// is missing or not a scalar.
func (d *Document) String(key string) string {
	return scalarValue(lookup(d.root, key))
}

// SetString sets a top-level scalar field, appending it when absent.
func (d *Document) SetString(key, value string) {
	setScalar(d.root, key, value)
}

// Data returns the manifest's data map, or nil when the document has none.
func (d *Document) Data() *DataMap {
	node := lookup(d.root, "data")
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	return &DataMap{node: node}
}

// EnsureData returns the data map, creating an empty one when absent.
func (d *Document) EnsureData() *DataMap {
	if data := d.Data(); data != nil {
		return data
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	setNode(d.root, "data", node)
	return &DataMap{node: node}
}

// EnsureMapping returns the top-level mapping stored under key, creating it
// when absent.
func (d *Document) EnsureMapping(key string) *Document {
	node := lookup(d.root, key)
	if node == nil || node.Kind != yaml.MappingNode {
		node = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		setNode(d.root, key, node)
	}
	return &Document{root: node}
}

// SecretMetadata extracts metadata.name and metadata.namespace. The name is
// required; the namespace defaults to DefaultNamespace.
//
// The returned values come straight from the document and must be validated
// before they are used to build a command.
func (d *Document) SecretMetadata() (SecretMetadata, error) {
	metadata := lookup(d.root, "metadata")
	if metadata == nil || metadata.Kind != yaml.MappingNode {
		return SecretMetadata{}, fmt.Errorf("%w: %s does not have a metadata field", kerrors.ErrParse, d.kindOrDocument())
	}

	name := scalarValue(lookup(metadata, "name"))
	if name == "" {
		return SecretMetadata{}, fmt.Errorf("%w: %s does not have a metadata.name field", kerrors.ErrParse, d.kindOrDocument())
	}

	namespace := scalarValue(lookup(metadata, "namespace"))
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return SecretMetadata{Name: name, Namespace: namespace}, nil
}

func (d *Document) kindOrDocument() string {
	if kind := d.Kind(); kind != "" {
		return kind
	}
	return "document"
}

// lookup returns the value node stored under key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func scalarValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == nullTag {
		return ""
	}
	return node.Value
}

func setNode(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: key},
		value,
	)
}

func setScalar(mapping *yaml.Node, key, value string) {
	if node := lookup(mapping, key); node != nil && node.Kind == yaml.ScalarNode {
		assignString(node, value)
		return
	}
	node := &yaml.Node{}
	assignString(node, value)
	setNode(mapping, key, node)
}

// assignString turns node into a string scalar holding value. The encoder
// quotes values that would otherwise resolve to another type ("true", "123").
// Multi-line values are written as literal blocks.
func assignString(node *yaml.Node, value string) {
	node.Kind = yaml.ScalarNode
	node.Tag = strTag
	node.Value = value
	node.Style = 0
	if strings.Contains(value, "\n") {
		node.Style = yaml.LiteralStyle
	}
}
