package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	nverrors "github.com/alexisbeaulieu97/nuxtvuetify/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseOptions loads user options from a YAML file.
func ParseOptions(path string) (PartialOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PartialOptions{}, nverrors.NewParseError(path, 0, err)
	}

	opts, err := DecodeOptions(data)
	if err != nil {
		return PartialOptions{}, nverrors.NewParseError(path, extractLine(err), err)
	}
	return opts, nil
}

// DecodeOptions decodes user options from YAML. Only malformed YAML is an error:
// unknown keys and keys with the wrong shape are listed in Ignored and left unset.
func DecodeOptions(data []byte) (PartialOptions, error) {
	var opts PartialOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return PartialOptions{}, err
	}
	return opts, nil
}

type optionDecoder func(*PartialOptions, *yaml.Node) error

var optionDecoders = map[string]optionDecoder{
	"enabled":            func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Enabled) },
	"defaultTheme":       func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.DefaultTheme) },
	"themes":             func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Themes) },
	"icons":              func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Icons) },
	"iconsCdn":           func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.IconsCDN) },
	"blueprint":          func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Blueprint) },
	"aliases":            func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Aliases) },
	"defaults":           func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Defaults) },
	"display":            func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Display) },
	"goTo":               func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.GoTo) },
	"locale":             func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Locale) },
	"date":               func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Date) },
	"ssr":                func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.SSR) },
	"treeshaking":        func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.TreeShaking) },
	"styles":             func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Styles) },
	"customVariables":    func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.CustomVariables) },
	"transformAssetUrls": func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.TransformAssetURLs) },
	"importComposables":  func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.ImportComposables) },
	"prefixComposables":  func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.PrefixComposables) },
	"persistence":        func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Persistence) },
	"preload":            func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Preload) },
	"logger":             func(o *PartialOptions, n *yaml.Node) error { return decodeInto(n, &o.Logger) },
}

// UnmarshalYAML decodes each top-level key on its own so one bad key cannot
// spoil the rest of the document.
func (o *PartialOptions) UnmarshalYAML(value *yaml.Node) error {
	*o = PartialOptions{}

	node := value
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		if !isNullNode(node) {
			o.Ignored = append(o.Ignored, "(root)")
		}
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		decode, ok := optionDecoders[key]
		if !ok {
			o.Ignored = append(o.Ignored, key)
			continue
		}
		if isNullNode(node.Content[i+1]) {
			continue
		}
		if err := decode(o, node.Content[i+1]); err != nil {
			o.Ignored = append(o.Ignored, key)
		}
	}
	return nil
}

// decodeInto only assigns dst when the whole value decodes.
func decodeInto[T any](node *yaml.Node, dst *T) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*dst = v
	return nil
}

func isNullNode(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
