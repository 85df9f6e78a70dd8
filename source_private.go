// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

var (
	/*
	sourceContentResolvers are the decoders FragmentFromBytes() tries,
	in order, against content of a not known format.
	*/
	sourceContentResolvers = []struct {
		Decode           func(content []byte) (RawFragment, *ekaerr.Error)
		AssociatedFormat SourceFormat
	}{
		{
			Decode:           rawFromYAML,
			AssociatedFormat: SOURCE_FORMAT_YAML,
		},
		{
			Decode:           rawFromTOML,
			AssociatedFormat: SOURCE_FORMAT_TOML,
		},
	}
)

/*
formatByExtension reports the SourceFormat the passed path's extension
declares: ".yml" / ".yaml" is YAML, ".toml" is TOML,
anything else is SOURCE_FORMAT_UNKNOWN (and is left to the sniffing).
*/
func formatByExtension(path string) SourceFormat {

	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		ext = ext[1:]
	}

	switch ext {
	case "yml", "yaml":
		return SOURCE_FORMAT_YAML
	case "toml":
		return SOURCE_FORMAT_TOML
	default:
		return SOURCE_FORMAT_UNKNOWN
	}
}

/*
rawFromYAML decodes YAML content into a RawFragment.

The decoding goes through the yaml.Node API, not a plain map:
a Go map would lose the language declaration order of the document,
and that order is the per-key fallback contract of the engine.
*/
func rawFromYAML(content []byte) (RawFragment, *ekaerr.Error) {
	const e = "Failed to decode content using YAML decoder. "

	var root yaml.Node
	if legacyErr := yaml.Unmarshal(content, &root); legacyErr != nil {
		return nil, ekaerr.IllegalFormat.
			Wrap(legacyErr, e+"Content is not a valid YAML document.").
			Throw()
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ekaerr.IllegalFormat.
			New(e + "Content has a valid format but is empty.").
			Throw()
	}

	document := root.Content[0]
	if document.Kind != yaml.MappingNode {
		return nil, ekaerr.IllegalFormat.
			New(e + "The document's root must be a mapping of translation keys.").
			Throw()
	}

	raw := make(RawFragment)
	if err := yamlScan(document, "", raw); err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	return raw, nil
}

/*
yamlScan walks over the passed YAML mapping node, treating it
like a key group of the dictionary:

 - A mapping value whose entries are all scalars is a language map;
   the full (prefix joined) key with its ordered per-language values
   is stored to raw.

 - A mapping value that contains nested mappings is a nested key group;
   yamlScan recurses into it with the extended prefix.
   A group can not mix phrases' scalars and nested groups.

 - Any other kind of value (a bare scalar, a sequence, an alias)
   is an error: a translation value must always be keyed by language.
*/
func yamlScan(node *yaml.Node, prefix string, raw RawFragment) *ekaerr.Error {
	const e = "Failed to scan a key group. "

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return ekaerr.IllegalFormat.
				New(e + "A translation key must be a scalar.").
				Throw()
		}

		key := keyNode.Value
		if prefix != "" {
			key = prefix + string(DEFAULT_DELIMITER) + key
		}

		switch {

		case valueNode.Kind == yaml.MappingNode && yamlIsLanguageMap(valueNode):
			phrase, err := yamlPhrase(valueNode)
			if err.IsNotNil() {
				return err.
					AddMessage(e).
					AddFields("saluton_key", key).
					Throw()
			}
			raw[key] = phrase

		case valueNode.Kind == yaml.MappingNode:
			if err := yamlScan(valueNode, key, raw); err.IsNotNil() {
				return err.
					Throw()
			}

		case valueNode.Kind == yaml.ScalarNode:
			return ekaerr.IllegalFormat.
				New(e + "A translation value must be keyed by language.").
				AddFields("saluton_key", key).
				Throw()

		default:
			return ekaerr.IllegalFormat.
				New(e + "Unexpected kind of value.").
				AddFields("saluton_key", key).
				Throw()
		}
	}

	return nil
}

/*
yamlIsLanguageMap reports whether the passed mapping node is a language map:
a non-empty mapping all values of which are scalars.
An empty mapping is treated as an empty key group and contributes nothing.
*/
func yamlIsLanguageMap(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return false
	}
	for i := 1; i < len(node.Content); i += 2 {
		if node.Content[i].Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

/*
yamlPhrase builds the ordered per-language values of one translation key
out of the passed language map node. The document order of the languages
is kept: it is the key's fallback order.
*/
func yamlPhrase(node *yaml.Node) (Phrase, *ekaerr.Error) {
	const e = "Failed to decode a language map. "

	phrase := make(Phrase, 0, len(node.Content)/2)

	for i := 0; i < len(node.Content)-1; i += 2 {
		languageNode, valueNode := node.Content[i], node.Content[i+1]

		if languageNode.Kind != yaml.ScalarNode {
			return nil, ekaerr.IllegalFormat.
				New(e + "A language code must be a scalar.").
				Throw()
		}

		var value interface{}
		if legacyErr := valueNode.Decode(&value); legacyErr != nil {
			return nil, ekaerr.IllegalFormat.
				Wrap(legacyErr, e+"Failed to decode a language's value.").
				AddFields("saluton_language", languageNode.Value).
				Throw()
		}

		phrase = append(phrase, Translation{
			Language: languageNode.Value,
			Value:    value,
		})
	}

	return phrase, nil
}

/*
rawFromTOML decodes TOML content into a RawFragment.

The decoding goes through the toml.Tree API, not a plain map:
the language declaration order of the document is recovered
from the key positions the parser kept.
*/
func rawFromTOML(content []byte) (RawFragment, *ekaerr.Error) {
	const e = "Failed to decode content using TOML decoder. "

	tree, legacyErr := toml.LoadBytes(content)
	if legacyErr != nil {
		return nil, ekaerr.IllegalFormat.
			Wrap(legacyErr, e+"Content is not a valid TOML document.").
			Throw()
	}

	if len(tree.Keys()) == 0 {
		return nil, ekaerr.IllegalFormat.
			New(e + "Content has a valid format but is empty.").
			Throw()
	}

	raw := make(RawFragment)
	if err := tomlScan(tree, "", raw); err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	return raw, nil
}

/*
tomlScan is yamlScan's counterpart for a TOML (sub)tree:
a table all values of which are leaves is a language map,
a table containing nested tables is a nested key group,
a bare leaf value at the group level is an error.
*/
func tomlScan(tree *toml.Tree, prefix string, raw RawFragment) *ekaerr.Error {
	const e = "Failed to scan a key group. "

	for _, treeKey := range tomlOrderedKeys(tree) {
		value := tree.GetPath([]string{treeKey})

		key := treeKey
		if prefix != "" {
			key = prefix + string(DEFAULT_DELIMITER) + key
		}

		switch value := value.(type) {

		case *toml.Tree:
			if tomlIsLanguageTable(value) {
				raw[key] = tomlPhrase(value)
			} else if err := tomlScan(value, key, raw); err.IsNotNil() {
				return err.
					Throw()
			}

		case []*toml.Tree:
			return ekaerr.IllegalFormat.
				New(e + "Unexpected array of tables.").
				AddFields("saluton_key", key).
				Throw()

		default:
			return ekaerr.IllegalFormat.
				New(e + "A translation value must be keyed by language.").
				AddFields("saluton_key", key).
				Throw()
		}
	}

	return nil
}

/*
tomlOrderedKeys returns the keys of the passed (sub)tree
in their document declaration order, recovered from the parser positions.
*/
func tomlOrderedKeys(tree *toml.Tree) []string {
	keys := tree.Keys()
	sort.Slice(keys, func(i, j int) bool {
		pi := tree.GetPositionPath([]string{keys[i]})
		pj := tree.GetPositionPath([]string{keys[j]})
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Col < pj.Col
	})
	return keys
}

/*
tomlIsLanguageTable reports whether the passed table is a language map:
a non-empty table all values of which are leaves (not nested tables).
An empty table is treated as an empty key group and contributes nothing.
*/
func tomlIsLanguageTable(tree *toml.Tree) bool {
	keys := tree.Keys()
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		switch tree.GetPath([]string{key}).(type) {
		case *toml.Tree, []*toml.Tree:
			return false
		}
	}
	return true
}

/*
tomlPhrase builds the ordered per-language values of one translation key
out of the passed language table.
*/
func tomlPhrase(tree *toml.Tree) Phrase {
	keys := tomlOrderedKeys(tree)
	phrase := make(Phrase, 0, len(keys))
	for _, language := range keys {
		phrase = append(phrase, Translation{
			Language: language,
			Value:    tree.GetPath([]string{language}),
		})
	}
	return phrase
}
