/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads hike's project configuration from
// .config/hike.{yaml,yml,json} and turns it into a trail.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the lookup configuration of a project.
type Config struct {
	// Root is the trail root, relative to the project directory.
	Root string `yaml:"root" json:"root"`

	// Paths are the search roots in priority order. Entries may be globs,
	// which expand to every matching directory.
	Paths []string `yaml:"paths" json:"paths"`

	// Extensions are tried in priority order. The leading dot is optional.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Aliases maps canonical extensions to their aliases.
	Aliases Aliases `yaml:"aliases" json:"aliases"`
}

// AliasGroup is one canonical extension and the aliases that stand in for it.
type AliasGroup struct {
	Canonical string
	Aliases   []string
}

// Aliases keeps alias groups in the order the config file lists them.
// Each value may be written as a single string or as a list:
//
//	aliases:
//	  html: [htm, xhtml]
//	  js: coffee
type Aliases []AliasGroup

// UnmarshalYAML decodes a mapping of canonical extension to alias or aliases.
func (a *Aliases) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidAlias, node.Line)
	}

	groups := make(Aliases, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var aliases []string
		switch value.Kind {
		case yaml.ScalarNode:
			aliases = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&aliases); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidAlias, key.Value, err)
			}
		default:
			return fmt.Errorf("%w: line %d: %s must be a string or a list", ErrInvalidAlias, value.Line, key.Value)
		}
		groups = append(groups, AliasGroup{Canonical: key.Value, Aliases: aliases})
	}

	*a = groups
	return nil
}

// UnmarshalJSON decodes an object of canonical extension to alias or
// aliases, keeping key order.
func (a *Aliases) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return fmt.Errorf("%w: expected an object", ErrInvalidAlias)
	}

	var groups Aliases
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		canonical := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		var aliases []string
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			aliases = []string{single}
		} else if err := json.Unmarshal(raw, &aliases); err != nil {
			return fmt.Errorf("%w: %s must be a string or a list", ErrInvalidAlias, canonical)
		}
		groups = append(groups, AliasGroup{Canonical: canonical, Aliases: aliases})
	}

	*a = groups
	return nil
}

// Default returns a config with default values: the project directory as
// the only search root and no extensions.
func Default() *Config {
	return &Config{
		Root:  ".",
		Paths: []string{"."},
	}
}
