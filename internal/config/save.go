// Theme preference persistence. The in-app toggle writes the chosen mode
// back to the config file; comments and unrelated sections are preserved
// by editing the yaml.Node tree instead of re-marshaling the Config.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveThemeMode updates theme.mode in the config file, creating the file
// from the default template if it does not exist yet.
func SaveThemeMode(configPath, mode string) error {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		if writeErr := WriteDefaultConfig(configPath); writeErr != nil {
			return writeErr
		}
		data, err = os.ReadFile(configPath)
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("config root is not a mapping")
	}

	themeNode := findOrAppend(root, "theme", yaml.MappingNode)
	modeNode := findOrAppend(themeNode, "mode", yaml.ScalarNode)
	modeNode.SetString(mode)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// findOrAppend returns the value node for a mapping key, creating the
// key/value pair when absent.
func findOrAppend(mapping *yaml.Node, key string, kind yaml.Kind) *yaml.Node {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			node := mapping.Content[i+1]
			if node.Kind == 0 {
				node.Kind = kind
			}
			return node
		}
	}

	value := &yaml.Node{Kind: kind}
	if kind == yaml.ScalarNode {
		value.Tag = "!!str"
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
	return value
}

// writeAtomic writes to a temp file in the target directory and renames.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".brigada.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
