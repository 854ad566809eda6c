// Package schemas holds the JSON Schemas for documents the CLI reads and writes.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	ProfileExport  = "profile_export.schema.json"
	JobRequirement = "job_requirement.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of an embedded schema
func Load(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s not found: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded schemas
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
