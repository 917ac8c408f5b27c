// Package file loads importer source data from JSON or YAML files.
package file
