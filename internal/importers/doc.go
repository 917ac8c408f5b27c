// Package importers maps raw source data to document proposals.
//
// Each importer understands one source data layout and is registered
// under the import source tag it stamps on its proposals. Importers are
// pure mapping functions: they hold no state between builds and make no
// decisions about what already exists in the document store.
package importers
