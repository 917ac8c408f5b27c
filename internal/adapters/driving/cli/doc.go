// Package cli provides the cobra command tree for fbimport.
//
// Commands depend on driving ports only. The binary injects a settings
// service and a factory that builds import services per invocation, so
// flags such as --base-url can change how the document store is reached.
package cli
