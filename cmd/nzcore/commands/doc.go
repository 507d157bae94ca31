// Package commands implements the nzcore CLI: a thin, explicitly non-core
// consumer of the nzcore facade, one subcommand per file with a shared
// root.go PersistentPreRunE wiring identity and state paths.
package commands
