// Package config loads facade construction options from values set on a
// viper instance (such as flags) or from environment variables, grounded on
// arc-node's cobra+viper wiring and Ciphera's internal/app.Config. It does
// not read a config file.
package config
