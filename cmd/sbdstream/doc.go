// Package main hosts the sbdstream CLI entrypoint and command graph.
//
// The root command starts an operator session over a schedule CSV; the
// subcommands inspect schedules and scaffold configuration without starting
// one. Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands or
// flags here.
package main
