// Package commands defines the shopping CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none), demo   Run the canonical demonstration
//   - notify         Set the stock status and notify customers
//   - product        Produce and display products by type label
//   - pay            Pay an amount with a chosen method
//
// # Implementation
//
// The root command builds the app.Wire (logger, stock, factory, payments)
// before any subcommand runs. Shop output goes to the command's stdout and
// logs go to its stderr.
package commands
