// Package app wires application dependencies for the CLI.
//
// It builds the logger, stock, product factory, card processor and payment
// strategies from Config, exposes them via the Wire struct for commands to
// use, and runs the fixed demonstration scenario.
package app
