// Package commands defines the regiontrip CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)     Interactive explorer: pick a province, browse its districts
//     and attractions, confirm with Enter to get a random recommendation
//   - provinces  Print the province table
//   - spots      Print the attractions recorded for a region code
//   - districts  Fetch and print the districts of one province
//
// # Implementation
//
// The root command loads the config, builds the logger and the dependency
// graph before any subcommand runs, so handlers share one app context and
// one stdin reader.
package commands
