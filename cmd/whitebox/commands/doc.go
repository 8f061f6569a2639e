// Package commands defines the whitebox CLI.
//
// Commands
//
//   - even, divide, grade, triangle, sign   Numeric helpers
//   - password, login, age, email           Account checks
//   - discount, order, shipping, category   Pricing calculators
//   - temp                                  Celsius to Fahrenheit
//   - light, vending                        Drive the state machines
//
// # Implementation
//
// The root command loads Config from the environment (and an optional .env
// file), builds the logger and the pricing calculator, and stores the current
// command name in the context so every log record carries it. Results are
// written to stdout; logs go to stderr.
package commands
