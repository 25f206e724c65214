// Package screens holds modal screens pushed above the main folio layout.
package screens
