// Package config loads the viewer daemon's JSON configuration. The schema
// uses pointer fields so that an omitted value can be told apart from an
// explicit zero; Get* accessors supply the defaults.
package config
