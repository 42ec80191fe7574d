// Package config loads the YAML inputs that describe a design case: the
// turbine specification and the farm configuration (site boundary,
// substations, cable capacity).
//
// The loaders are strict: unknown keys fail, and every numeric field is
// range-checked on load so the engines downstream can assume well-formed
// inputs. Validation errors are sentinels wrapped with the offending field.
package config
