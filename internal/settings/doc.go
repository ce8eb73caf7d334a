// Package settings defines the enumerated value types used by the
// launcher configuration: JVM heap sizes and game log verbosity. The
// enum names are the stable strings written to the config file.
package settings
