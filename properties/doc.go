/*
Package properties implements the flat key=value configuration format used
by managed service components, e.g. a Kafka broker's server.properties.

The format is line-oriented: one assignment per line, comments introduced
by a leading '#', blank lines ignored.  Parsing is strict: any other line
must contain exactly one '=' or the parse fails with a *ParseError.
*/
package properties
