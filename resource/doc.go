/*
Package resource abstracts how raw configuration text is obtained.  A
Loader hides whether content comes from a system file, an HTTP URL, or
an in-memory buffer, so that parsing code never touches the filesystem
directly.
*/
package resource
