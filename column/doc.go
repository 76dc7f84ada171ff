// Package column lowers/raises the id, scalar property, string property,
// and struct property column bodies onto the stream package's frame
// encoding. A column body is a flat sequence of stream frames with no
// length prefix of its own (unlike the geometry column, which is read by
// the geometry package); this package decides how many frames a given
// column type and string mode consumes by inspecting each frame's tag as
// it is read, the way the geometry package's NeedsLengthFunc decides how
// many length entries to consume.
package column
