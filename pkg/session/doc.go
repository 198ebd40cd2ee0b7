/*
Package session serializes concurrent access to maze sessions.

The HTTP and MCP adapters serve many clients at once. Every read-modify-write of a
session goes through Manager.Update, which holds a per-session lock for the whole
load, apply and save cycle so two clients never interleave edits on the same grid.
*/
package session
