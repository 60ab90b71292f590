// Package codec implements the flat binary layout primitives used for every
// value that crosses the native boundary.
//
// A finished buffer is fully self-contained: a u32 root offset at position 0,
// followed by a small root table whose fields reference length-prefixed
// element vectors deeper in the buffer by u32 self-relative forward offsets.
// The builder writes back to front, so vectors exist before any offset that
// refers to them is computed. Offsets are relative to the position of the
// field that stores them, never absolute pointers, which keeps an encoded
// buffer valid at any address on either side of the boundary.
package codec
