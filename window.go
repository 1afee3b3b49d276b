package rawhandle

// WindowHandle is a raw window handle for one particular windowing system.
//
// It is a closed tagged union: exactly one payload struct from this package
// at a time, with the dynamic type as the tag. Converting a payload into the
// union is plain interface assignment (injective and infallible); extracting
// a payload back out is an explicit type assertion or type switch, which is
// the only fallible direction.
//
// Payload structs are plain comparable value types, so WindowHandle values
// compare structurally with == (equal tag and field-for-field equal payload)
// and may be used as map keys; Go's map hashing is consistent with that
// equality by language guarantee. Store payloads in the union by value: a
// *payload also satisfies the interface through Go's method-set rules, but
// interface comparison then degrades to pointer identity and the structural
// guarantees above no longer hold.
//
// The union is non-exhaustive: new systems are added in minor releases
// without notice to existing matches. A type switch over a WindowHandle must
// therefore always carry a default arm and treat unknown payloads as an
// "unsupported platform" outcome, never as unreachable.
//
// All payload types exist on all targets; none is hidden behind build tags.
// The availability hint on each payload's doc comment says where the payload
// is commonly seen, but an implementer is free to return something unexpected
// (an Xlib handle on macOS under XQuartz is legal, just unusual), so a tag
// must never be taken to imply an operating system.
type WindowHandle interface {
	// System reports the windowing system this payload belongs to.
	System() System

	isWindowHandle()
}
