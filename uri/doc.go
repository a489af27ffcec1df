// Package uri parses channel URIs, the compact strings that describe
// a communication channel as a transport media plus key/value parameters.
//
// # Syntax
//
//	aeron:udp?endpoint=localhost:40123|interface=192.168.1.0/24
//	aeron:ipc
//
// A channel URI starts with the "aeron:" prefix followed by the media.
// The media ends at the first '?' and must not contain ':'.
// After '?' come parameters separated by '|', each one a key and a value joined by '='.
// A key runs up to the first '=', so ':' '?' and '|' are ordinary key characters;
// a value runs up to the next '|', so it may contain '=' or ':'.
// When a key repeats, the last value wins.
//
// # Parsing
//
// [Parse] accepts a string or a byte slice and scans it once, left to right:
//
//	u, err := uri.Parse("aeron:udp?endpoint=localhost:40123|ttl=8")
//	if err != nil {
//	    return err
//	}
//	u.Media()               // "udp"
//	u.Get("endpoint")       // "localhost:40123", true
//	u.GetOr("mtu", "1408")  // "1408"
//
// Every rejection is a [*FormatError] that matches [ErrInvalidFormat] and one of
// [ErrMissingPrefix], [ErrColonInMedia] or [ErrIncompleteParam] with [errors.Is].
// It also carries the byte offset and the scanner [State] of the rejection.
// Nothing is returned besides the error, there are no partial results.
//
// Parameter semantics are not checked: "ttl=abc" parses fine, and the
// media is returned verbatim without resolving or normalizing it.
//
// Use a [Parser] created with [NewParser] to get debug records about parsed
// and rejected input in a [log/slog.Logger].
//
// # Rendering
//
// [URI.String] renders the URI back with parameters ordered by key, and
// parsing the result yields an equal URI. [URI] also implements
// [encoding.TextMarshaler] and [encoding.TextUnmarshaler], so *URI fields
// can be used directly in JSON or YAML configuration structs.
//
// # Thread Safety
//
// Parsing keeps all scan state local to the call. A parsed [URI] is never
// modified, [URI.Params] returns a copy, so URIs can be shared between goroutines.
package uri
