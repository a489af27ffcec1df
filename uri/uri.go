package uri

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"strconv"

	"braces.dev/errtrace"

	"github.com/bhatti/Aeron/internal/errorutil"
	"github.com/bhatti/Aeron/internal/ioutil"
	"github.com/bhatti/Aeron/internal/util"
)

// URI is a parsed channel URI.
//
// A URI is built by [Parse] and never changes afterwards,
// so it can be shared between goroutines without synchronization.
// Methods of a nil *URI return zero values.
type URI struct {
	media  string
	params Params
}

// Scheme returns the scheme of the URI, which is always [Scheme].
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return Scheme
}

// Media returns the transport media, e.g. "udp" or "ipc". It may be empty.
func (u *URI) Media() string {
	if u == nil {
		return ""
	}
	return u.media
}

// Get returns the value of the parameter key and whether it is present.
func (u *URI) Get(key string) (string, bool) {
	if u == nil {
		return "", false
	}
	return u.params.Get(key)
}

// GetOr returns the value of the parameter key or def if the parameter is absent.
func (u *URI) GetOr(key, def string) string {
	if v, ok := u.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether the parameter key is present.
func (u *URI) Has(key string) bool {
	return u != nil && u.params.Has(key)
}

// Len returns the number of parameters.
func (u *URI) Len() int {
	if u == nil {
		return 0
	}
	return len(u.params)
}

// Keys returns the parameter keys in ascending order.
func (u *URI) Keys() []string {
	if u == nil {
		return nil
	}
	return u.params.Keys()
}

// All returns an iterator over the parameters ordered by key.
func (u *URI) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range u.Keys() {
			if !yield(k, u.params[k]) {
				return
			}
		}
	}
}

// Params returns a copy of the parameters.
// It is nil when the URI has no parameters.
func (u *URI) Params() Params {
	if u == nil {
		return nil
	}
	return u.params.Clone()
}

// RenderTo writes the URI to w with parameters ordered by key.
// Parsing the rendered text yields an equal URI.
func (u *URI) RenderTo(w io.Writer) (int, error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString(Prefix)  //nolint:errcheck
	cw.WriteString(u.media) //nolint:errcheck
	for i, k := range u.Keys() {
		if i == 0 {
			cw.WriteByte('?') //nolint:errcheck
		} else {
			cw.WriteByte('|') //nolint:errcheck
		}
		cw.WriteString(k)           //nolint:errcheck
		cw.WriteByte('=')           //nolint:errcheck
		cw.WriteString(u.params[k]) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string { return u.Render() }

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal reports whether val is a URI with the same media and parameters.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.media == other.media && maps.Equal(u.params, other.params)
}

// LogValue implements [slog.LogValuer] for structured logging.
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.String("scheme", Scheme), slog.String("media", u.media))
	if len(u.params) > 0 {
		params := make([]slog.Attr, 0, len(u.params))
		for k, v := range u.All() {
			params = append(params, slog.String(k, v))
		}
		attrs = append(attrs, slog.Attr{Key: "params", Value: slog.GroupValue(params...)})
	}
	return slog.GroupValue(attrs...)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// On failure the receiver is reset to the zero URI.
func (u *URI) UnmarshalText(text []byte) error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
