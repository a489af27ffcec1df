package uri

// State is a lexical state of the URI scanner.
type State uint8

const (
	// StatePrefix is reported when input is rejected before scanning starts,
	// i.e. while matching the "aeron:" prefix.
	StatePrefix State = iota
	// StateMedia accumulates the media between the prefix and '?'.
	StateMedia
	// StateParamsKey accumulates a parameter key up to '='.
	StateParamsKey
	// StateParamsValue accumulates a parameter value up to '|'.
	StateParamsValue
)

func (s State) String() string {
	switch s {
	case StatePrefix:
		return "PREFIX"
	case StateMedia:
		return "MEDIA"
	case StateParamsKey:
		return "PARAMS_KEY"
	case StateParamsValue:
		return "PARAMS_VALUE"
	default:
		return "UNKNOWN"
	}
}
