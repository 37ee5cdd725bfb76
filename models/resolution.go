package models

// HTTP cache policies applied to resolution responses.
const (
	CachePrivateHour = "private, max-age=3600"
	CachePublicHour  = "public, max-age=3600"
	CacheNoStore     = "no-store"
)

// ResolutionKind tells the transport how to render a Resolution.
type ResolutionKind int

const (
	// ResolutionRedirect is an HTTP redirect to Location.
	ResolutionRedirect ResolutionKind = iota
	// ResolutionAcknowledge is an inline page that sends the browser back.
	ResolutionAcknowledge
	// ResolutionInterstitial is an inline page showing Message and then
	// navigating to Location on the client side.
	ResolutionInterstitial
)

// Outcome labels used for logging and metrics.
const (
	OutcomeDirect   = "direct"
	OutcomeBuiltIn  = "builtin"
	OutcomeCustom   = "custom"
	OutcomeTabGroup = "tab_group"
	OutcomeFallback = "fallback"
	OutcomeSearch   = "search"
	OutcomeCommand  = "command"
)

// Resolution is the single response produced for a raw query.
type Resolution struct {
	Kind ResolutionKind

	// Location is the destination URL for redirects and interstitials.
	Location string

	// Message is shown on acknowledgment and interstitial pages.
	Message string

	// CacheControl is the value of the Cache-Control response header.
	CacheControl string

	// Vary is the value of the Vary response header, if any.
	Vary string

	// Outcome labels how the query was resolved.
	Outcome string
}

// Redirect builds a redirect resolution.
func Redirect(location, cacheControl, outcome string) Resolution {
	return Resolution{
		Kind:         ResolutionRedirect,
		Location:     location,
		CacheControl: cacheControl,
		Outcome:      outcome,
	}
}

// Acknowledge builds an inline acknowledgment for a mutating command.
func Acknowledge(message string) Resolution {
	return Resolution{
		Kind:         ResolutionAcknowledge,
		Message:      message,
		CacheControl: CacheNoStore,
		Outcome:      OutcomeCommand,
	}
}
