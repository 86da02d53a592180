package structs

import (
	"strings"
)

// TriggerKind names a scheduled trigger the core accepts.
type TriggerKind string

const (
	// TriggerSources clears the job error ledger, creates a new live run and
	// attaches the full source catalog.
	TriggerSources TriggerKind = "sources"

	// TriggerCollect rebuilds all collection manifests & cached sizes.
	TriggerCollect TriggerKind = "collect"

	// TriggerLevel recomputes user level overrides.
	TriggerLevel TriggerKind = "level"

	// TriggerClose force-closes runs open longer than the expiry threshold.
	TriggerClose TriggerKind = "close"

	// TriggerScale is a compute capacity hint; accepted and logged only.
	TriggerScale TriggerKind = "scale"
)

func ToTriggerKind(s string) TriggerKind {
	switch strings.ToLower(s) {
	case "sources":
		return TriggerSources
	case "collect":
		return TriggerCollect
	case "level":
		return TriggerLevel
	case "close":
		return TriggerClose
	case "scale":
		return TriggerScale
	default:
		return ""
	}
}
