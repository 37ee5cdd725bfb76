package bang

import (
	"strings"

	"github.com/MKhiriev/go-bangs/models"
)

// TriggerPrefix starts every bang trigger.
const TriggerPrefix = "!"

var systemCommands = map[string]models.SystemCommand{
	"bm":     models.SystemCommandBookmark,
	"add":    models.SystemCommandAdd,
	"edit":   models.SystemCommandEdit,
	"del":    models.SystemCommandDelete,
	"note":   models.SystemCommandNote,
	"remind": models.SystemCommandRemind,
}

// SystemCommandFromName maps a trigger name (without "!") to its system
// command, or models.SystemCommandNone when the name is not reserved.
func SystemCommandFromName(name string) models.SystemCommand {
	return systemCommands[strings.ToLower(name)]
}

// IsReservedTrigger reports whether trigger, with or without the "!" prefix,
// names one of the system commands.
func IsReservedTrigger(trigger string) bool {
	return SystemCommandFromName(strings.TrimPrefix(NormalizeTrigger(trigger), TriggerPrefix)) != models.SystemCommandNone
}

// NormalizeTrigger lower-cases raw and makes sure it carries the "!" prefix.
// It returns an empty string when nothing but the prefix is left.
func NormalizeTrigger(raw string) string {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), TriggerPrefix)
	if name == "" {
		return ""
	}
	return TriggerPrefix + name
}
