package templates

import (
	"fmt"

	webi18n "github.com/louisbranch/mindmap.space/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for page components.
type Localizer = webi18n.Localizer

// T translates key with loc. Without a localizer the key itself is used as
// the format string.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	switch {
	case !ok:
		return ""
	case len(args) == 0:
		return format
	default:
		return fmt.Sprintf(format, args...)
	}
}
