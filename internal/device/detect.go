package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// DetectType classifies a User-Agent header into a device type. Anything it
// cannot place, including crawlers and empty headers, is unknown.
func DetectType(userAgent string) Type {
	if strings.TrimSpace(userAgent) == "" {
		return TypeUnknown
	}

	ua := useragent.New(userAgent)
	switch {
	case ua.Bot():
		return TypeUnknown
	case ua.Platform() == "iPad":
		return TypeTablet
	case strings.HasPrefix(ua.OS(), "Android") && !ua.Mobile():
		// Android tablets omit the Mobile token.
		return TypeTablet
	case ua.Mobile():
		return TypePhone
	case ua.Platform() == "" && ua.OS() == "":
		return TypeUnknown
	default:
		return TypeDesktop
	}
}
