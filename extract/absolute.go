package extract

import (
	"net/url"
	"strings"
)

// Absolute rewrites ref against base. Absolute refs are kept, protocol relative ones take the
// scheme of base and everything else is resolved against base. An empty ref stays empty.
func Absolute(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	b, err := url.Parse(base)
	if err != nil {
		return base + ref
	}

	r, err := url.Parse(ref)
	if err != nil {
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
	}

	if r.IsAbs() {
		return ref
	}

	return b.ResolveReference(r).String()
}
