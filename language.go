package courier

import "golang.org/x/text/language"

// PreferredLanguage picks the best match among the supported language tags
// for the client's Accept-Language header. When the header is missing or
// unintelligible the first supported tag wins; with no supported tags the
// result is "".
func (req *HttpRequest) PreferredLanguage(supported ...string) string {
	if len(supported) == 0 {
		return ""
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}
	matcher := language.NewMatcher(tags)
	_, idx := language.MatchStrings(matcher, req.Header("Accept-Language")[0])
	return supported[idx]
}
