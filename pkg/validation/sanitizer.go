package validation

import (
	"regexp"
	"strings"
)

// Security pattern families. Detection attaches warnings to the validation
// result; the caller decides whether a warning is fatal. Sanitization is
// applied regardless of what was detected.

var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<embed`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)data:text/html`),
}

var sqlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`'|"|--|;|/\*`),
	regexp.MustCompile(`(?i)\b(UNION|SELECT|DROP|INSERT|UPDATE|DELETE|EXEC|EXECUTE)\b`),
	regexp.MustCompile(`(?i)(OR|AND)\s+\d+\s*=\s*\d+`),
}

var commandPatterns = []*regexp.Regexp{
	regexp.MustCompile("[;&|`$()]"),
}

var promptInjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore.*instruction`),
	regexp.MustCompile(`(?i)forget.*previous`),
	regexp.MustCompile(`(?i)act\s+as`),
	regexp.MustCompile(`(?i)role.*play`),
	regexp.MustCompile(`(?i)jailbreak`),
	regexp.MustCompile(`(?i)from\s+now\s+on`),
	regexp.MustCompile(`(?i)you\s+are\s+a`),
	regexp.MustCompile(`(?i)imagine\s+you`),
	regexp.MustCompile(`(?i)disregard`),
}

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	iframeTagPattern    = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`)
	embedTagPattern     = regexp.MustCompile(`(?i)<embed[^>]*>`)
	objectTagPattern    = regexp.MustCompile(`(?is)<object\b[^>]*>.*?</object>`)
	styleTagPattern     = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtocolPattern   = regexp.MustCompile(`(?i)javascript:`)
	nonPrintablePattern = regexp.MustCompile(`[^\x20-\x7E]`)
)

func DetectXSSPatterns(input string) bool {
	return anyMatch(xssPatterns, input)
}

func DetectSQLInjectionPatterns(input string) bool {
	return anyMatch(sqlPatterns, input)
}

func DetectCommandInjectionPatterns(input string) bool {
	return anyMatch(commandPatterns, input)
}

func DetectPromptInjectionPatterns(input string) bool {
	return anyMatch(promptInjectionPatterns, input)
}

// StripDangerousTags removes script, iframe, embed, object and style tags.
func StripDangerousTags(input string) string {
	sanitized := scriptTagPattern.ReplaceAllString(input, "")
	sanitized = iframeTagPattern.ReplaceAllString(sanitized, "")
	sanitized = embedTagPattern.ReplaceAllString(sanitized, "")
	sanitized = objectTagPattern.ReplaceAllString(sanitized, "")
	sanitized = styleTagPattern.ReplaceAllString(sanitized, "")
	return sanitized
}

// StripEventHandlers removes inline on*="..." attributes.
func StripEventHandlers(input string) string {
	return eventHandlerPattern.ReplaceAllString(input, "")
}

// StripJavaScriptProtocol removes javascript: protocol references.
func StripJavaScriptProtocol(input string) string {
	return jsProtocolPattern.ReplaceAllString(input, "")
}

// SanitizeUserInput applies every stripping pass and trims the result.
func SanitizeUserInput(input string) string {
	sanitized := StripDangerousTags(input)
	sanitized = StripEventHandlers(sanitized)
	sanitized = StripJavaScriptProtocol(sanitized)
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitize evaluates all four pattern families and returns the
// sanitized input together with any warnings. None of the warnings block the
// request here.
func ValidateAndSanitize(input string) (string, []string) {
	var warnings []string

	if DetectXSSPatterns(input) {
		warnings = append(warnings, "Potential XSS pattern detected")
	}
	if DetectSQLInjectionPatterns(input) {
		warnings = append(warnings, "Potential SQL injection pattern detected")
	}
	if DetectCommandInjectionPatterns(input) {
		warnings = append(warnings, "Potential command injection pattern detected")
	}
	if DetectPromptInjectionPatterns(input) {
		warnings = append(warnings, "Potential prompt injection pattern detected")
	}

	return SanitizeUserInput(input), warnings
}

// SanitizeForLog makes untrusted input safe for a single log line.
func SanitizeForLog(input string) string {
	s := Truncate(input, 1000)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return nonPrintablePattern.ReplaceAllString(s, "?")
}

func anyMatch(patterns []*regexp.Regexp, input string) bool {
	for _, p := range patterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}
