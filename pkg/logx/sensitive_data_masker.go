package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Getgems authenticates with a raw API key in the Authorization header and
// Telegram embeds the bot token in the request path; neither may reach logs.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: ).+?(\r)"),
	regexp.MustCompile(`(/bot)\d+:[\w-]+?(/)`),
	regexp.MustCompile(`(?s)("api[_-]?[Kk]ey":\s?").+?(")`),
	regexp.MustCompile(`(?s)("token":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
