package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"log-stats/internal/models"
)

// accessLogRe matches one access-log line, anchored at both ends:
//
//	<identifier> - [<YYYY-MM-DD HH:MM:SS.frac>] "<method> <path> <protocol>" <status> <size>
//
// Fields are separated by exactly one space. The size has no sign, so negative sizes never match.
var accessLogRe = regexp.MustCompile(
	`^(\S+) - \[(\d+-\d+-\d+ \d+:\d+:\d+\.\d+)\] "(\S+ \S+ \S+)" (\d+) (\d+)$`,
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse extracts an entry from one raw line. It returns false for any line
	// that does not have the expected shape; it never fails otherwise.
	Parse(line string) (*models.LogEntry, bool)
}

type accessLogParser struct{}

func NewAccessLogParser() LineParser {
	return &accessLogParser{}
}

func (p *accessLogParser) Parse(line string) (*models.LogEntry, bool) {
	line = strings.TrimRight(line, "\r\n")

	matches := accessLogRe.FindStringSubmatch(line)
	if matches == nil {
		return nil, false
	}

	// \d+ can still overflow uint64
	size, err := strconv.ParseUint(matches[5], 10, 64)
	if err != nil {
		return nil, false
	}

	return &models.LogEntry{
		RemoteAddr: matches[1],
		Timestamp:  matches[2],
		Request:    matches[3],
		StatusCode: matches[4],
		ByteSize:   size,
	}, true
}
