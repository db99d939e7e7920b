package engine

import (
	"log"

	"github.com/dustin/go-humanize"
)

// matchLogger is the diagnostic side-channel alongside the event log,
// following apps/server/internal/table's log.Printf("[table %s] ...")
// tagging convention. It never feeds match outcomes; Quiet silences it
// entirely for batch tournament runs.
type matchLogger struct {
	matchID string
	quiet   bool
}

func newMatchLogger(matchID string, quiet bool) *matchLogger {
	return &matchLogger{matchID: matchID, quiet: quiet}
}

func (l *matchLogger) logf(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	log.Printf("[match %s] "+format, append([]interface{}{l.matchID}, args...)...)
}

func (l *matchLogger) summary(totalTurns, totalEvents int, winnerID string) {
	if l.quiet {
		return
	}
	log.Printf("[match %s] finished: winner=%s turns=%s events=%s",
		l.matchID, winnerID, humanize.Comma(int64(totalTurns)), humanize.Comma(int64(totalEvents)))
}
