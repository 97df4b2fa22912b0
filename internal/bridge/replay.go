package bridge

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/messaging"
)

// maxNoticeSize bounds a single line of a replay file. Achievement images are
// carried inline, so lines can be large.
const maxNoticeSize = 16 << 20

// ReplayStats summarizes a replay run
type ReplayStats struct {
	Published int
	Skipped   int
}

// Replay publishes every notice envelope read from r, one JSON document per
// line, back onto the notice stream. Blank lines are ignored. Lines that do not
// decode to a known notice are logged and skipped unless strict is set, in
// which case the first one aborts the run.
func Replay(ctx context.Context, r io.Reader, publisher messaging.Publisher, jsonAdapter adapter.JSON, strict bool) (ReplayStats, error) {
	var stats ReplayStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxNoticeSize)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var notice domain.Notice
		err := jsonAdapter.UnmarshalStrict(data, &notice)
		if err == nil && !notice.Kind.Valid() {
			err = fmt.Errorf("unknown notice kind: %q", notice.Kind)
		}
		if err != nil {
			if strict {
				return stats, fmt.Errorf("line %d: %w", line, err)
			}
			logger.WarnCtx(ctx, "Skipping undecodable notice", zap.Int("line", line), zap.Error(err))
			stats.Skipped++
			continue
		}

		if err := publisher.PublishNotice(ctx, &notice); err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		stats.Published++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read notices: %w", err)
	}

	return stats, nil
}
