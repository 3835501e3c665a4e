package engine

import (
	"context"
	"time"

	"rondo/pkg/chess"
)

// simpleTimeManager turns the go-command limits into a soft and a hard
// budget. The hard budget is a context deadline; the soft budget stops new
// iterations once the current one completes.
type simpleTimeManager struct {
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
	hardLimit time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, p *chess.Position) *simpleTimeManager {

	var tm = &simpleTimeManager{
		start:  start,
		limits: limits,
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if p.Side == chess.SideWhite {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo)
	}

	if tm.hardLimit != 0 {
		tm.ctx, tm.cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		tm.ctx, tm.cancel = context.WithCancel(ctx)
	}
	return tm
}

func (tm *simpleTimeManager) IsDone() bool {
	return tm.ctx.Err() != nil
}

func (tm *simpleTimeManager) OnNodesChanged(nodes int) {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		tm.cancel()
	}
}

func (tm *simpleTimeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Infinite {
		return
	}
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.cancel()
		return
	}
	if line.score >= winIn(line.depth-5) ||
		line.score <= lossIn(line.depth-5) {
		tm.cancel()
		return
	}
	if tm.softLimit != 0 &&
		time.Since(tm.start) >= tm.softLimit {
		tm.cancel()
		return
	}
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	const (
		defaultMovesToGo = 40
		moveOverhead     = 300 * time.Millisecond
		minTimeLimit     = 1 * time.Millisecond
	)

	main -= moveOverhead
	if main < minTimeLimit {
		main = minTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = min(moves, defaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	hard = limitDuration(hard, minTimeLimit, main)
	soft = limitDuration(soft, minTimeLimit, main)

	return
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
