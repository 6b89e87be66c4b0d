package logic

// minuteLatch suppresses repeat fires of one trigger kind within a single
// clock minute. Every checked activity stamps its bit, fired or not, and the
// whole mask is cleared when the observed minute moves on.
//
// The coarse whole-mask clear is deliberate, reproduced behavior: it runs
// after the current activity's stamp, so the first activity checked in a
// fresh minute can still see its stale bit from the previous minute and be
// deferred to the following poll. See the latch tests for the exact shape of
// this edge.
type minuteLatch struct {
	mask       uint32
	prevMinute int
	primed     bool
}

// admit reports whether activity i may fire during this check. It stamps the
// activity's bit and rolls the mask over when the minute has changed since
// the previous check.
func (l *minuteLatch) admit(i, minute int) bool {
	if !l.primed {
		l.prevMinute = minute
		l.primed = true
	}

	ok := l.mask>>uint(i)&1 == 0
	l.mask |= 1 << uint(i)

	if minute != l.prevMinute {
		l.mask = 0
		l.prevMinute = minute
	}
	return ok
}
