package game

import "github.com/tomz197/springlaunch/internal/object"

// resolveTargets checks the projectile against every unhit target in order.
// The first overlap wins: that target is marked hit and the projectile retires,
// so a single flight scores at most once. Returns the index of the hit target.
func resolveTargets(p *object.Projectile, targets []object.Target) (int, bool) {
	if !p.Active {
		return -1, false
	}
	for i := range targets {
		t := &targets[i]
		if t.Hit {
			continue
		}
		if t.Overlaps(p) {
			t.MarkHit()
			p.Retire()
			return i, true
		}
	}
	return -1, false
}
