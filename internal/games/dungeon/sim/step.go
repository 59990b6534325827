package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Step advances the world by dt seconds given the events fired since the
// previous step. It returns the next snapshot and the timers to schedule.
// prev is never modified. Terminal worlds are returned unchanged.
//
// Phases run in a fixed order: timers and player movement, bullet movement
// and decay, player fire, enemy movement, enemy state machines and fire,
// collision resolution, pickups and hazards, then room progression.
func Step(ctx *Context, prev World, events EventSet, dt float64) (World, []TimerRequest) {
	if prev.Over() {
		return prev, nil
	}
	t := ctx.Tuning
	w := prev.Clone()
	var timers []TimerRequest

	if events.Has(EvHurtCool) {
		w.Player.Hurt = false
	}
	canShoot := prev.CanShoot || events.Has(EvShootCool)
	obstacles := obstaclePositions(prev.Obstacles)

	// Player movement against obstacles and enemies as they stood.
	velocity := playerVelocity(events, t.PlayerSpeed)
	blockers := make([]core.Vec2, 0, len(obstacles)+len(prev.Enemies))
	blockers = append(blockers, obstacles...)
	for _, en := range prev.Enemies {
		blockers = append(blockers, en.Pos)
	}
	w.Player.Pos = TryMove(prev.Player.Pos, velocity.Mul(dt), blockers, t.TileSize)

	// (1)(2) Carried-over bullets.
	carried := advanceBullets(t, prev.Bullets, dt)

	// Player fire.
	var fired []Bullet
	if dir, ok := shootDirection(events); ok && canShoot {
		fired = FireWeapon(ctx, prev.Player, velocity, dir)
		timers = append(timers, after(EvShootCool, WeaponCooldown(prev.Player.Weapon)))
		w.Player = wearWeapon(t, w.Player)
		canShoot = false
	}
	w.CanShoot = canShoot

	// (3) Enemy movement, then wake-up on room start.
	enemies := moveEnemies(t, prev.Enemies, prev.Player.Pos, obstacles, dt)
	if events.Has(EvRoomStart) {
		var ts []TimerRequest
		enemies, ts = startRoom(ctx, enemies)
		timers = append(timers, ts...)
	}

	// (4) Enemy state machines.
	enemies, enemyTimers, enemyFire := updateEnemies(ctx, enemies, w.Player.Pos, obstacles, events)
	timers = append(timers, enemyTimers...)

	if events.Has(EvRapidFire) {
		timers = append(timers, after(EvRapidFire, t.RapidFirePeriod))
	}
	var rockets []Bullet
	if events.Has(EvRocketTick) && w.Player.HasTrinket(TrinketBoom) {
		if r, ok := fireRocket(t, w.Player, enemies); ok {
			rockets = append(rockets, r)
		}
		timers = append(timers, after(EvRocketTick, t.RocketPeriod))
	}

	// (5) Merge bullet sources.
	bullets := make([]Bullet, 0, len(carried)+len(fired)+len(enemyFire)+len(rockets))
	bullets = append(bullets, carried...)
	bullets = append(bullets, fired...)
	bullets = append(bullets, enemyFire...)
	bullets = append(bullets, rockets...)

	// (6)-(9) Collisions.
	res := resolveCombat(ctx, w.Player, bullets, enemies, prev.Obstacles, prev.Caltrops)
	timers = append(timers, res.timers...)
	w.Enemies = res.enemies
	w.Bullets = res.bullets
	w.Kills += res.kills

	var hurtTimers []TimerRequest
	w.Player, hurtTimers = damagePlayer(t, w.Player, res.playerHit || res.contact)
	timers = append(timers, hurtTimers...)
	if res.kills > 0 && w.Player.Health > 0 && w.Player.HasTrinket(TrinketBus) {
		w.Player.Health = min(w.Player.Health+res.kills*t.BusHealthGain, t.PlayerMaxHealth)
	}
	if w.Dead() {
		return w, timers
	}

	// Pickups and hazards.
	drops := make([]Drop, 0, len(prev.Drops)+len(res.drops))
	drops = append(drops, prev.Drops...)
	drops = append(drops, res.drops...)
	w.Player, w.Drops = collectDrops(t, w.Player, drops)

	caltrops, tombstones := ageHazards(t, res.caltrops, prev.Tombstones, dt)
	w.Caltrops = caltrops
	w.Tombstones = append(tombstones, res.tombstones...)

	// Progression.
	var opened bool
	if w, opened = openDoor(ctx, w); opened && w.RoomIndex >= 0 {
		w.RoomsCleared++
	}
	if doorReached(t, w) {
		next, roomTimers := NextRoom(ctx, w)
		return next, append(timers, roomTimers...)
	}
	return w, timers
}
