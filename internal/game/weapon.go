package game

// --- Weapon constants ---

const (
	maxAmmo          = 12   // rounds per magazine
	fireCooldown     = 12   // ticks between shots
	muzzleFlashTicks = 6    // ticks the muzzle flash is shown
	reloadTicks      = 60   // ticks to refill the magazine
	weaponRange      = 16.0 // world units, hitscan reach
)

// Weapon is the player's magazine-fed hitscan gun. All timers are tick
// countdowns and never go negative.
type Weapon struct {
	Ammo       int
	MaxAmmo    int
	Reloading  bool
	ReloadLeft int
	Cooldown   int
	FlashLeft  int
}

// NewWeapon returns a full, ready weapon.
func NewWeapon() Weapon {
	return Weapon{Ammo: maxAmmo, MaxAmmo: maxAmmo}
}

// CanFire reports whether a shot would be accepted this tick.
func (w *Weapon) CanFire() bool {
	return !w.Reloading && w.Cooldown == 0 && w.Ammo > 0
}

// Fire consumes a round and starts the cooldown and flash timers.
// Returns false (and changes nothing) when the weapon cannot fire.
// Emptying the magazine starts a reload.
func (w *Weapon) Fire() bool {
	if !w.CanFire() {
		return false
	}
	w.Ammo--
	w.Cooldown = fireCooldown
	w.FlashLeft = muzzleFlashTicks
	if w.Ammo == 0 {
		w.startReload()
	}
	return true
}

// Reload begins a reload. Ignored while already reloading or when full.
func (w *Weapon) Reload() bool {
	if w.Reloading || w.Ammo >= w.MaxAmmo {
		return false
	}
	w.startReload()
	return true
}

func (w *Weapon) startReload() {
	w.Reloading = true
	w.ReloadLeft = reloadTicks
}

// Tick advances every weapon timer by one tick. Returns true on the tick a
// reload completes.
func (w *Weapon) Tick() bool {
	if w.Cooldown > 0 {
		w.Cooldown--
	}
	if w.FlashLeft > 0 {
		w.FlashLeft--
	}
	if !w.Reloading {
		return false
	}
	if w.ReloadLeft > 0 {
		w.ReloadLeft--
	}
	if w.ReloadLeft == 0 {
		w.Reloading = false
		w.Ammo = w.MaxAmmo
		return true
	}
	return false
}

// ReloadProgress returns 0..1 through the current reload, or 0 when idle.
func (w *Weapon) ReloadProgress() float64 {
	if !w.Reloading {
		return 0
	}
	return 1 - float64(w.ReloadLeft)/float64(reloadTicks)
}
