package game

import "testing"

func TestWeapon_FullMagazineCycle(t *testing.T) {
	w := NewWeapon()
	for i := 0; i < maxAmmo; i++ {
		if !w.Fire() {
			t.Fatalf("shot %d rejected with ammo=%d cooldown=%d", i, w.Ammo, w.Cooldown)
		}
		if w.Ammo < 0 {
			t.Fatal("ammo went negative")
		}
		if i < maxAmmo-1 {
			if w.Reloading {
				t.Fatalf("reload started early after shot %d", i)
			}
			for w.Cooldown > 0 {
				w.Tick()
			}
		}
	}
	if !w.Reloading || w.Ammo != 0 {
		t.Fatalf("expected auto reload with empty magazine, got reloading=%t ammo=%d", w.Reloading, w.Ammo)
	}
	if w.Fire() {
		t.Fatal("fire with ammo == 0 must be a no-op")
	}

	for i := 0; i < reloadTicks-1; i++ {
		if w.Tick() {
			t.Fatalf("reload completed early at tick %d", i+1)
		}
	}
	if !w.Reloading {
		t.Fatal("reload should still be running one tick before the end")
	}
	if !w.Tick() {
		t.Fatal("reload should complete on its final tick")
	}
	if w.Ammo != maxAmmo || w.Reloading {
		t.Fatalf("expected full magazine after reload, got ammo=%d reloading=%t", w.Ammo, w.Reloading)
	}
}

func TestWeapon_CooldownBlocksFire(t *testing.T) {
	w := NewWeapon()
	w.Fire()
	before := w
	if w.Fire() {
		t.Fatal("second shot during cooldown should be rejected")
	}
	if w != before {
		t.Fatal("rejected shot changed weapon state")
	}
	for i := 0; i < fireCooldown; i++ {
		w.Tick()
	}
	if !w.CanFire() {
		t.Fatalf("weapon should be ready after %d ticks", fireCooldown)
	}
}

func TestWeapon_FireSetsTimers(t *testing.T) {
	w := NewWeapon()
	w.Fire()
	if w.Cooldown != fireCooldown || w.FlashLeft != muzzleFlashTicks || w.Ammo != maxAmmo-1 {
		t.Fatalf("unexpected state after fire: %+v", w)
	}
}

func TestWeapon_ReloadIdempotent(t *testing.T) {
	w := NewWeapon()
	w.Ammo = 5
	if !w.Reload() {
		t.Fatal("reload with partial magazine should start")
	}
	snapshot := w
	if w.Reload() {
		t.Fatal("reload while reloading should be ignored")
	}
	if w != snapshot {
		t.Fatalf("reload while reloading changed state: %+v vs %+v", w, snapshot)
	}
}

func TestWeapon_ReloadWhenFullIgnored(t *testing.T) {
	w := NewWeapon()
	snapshot := w
	if w.Reload() {
		t.Fatal("reload with a full magazine should be ignored")
	}
	if w != snapshot {
		t.Fatal("ignored reload changed state")
	}
}

func TestWeapon_FireWhileReloadingIgnored(t *testing.T) {
	w := NewWeapon()
	w.Ammo = 3
	w.Reload()
	if w.Fire() {
		t.Fatal("fire while reloading should be ignored")
	}
	if w.Ammo != 3 {
		t.Fatalf("ammo changed to %d", w.Ammo)
	}
}

func TestWeapon_TimersNeverNegative(t *testing.T) {
	w := NewWeapon()
	for i := 0; i < 500; i++ {
		if i%7 == 0 {
			w.Fire()
		}
		w.Tick()
		if w.Cooldown < 0 || w.FlashLeft < 0 || w.ReloadLeft < 0 {
			t.Fatalf("negative timer at tick %d: %+v", i, w)
		}
		if w.Ammo < 0 || w.Ammo > w.MaxAmmo {
			t.Fatalf("ammo out of range at tick %d: %d", i, w.Ammo)
		}
	}
}

func TestWeapon_ReloadProgress(t *testing.T) {
	w := NewWeapon()
	if w.ReloadProgress() != 0 {
		t.Fatal("idle weapon should report zero progress")
	}
	w.Ammo = 0
	w.Reload()
	for i := 0; i < reloadTicks/2; i++ {
		w.Tick()
	}
	if p := w.ReloadProgress(); p < 0.49 || p > 0.51 {
		t.Fatalf("expected ~0.5 progress, got %.2f", p)
	}
}
