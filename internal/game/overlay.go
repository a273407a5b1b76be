package game

import "time"

// loadingOverlay tracks the world's loading flag and fades a shade in and
// out over the configured transition. It drains its subscription on the game
// loop, so the flag can flip from any goroutine without the renderer caring.
type loadingOverlay struct {
	updates <-chan bool
	target  bool
	fade    float64 // 0 invisible, 1 fully shaded
	speed   float64 // fade change per second
}

func newLoadingOverlay(updates <-chan bool, transition time.Duration) *loadingOverlay {
	speed := 0.0
	if transition > 0 {
		speed = 1 / transition.Seconds()
	}
	return &loadingOverlay{
		updates: updates,
		target:  true,
		fade:    1, // the world always starts loading
		speed:   speed,
	}
}

// step consumes pending flag changes and advances the fade by dt seconds.
func (o *loadingOverlay) step(dt float64) {
	draining := o.updates != nil
	for draining {
		select {
		case v, ok := <-o.updates:
			if !ok {
				// Session disposed; hold the shade up for good.
				o.updates = nil
				o.target = true
				draining = false
			} else {
				o.target = v
			}
		default:
			draining = false
		}
	}

	if o.speed <= 0 {
		if o.target {
			o.fade = 1
		} else {
			o.fade = 0
		}
		return
	}
	if o.target {
		o.fade += o.speed * dt
		if o.fade > 1 {
			o.fade = 1
		}
	} else {
		o.fade -= o.speed * dt
		if o.fade < 0 {
			o.fade = 0
		}
	}
}

// alpha is the current shade opacity in [0, 1].
func (o *loadingOverlay) alpha() float64 { return o.fade }

// showing reports whether the overlay is still conveying a load in progress,
// as opposed to fading out over a finished world.
func (o *loadingOverlay) showing() bool { return o.target }
