package natives

import "wollokvalidate/pkg/runtime"

// Sound's status lives in the "status" attribute as a plain Go string
// rather than an AST-visible enum, matching the Idle/Played/Paused/
// Stopped state machine (§4.7). An unset attribute means Idle.
const (
	soundIdle    = ""
	soundPlayed  = "played"
	soundPaused  = "paused"
	soundStopped = "stopped"
)

func soundStatus(eval *runtime.Evaluation, self *runtime.RuntimeObject) string {
	id, ok := self.Get("status")
	if !ok {
		return soundIdle
	}
	obj, ok := eval.Instance(id)
	if !ok {
		return soundIdle
	}
	s, _ := obj.InnerValue().(string)
	return s
}

func setSoundStatus(eval *runtime.Evaluation, self *runtime.RuntimeObject, status string) {
	obj := eval.CreateInstance(runtime.FQNString, status)
	self.Set("status", obj.Id())
}

func displayStatus(status string) string {
	if status == soundIdle {
		return "idle"
	}
	return status
}

// play transitions Idle or Stopped to Played. The game must be running.
// All other source states fail with a StateError.
func play(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	status := soundStatus(eval, self)
	if status != soundIdle && status != soundStopped {
		return runtime.NewStateError("sound: cannot play from state %q", displayStatus(status))
	}
	gameId, ok := eval.WellKnownSingleton(runtime.FQNGame)
	if !ok {
		return runtime.NewStateError("sound: no game singleton registered with this evaluation")
	}
	gameObj, ok := eval.Instance(gameId)
	if !ok {
		return runtime.NewStateError("sound: dangling game singleton reference")
	}
	runningId, ok := gameObj.Get("running")
	if !ok || !eval.IsTrue(runningId) {
		return runtime.NewStateError("sound: cannot play before the game has started")
	}
	setSoundStatus(eval, self, soundPlayed)
	sounds, err := collectionAttr(eval, gameObj, "sounds", true)
	if err != nil {
		return err
	}
	sounds.Items = append(sounds.Items, self.Id())
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

// stop transitions Played or Paused to Stopped; any other state fails.
func soundStop(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	status := soundStatus(eval, self)
	if status != soundPlayed && status != soundPaused {
		return runtime.NewStateError("sound: cannot stop from state %q", displayStatus(status))
	}
	setSoundStatus(eval, self, soundStopped)
	if gameId, ok := eval.WellKnownSingleton(runtime.FQNGame); ok {
		if gameObj, ok := eval.Instance(gameId); ok {
			sounds, err := collectionAttr(eval, gameObj, "sounds", false)
			if err != nil {
				return err
			}
			kept := sounds.Items[:0:0]
			for _, id := range sounds.Items {
				if id != self.Id() {
					kept = append(kept, id)
				}
			}
			sounds.Items = kept
		}
	}
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

// pause transitions Played to Paused; any other state fails.
func pause(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if status := soundStatus(eval, self); status != soundPlayed {
		return runtime.NewStateError("sound: cannot pause from state %q", displayStatus(status))
	}
	setSoundStatus(eval, self, soundPaused)
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

// resume transitions Paused back to Played; any other state fails.
func resume(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if status := soundStatus(eval, self); status != soundPaused {
		return runtime.NewStateError("sound: cannot resume from state %q", displayStatus(status))
	}
	setSoundStatus(eval, self, soundPlayed)
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

func played(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	eval.CurrentFrame().Push(eval.Bool(soundStatus(eval, self) == soundPlayed))
	return nil
}

func paused(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	eval.CurrentFrame().Push(eval.Bool(soundStatus(eval, self) == soundPaused))
	return nil
}

// volume is a getter/setter property with a [0,1] RangeError check on set.
func volume(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	frame := eval.CurrentFrame()
	if len(args) > 0 {
		v, err := args[0].AssertIsNumber()
		if err != nil {
			return err
		}
		if v < 0 || v > 1 {
			return runtime.NewRangeError("sound: volume must be within [0, 1], got %v", v)
		}
		self.Set("volume", args[0].Id())
		frame.Push(eval.Sentinels.Void)
		return nil
	}
	if id, ok := self.Get("volume"); ok {
		frame.Push(id)
	} else {
		frame.Push(eval.Sentinels.Null)
	}
	return nil
}

// SoundCatalogue builds the selector table for the wollok.game.Sound
// class's native methods.
func SoundCatalogue() map[string]Native {
	return map[string]Native{
		"play":       play,
		"stop":       soundStop,
		"pause":      pause,
		"resume":     resume,
		"played":     played,
		"paused":     paused,
		"volume":     volume,
		"shouldLoop": property("shouldLoop"),
	}
}
