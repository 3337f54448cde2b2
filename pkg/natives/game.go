package natives

import "wollokvalidate/pkg/runtime"

// positionOf answers a visual's position: its "position" attribute when
// set, else the result of sending it the position selector. Fields take
// precedence over methods (§4.6).
func positionOf(eval *runtime.Evaluation, visual *runtime.RuntimeObject) (*runtime.RuntimeObject, error) {
	if id, ok := visual.Get("position"); ok {
		obj, ok := eval.Instance(id)
		if !ok {
			return nil, runtime.NewTypeError("natives: dangling position reference on object %d", visual.Id())
		}
		return obj, nil
	}
	frame := eval.CurrentFrame()
	if err := eval.SendMessage("position", visual.Id()); err != nil {
		return nil, err
	}
	id, err := frame.Pop()
	if err != nil {
		return nil, err
	}
	obj, ok := eval.Instance(id)
	if !ok {
		return nil, runtime.NewTypeError("natives: position send returned an unknown object")
	}
	return obj, nil
}

func sameCoordinates(a, b *runtime.RuntimeObject) bool {
	ax, okA := a.Get("x")
	ay, okAy := a.Get("y")
	bx, okB := b.Get("x")
	by, okBy := b.Get("y")
	return okA && okAy && okB && okBy && ax == bx && ay == by
}

// SamePosition compares two visuals' positions, resolving each via
// positionOf before comparing x/y attribute Ids.
func SamePosition(eval *runtime.Evaluation, a, b *runtime.RuntimeObject) (bool, error) {
	posA, err := positionOf(eval, a)
	if err != nil {
		return false, err
	}
	posB, err := positionOf(eval, b)
	if err != nil {
		return false, err
	}
	return sameCoordinates(posA, posB), nil
}

// addVisual appends visual to self's visuals list. The visual must not
// be null, must answer a position, and must not already be present.
func addVisual(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 1 || isNull(eval, args[0]) {
		return runtime.NewTypeError("addVisual: the visual must not be null")
	}
	visual := args[0]
	if _, err := positionOf(eval, visual); err != nil {
		return runtime.WrapTypeError(err, "addVisual: visual %d does not answer a position", visual.Id())
	}
	list, err := collectionAttr(eval, self, "visuals", true)
	if err != nil {
		return err
	}
	for _, id := range list.Items {
		if id == visual.Id() {
			return runtime.NewTypeError("addVisual: visual %d was already added to the game", visual.Id())
		}
	}
	list.Items = append(list.Items, visual.Id())
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

// addVisualIn sets the visual's position then delegates to addVisual.
func addVisualIn(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 2 {
		return runtime.NewTypeError("addVisualIn: expects a visual and a position")
	}
	visual, position := args[0], args[1]
	if isNull(eval, visual) {
		return runtime.NewTypeError("addVisualIn: the visual must not be null")
	}
	visual.Set("position", position.Id())
	return addVisual(eval, self, []*runtime.RuntimeObject{visual})
}

func removeVisual(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 1 {
		return runtime.NewTypeError("removeVisual: expects a visual")
	}
	visual := args[0]
	if id, ok := self.Get("visuals"); ok {
		inst, ok := eval.Instance(id)
		if !ok {
			return runtime.NewTypeError("natives: dangling visuals reference on object %d", self.Id())
		}
		list, err := inst.AssertIsCollection()
		if err != nil {
			return err
		}
		kept := list.Items[:0:0]
		for _, v := range list.Items {
			if v != visual.Id() {
				kept = append(kept, v)
			}
		}
		list.Items = kept
	}
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

func allVisuals(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	list, err := collectionAttr(eval, self, "visuals", false)
	if err != nil {
		return err
	}
	copied := append([]runtime.Id{}, list.Items...)
	out := eval.CreateInstance(runtime.FQNList, &runtime.Collection{Items: copied, Ordered: true})
	eval.CurrentFrame().Push(out.Id())
	return nil
}

func hasVisual(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 1 {
		return runtime.NewTypeError("hasVisual: expects a visual")
	}
	list, err := collectionAttr(eval, self, "visuals", false)
	if err != nil {
		return err
	}
	found := false
	for _, id := range list.Items {
		if id == args[0].Id() {
			found = true
			break
		}
	}
	eval.CurrentFrame().Push(eval.Bool(found))
	return nil
}

// getObjectsIn answers every visual whose position's x/y attributes
// equal those of the given position object.
func getObjectsIn(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 1 {
		return runtime.NewTypeError("getObjectsIn: expects a position")
	}
	target := args[0]
	list, err := collectionAttr(eval, self, "visuals", false)
	if err != nil {
		return err
	}
	var matches []runtime.Id
	for _, id := range list.Items {
		visual, ok := eval.Instance(id)
		if !ok {
			continue
		}
		pos, err := positionOf(eval, visual)
		if err != nil {
			return err
		}
		if sameCoordinates(pos, target) {
			matches = append(matches, id)
		}
	}
	out := eval.CreateInstance(runtime.FQNList, &runtime.Collection{Items: matches, Ordered: true})
	eval.CurrentFrame().Push(out.Id())
	return nil
}

// colliders answers every other visual sharing visual's position.
func colliders(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 1 {
		return runtime.NewTypeError("colliders: expects a visual")
	}
	visual := args[0]
	pos, err := positionOf(eval, visual)
	if err != nil {
		return err
	}
	list, err := collectionAttr(eval, self, "visuals", false)
	if err != nil {
		return err
	}
	var matches []runtime.Id
	for _, id := range list.Items {
		if id == visual.Id() {
			continue
		}
		other, ok := eval.Instance(id)
		if !ok {
			continue
		}
		otherPos, err := positionOf(eval, other)
		if err != nil {
			return err
		}
		if sameCoordinates(pos, otherPos) {
			matches = append(matches, id)
		}
	}
	out := eval.CreateInstance(runtime.FQNList, &runtime.Collection{Items: matches, Ordered: true})
	eval.CurrentFrame().Push(out.Id())
	return nil
}

// say sets the visual's message and a messageTime two seconds past
// io.currentTime. The intermediate currentTime result is popped off the
// current Frame before say pushes its own void.
func say(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	if len(args) < 2 {
		return runtime.NewTypeError("say: expects a visual and a message")
	}
	visual, message := args[0], args[1]
	visual.Set("message", message.Id())
	ioId, ok := eval.WellKnownSingleton(runtime.FQNIO)
	if !ok {
		return runtime.NewTypeError("say: no io singleton registered with this evaluation")
	}
	frame := eval.CurrentFrame()
	if err := eval.SendMessage("currentTime", ioId); err != nil {
		return err
	}
	nowId, err := frame.Pop()
	if err != nil {
		return err
	}
	nowObj, ok := eval.Instance(nowId)
	if !ok {
		return runtime.NewTypeError("say: currentTime answered an unknown object")
	}
	now, err := nowObj.AssertIsNumber()
	if err != nil {
		return err
	}
	messageTime := eval.CreateInstance(runtime.FQNNumber, now+2000)
	visual.Set("messageTime", messageTime.Id())
	frame.Push(eval.Sentinels.Void)
	return nil
}

// clear forwards to io.clear, discards its result, and resets self's
// visuals to a fresh empty list.
func clear(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	ioId, ok := eval.WellKnownSingleton(runtime.FQNIO)
	if !ok {
		return runtime.NewTypeError("clear: no io singleton registered with this evaluation")
	}
	frame := eval.CurrentFrame()
	if err := eval.SendMessage("clear", ioId); err != nil {
		return err
	}
	if _, err := frame.Pop(); err != nil {
		return err
	}
	fresh := eval.CreateInstance(runtime.FQNList, &runtime.Collection{Ordered: true})
	self.Set("visuals", fresh.Id())
	frame.Push(eval.Sentinels.Void)
	return nil
}

func stop(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	self.Set("running", eval.Sentinels.False)
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

func start(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
	self.Set("running", eval.Sentinels.True)
	eval.CurrentFrame().Push(eval.Sentinels.Void)
	return nil
}

// GameCatalogue builds the selector table for the wollok.game.game
// singleton. whenCollideDo/onCollideDo/onTick/schedule forward verbatim
// to gameMirror; whenKeyPressedDo/removeTickEvent forward to io under a
// different selector name (§4.6).
func GameCatalogue() map[string]Native {
	return map[string]Native{
		"addVisual":            addVisual,
		"addVisualIn":          addVisualIn,
		"addVisualCharacter":   forwardWithSelector(runtime.FQNGameMirror, "addVisualCharacter"),
		"addVisualCharacterIn": forwardWithSelector(runtime.FQNGameMirror, "addVisualCharacterIn"),
		"whenCollideDo":        forwardWithSelector(runtime.FQNGameMirror, "whenCollideDo"),
		"onCollideDo":          forwardWithSelector(runtime.FQNGameMirror, "onCollideDo"),
		"onTick":               forwardWithSelector(runtime.FQNGameMirror, "onTick"),
		"schedule":             forwardWithSelector(runtime.FQNGameMirror, "schedule"),
		"whenKeyPressedDo":     forwardWithSelector(runtime.FQNIO, "addEventHandler"),
		"removeTickEvent":      forwardWithSelector(runtime.FQNIO, "removeTimeHandler"),
		"removeVisual":         removeVisual,
		"allVisuals":           allVisuals,
		"hasVisual":            hasVisual,
		"getObjectsIn":         getObjectsIn,
		"colliders":            colliders,
		"say":                  say,
		"clear":                clear,
		"title":                property("title"),
		"width":                property("width"),
		"height":               property("height"),
		"ground":               setter("ground"),
		"boardGround":          setter("boardGround"),
		"doCellSize":           setter("cellSize"),
		"errorReporter":        setter("errorReporter"),
		"hideAttributes":       setter("hideAttributes"),
		"showAttributes":       setter("showAttributes"),
		"stop":                 stop,
		"doStart":              start,
	}
}
