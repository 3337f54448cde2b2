package runtime

import "testing"

func TestAttributeSetThenGetRoundTrips(t *testing.T) {
	eval := NewEvaluation()
	obj := eval.CreateInstance("some.Module", nil)
	value := eval.CreateInstance(FQNNumber, 42.0)

	obj.Set("x", value.Id())
	got, ok := obj.Get("x")
	if !ok || got != value.Id() {
		t.Fatalf("expected Get to return the value just Set, got %v ok=%v", got, ok)
	}
}

func TestSentinelsAreDistinctAndStable(t *testing.T) {
	eval := NewEvaluation()
	s := eval.Sentinels
	ids := map[Id]bool{s.True: true, s.False: true, s.Null: true, s.Void: true}
	if len(ids) != 4 {
		t.Fatalf("expected 4 distinct sentinel ids, got %d", len(ids))
	}
	if !eval.IsTrue(s.True) || eval.IsTrue(s.False) {
		t.Fatalf("IsTrue disagreed with the True/False sentinels")
	}
}

func TestAssertIsNumberFailsOnWrongInnerValue(t *testing.T) {
	eval := NewEvaluation()
	obj := eval.CreateInstance(FQNString, "not a number")
	if _, err := obj.AssertIsNumber(); err == nil {
		t.Fatalf("expected AssertIsNumber to fail on a String-backed object")
	}
}

func TestFrameOperandStackPushPop(t *testing.T) {
	eval := NewEvaluation()
	frame := eval.CurrentFrame()
	frame.Push(eval.Sentinels.Void)
	if frame.Depth() != 1 {
		t.Fatalf("expected depth 1 after one push, got %d", frame.Depth())
	}
	id, err := frame.Pop()
	if err != nil {
		t.Fatalf("unexpected error popping: %v", err)
	}
	if id != eval.Sentinels.Void {
		t.Fatalf("expected to pop back the Void sentinel")
	}
	if frame.Depth() != 0 {
		t.Fatalf("expected depth 0 after pop")
	}
}

func TestInstanceLookupIsRegistered(t *testing.T) {
	eval := NewEvaluation()
	obj := eval.CreateInstance("a.B", nil)
	got, ok := eval.Instance(obj.Id())
	if !ok || got != obj {
		t.Fatalf("expected Instance to return the object just created")
	}
}

func TestSendMessageWithoutInterpreterErrors(t *testing.T) {
	eval := NewEvaluation()
	if err := eval.SendMessage("foo", eval.Sentinels.Null); err == nil {
		t.Fatalf("expected an error when no interpreter is wired")
	}
}
