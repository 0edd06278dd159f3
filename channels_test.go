package compositor

import "testing"

func TestRenderChanSendDeliversWithoutBlocking(t *testing.T) {
	ch := make(chan ReRenderMsg, 1)
	rc := NewRenderChan(ch)

	if !rc.Send(ReRenderMsg{Zoom: 1.5}) {
		t.Fatal("Send returned false on a channel with capacity")
	}
	if got := <-ch; got.Zoom != 1.5 {
		t.Errorf("delivered zoom = %f, want 1.5", got.Zoom)
	}
}

func TestRenderChanSendDropsOnFullChannel(t *testing.T) {
	ch := make(chan ReRenderMsg, 1)
	rc := NewRenderChan(ch)
	rc.Send(ReRenderMsg{Zoom: 1.0})

	if rc.Send(ReRenderMsg{Zoom: 2.0}) {
		t.Error("Send returned true on a full channel, want backpressure drop")
	}
}

func TestRenderChanSendOnNilIsSafe(t *testing.T) {
	var rc *RenderChan
	if rc.Send(ReRenderMsg{}) {
		t.Error("Send on a nil RenderChan should report false, not panic")
	}
}

func TestScriptChanRoundTrip(t *testing.T) {
	ch := make(chan ScriptEvent, 1)
	sc := NewScriptChan(ch)

	sc.Send(ClickEvent{Button: MouseButtonLeft, Point: PointF{X: 1, Y: 2}})

	ev := <-ch
	click, ok := ev.(ClickEvent)
	if !ok {
		t.Fatalf("event type = %T, want ClickEvent", ev)
	}
	if click.Button != MouseButtonLeft || click.Point != (PointF{X: 1, Y: 2}) {
		t.Errorf("click = %+v, want Button=Left Point=(1,2)", click)
	}
}

func TestConstellationChanSendsAck(t *testing.T) {
	ch := make(chan CompositorAck, 1)
	cc := NewConstellationChan(ch)

	cc.Send(CompositorAck{PipelineID: 9})

	if got := <-ch; got.PipelineID != 9 {
		t.Errorf("ack pipeline = %d, want 9", got.PipelineID)
	}
}
