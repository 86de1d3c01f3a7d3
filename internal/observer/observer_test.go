package observer

import "testing"

type countingObserver struct {
	count int
}

func (c *countingObserver) ObjectChanged(what any) {
	c.count++
}

func TestNotifyFiresImmediatelyWhenNotSuspended(t *testing.T) {
	var o Observable
	obs := &countingObserver{}
	o.AddObserver(obs)

	o.Notify()
	o.Notify()

	if obs.count != 2 {
		t.Errorf("count = %d, want 2", obs.count)
	}
}

func TestSuspendResumeCoalescesToOneNotify(t *testing.T) {
	var o Observable
	obs := &countingObserver{}
	o.AddObserver(obs)

	o.SuspendNotifications(true)
	for i := 0; i < 5; i++ {
		o.Notify()
	}
	if obs.count != 0 {
		t.Errorf("count during suspend = %d, want 0", obs.count)
	}
	o.SuspendNotifications(false)

	if obs.count != 1 {
		t.Errorf("count after resume = %d, want 1", obs.count)
	}
}

func TestResumeWithoutPendingFiresNothing(t *testing.T) {
	var o Observable
	obs := &countingObserver{}
	o.AddObserver(obs)

	o.SuspendNotifications(true)
	o.SuspendNotifications(false)

	if obs.count != 0 {
		t.Errorf("count = %d, want 0", obs.count)
	}
}

func TestNestedSuspend(t *testing.T) {
	var o Observable
	obs := &countingObserver{}
	o.AddObserver(obs)

	o.SuspendNotifications(true)
	o.SuspendNotifications(true)
	o.Notify()
	o.SuspendNotifications(false)
	if obs.count != 0 {
		t.Errorf("count after one resume of two suspends = %d, want 0", obs.count)
	}
	o.SuspendNotifications(false)
	if obs.count != 1 {
		t.Errorf("count after final resume = %d, want 1", obs.count)
	}
}

func TestDetachDuringNotifyDoesNotPanic(t *testing.T) {
	var o Observable
	var self struct{}
	o.Init(&self)

	var a *detachingObserver
	b := &countingObserver{}
	a = &detachingObserver{o: &o}
	o.AddObserver(a)
	o.AddObserver(b)

	o.Notify()

	if b.count != 1 {
		t.Errorf("b.count = %d, want 1", b.count)
	}
	if o.CountObservers() != 1 {
		t.Errorf("observers remaining = %d, want 1", o.CountObservers())
	}
}

type detachingObserver struct {
	o *Observable
}

func (d *detachingObserver) ObjectChanged(what any) {
	d.o.RemoveObserver(d)
}

func TestCheckTornDownPanicsWithAttachedObservers(t *testing.T) {
	var o Observable
	o.AddObserver(&countingObserver{})

	defer func() {
		if recover() == nil {
			t.Error("expected panic when observers remain attached")
		}
	}()
	o.CheckTornDown()
}
