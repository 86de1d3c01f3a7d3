// Package observer implements the synchronous, suspend-aware fan-out
// used by every mutable data-model entity in this module.
package observer

import "fmt"

// Observer receives change notifications from an Observable it is
// attached to.
type Observer interface {
	ObjectChanged(what any)
}

// Observable holds a list of attached Observers and fans out
// notifications to them synchronously. The zero value is ready to use.
type Observable struct {
	observers []Observer
	suspended int
	pending   bool
	self      any
}

// Init sets the value passed to ObjectChanged as the "what changed"
// argument; call it once, typically from the owning type's constructor,
// passing itself.
func (o *Observable) Init(self any) {
	o.self = self
}

// AddObserver attaches an observer. Attaching the same observer twice is
// a no-op.
func (o *Observable) AddObserver(obs Observer) {
	for _, existing := range o.observers {
		if existing == obs {
			return
		}
	}
	o.observers = append(o.observers, obs)
}

// RemoveObserver detaches an observer. Removing one not attached is a
// no-op.
func (o *Observable) RemoveObserver(obs Observer) {
	for i, existing := range o.observers {
		if existing == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// CountObservers returns the number of currently attached observers.
func (o *Observable) CountObservers() int {
	return len(o.observers)
}

// SuspendNotifications increments the suspend counter; while suspended,
// Notify records a pending notification instead of firing.
func (o *Observable) SuspendNotifications(suspend bool) {
	if suspend {
		o.suspended++
		return
	}
	if o.suspended == 0 {
		// A negative suspend count is a logic error in the caller.
		panic("observer: SuspendNotifications(false) without matching suspend")
	}
	o.suspended--
	if o.suspended == 0 && o.pending {
		o.pending = false
		o.fire()
	}
}

// Notify fires ObjectChanged on every attached observer, or records a
// pending notification if suspended. The observer list is snapshotted
// before iterating so an observer may detach itself mid-callback.
func (o *Observable) Notify() {
	if o.suspended > 0 {
		o.pending = true
		return
	}
	o.fire()
}

func (o *Observable) fire() {
	snapshot := make([]Observer, len(o.observers))
	copy(snapshot, o.observers)
	what := o.self
	for _, obs := range snapshot {
		obs.ObjectChanged(what)
	}
}

// CheckTornDown panics if observers remain attached; call from the
// owning type's teardown path. Destroying an Observable with attached
// observers is a programming error in the caller.
func (o *Observable) CheckTornDown() {
	if len(o.observers) > 0 {
		panic(fmt.Sprintf("observer: Observable destroyed with %d observer(s) still attached", len(o.observers)))
	}
}

// AutoSuspender suspends notifications for the lifetime of a scope;
// call Release (typically via defer) to resume.
type AutoSuspender struct {
	target *Observable
}

// Suspend returns an AutoSuspender that has already suspended target.
func Suspend(target *Observable) AutoSuspender {
	target.SuspendNotifications(true)
	return AutoSuspender{target: target}
}

// Release resumes notifications, firing a pending one if recorded.
func (s AutoSuspender) Release() {
	s.target.SuspendNotifications(false)
}
