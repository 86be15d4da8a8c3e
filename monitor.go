package cow

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// CloneEvent is published for every copy-on-write clone while the Events
// switch is on.
type CloneEvent struct {
	Lineage uint64   // lineage of the cloning handle
	From    Identity // storage which was shared
	To      Identity // private clone
	Copies  int      // clones within the lineage, including this one
}

var monitor struct {
	once sync.Once
	cast *caster.Caster
}

func broadcaster() *caster.Caster {
	monitor.once.Do(func() {
		monitor.cast = caster.New(nil)
	})
	return monitor.cast
}

func publish(ev CloneEvent) {
	broadcaster().Pub(ev)
}

// Subscribe registers a subscriber for clone events. Events are delivered as
// values of type CloneEvent on the returned channel, which is buffered with the
// given capacity. Subscribers must drain the channel, otherwise cloning will
// stall while events are switched on. The subscription ends when ctx is done
// or with Unsubscribe.
func Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return broadcaster().Sub(ctx, capacity)
}

// Unsubscribe ends a subscription made with Subscribe.
func Unsubscribe(ch chan interface{}) bool {
	return broadcaster().Unsub(ch)
}
