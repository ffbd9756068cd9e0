package property_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
	"github.com/delaneyj/frp/property"
	"github.com/stretchr/testify/assert"
)

func TestTapRunsBeforeObserver(t *testing.T) {
	a := atom.New(clock.NewEnv(), 1)

	var log []string
	tapped := property.Tap(func(v int) {
		log = append(log, fmt.Sprintf("effect %d", v))
	}, property.Property[int](a))

	assert.Equal(t, 1, tapped.Get())
	assert.Empty(t, log)

	sub := tapped.Subscribe(observable.ObserverFunc[clock.Time](func(clock.Time) {
		log = append(log, "observer")
	}))
	a.Set(2)
	assert.Equal(t, []string{"effect 2", "observer"}, log)
	assert.Equal(t, 2, tapped.Get())

	sub.Unsubscribe()
	a.Set(3)
	assert.Len(t, log, 2)
}
