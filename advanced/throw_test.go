package advanced

import (
	"testing"

	"github.com/osuushi/tessellate/internal"
	"github.com/stretchr/testify/assert"
)

func TestHandleTessellatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTessellatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			// Winding of two points is undefined
			internal.ShoelaceSum([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "winding is undefined for 2 points")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
