package goroutine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/codearena/arena-admin/internal/shared/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGroup_RecoversPanicAndWaits(t *testing.T) {
	g := NewGroup(logger.NewNop())
	var ran atomic.Int32

	g.Go("panics", func() { panic("boom") })
	g.Go("works", func() { ran.Add(1) })
	g.Wait()

	assert.Equal(t, int32(1), ran.Load())
}
