// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// Context is the cookie passed to every [Job.Run]. It carries everything a
// job might need that would otherwise have to live in process-wide globals,
// threaded explicitly instead so a concurrent call to [Sort] never shares
// state with another.
type Context struct {
	Queue *JobQueue

	cfg    Config
	shared *sharedState

	failOnce sync.Once
	errVal   atomic.Value
}

// sharedState is the per-invocation state the work-sharing controller reads
// and updates. One sharedState exists per call to [Sort].
type sharedState struct {
	lengthOfLongestJob atomix.Int64
}

func newContext(cfg Config, queue *JobQueue) *Context {
	return &Context{
		Queue:  queue,
		cfg:    cfg,
		shared: &sharedState{},
	}
}

// fail records a fatal error and asks the queue to stop accepting new work.
// Only the first failure is kept.
func (c *Context) fail(err error) {
	c.failOnce.Do(func() {
		c.errVal.Store(err)
		c.Queue.abort()
		c.cfg.logger.Error().Err(err).Msg("lcpsort: merge aborted")
	})
}

// Err returns the first fatal error reported during the merge, or nil.
func (c *Context) Err() error {
	v := c.errVal.Load()
	if v == nil {
		return nil
	}
	return v.(error)
}
