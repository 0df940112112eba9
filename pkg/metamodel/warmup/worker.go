package warmup

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mandelsoft/logging"
)

// worker builds the specifications for the class names
// provided by the pool queue.
type worker struct {
	logging.UnboundLogger
	pool *pool
}

func newWorker(p *pool, number int) *worker {
	lgr := logging.DynamicLogger(p.lctx,
		logging.NewName(fmt.Sprintf("worker %d", number)),
		logging.NewAttribute("worker", strconv.Itoa(number)),
	)
	return &worker{
		UnboundLogger: lgr,
		pool:          p,
	}
}

func (w *worker) Run(ctx context.Context) {
	w.Debug("starting worker")
	for w.processNextWorkItem(ctx) {
	}
	w.Debug("exit worker")
}

func (w *worker) processNextWorkItem(ctx context.Context) bool {
	obj, shutdown := w.pool.workqueue.Get()
	if shutdown {
		return false
	}
	defer w.pool.workqueue.Done(obj)

	id, ok := obj.(string)
	if !ok {
		w.Error("expected string in workqueue", "key", fmt.Sprintf("%#v", obj))
		return true
	}
	if err := ctx.Err(); err != nil {
		w.pool.result.add(id, nil, err)
		return true
	}

	w.Debug("loading {{class}}", "class", id)
	s, err := w.pool.loader.Load(ctx, w.pool.classes[id])
	if err != nil {
		w.LogError(err, "loading {{class}} failed", "class", id)
	}
	w.pool.result.add(id, s, err)
	return true
}
