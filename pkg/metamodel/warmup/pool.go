package warmup

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mandelsoft/logging"
	"k8s.io/client-go/util/workqueue"

	"github.com/mandelsoft/facets/pkg/metamodel/spec"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Result describes the outcome of a warm-up.
type Result struct {
	lock           sync.Mutex
	Specifications map[string]spec.Specification
	Errors         map[string]error
}

func newResult() *Result {
	return &Result{
		Specifications: map[string]spec.Specification{},
		Errors:         map[string]error{},
	}
}

func (r *Result) add(id string, s spec.Specification, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if err != nil {
		r.Errors[id] = err
	} else {
		r.Specifications[id] = s
	}
}

// Failed lists the ids of failed classes in order.
func (r *Result) Failed() []string {
	return utils.OrderedMapKeys(r.Errors)
}

// Err provides a summary error for all failed classes or nil.
func (r *Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d class(es) failed: %s", len(failed), strings.Join(failed, ", "))
}

////////////////////////////////////////////////////////////////////////////////

type pool struct {
	logging.UnboundLogger
	lctx      logging.AttributionContext
	size      int
	loader    *spec.Loader
	classes   map[string]reflection.Class
	workqueue workqueue.Interface
	result    *Result
}

// Preload builds the specifications of the given classes with
// the given number of workers. Supertypes are built on demand
// by the loader, every class is processed once.
func Preload(ctx context.Context, loader *spec.Loader, classes []reflection.Class, workers int) *Result {
	if workers <= 0 {
		workers = 1
	}
	lctx := logging.DefaultContext().AttributionContext().WithContext(REALM, logging.NewAttribute("pool", "warmup"))
	p := &pool{
		UnboundLogger: logging.DynamicLogger(lctx),
		lctx:          lctx.AttributionContext(),
		size:          workers,
		loader:        loader,
		classes:       map[string]reflection.Class{},
		workqueue:     workqueue.NewWithConfig(workqueue.QueueConfig{Name: "warmup"}),
		result:        newResult(),
	}
	for _, c := range classes {
		if _, ok := p.classes[c.Name()]; !ok {
			p.classes[c.Name()] = c
			p.workqueue.Add(c.Name())
		}
	}
	p.run(ctx)
	return p.result
}

func (p *pool) run(ctx context.Context) {
	p.Info("starting warm-up", "classes", len(p.classes), "workers", p.size)

	// queued entries are still delivered after shutdown.
	p.workqueue.ShutDown()

	var wg sync.WaitGroup
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			newWorker(p, n).Run(ctx)
		}(i)
	}
	wg.Wait()
	p.Info("warm-up done", "built", len(p.result.Specifications), "failed", len(p.result.Errors))
}
