// Package binding runs calls into the GridDyn native library and turns
// their integer status codes into Go errors.
//
// The cgo wrappers themselves live with the code that owns the simulation
// handles; they hand this package a closure returning the raw code:
//
//	inv := binding.NewInvoker(binding.Config{Logger: tracer})
//	err := inv.Invoke(ctx, "gridDynSimulation_run", func() int {
//	    return int(C.gridDynSimulation_run(sim))
//	})
//
// A code outside the status table is reported as
// status.ErrUnknownStatusCode and traced at error level; it is never
// treated as success.
package binding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/griddyn/griddyn-go/pkg/log"
	"github.com/griddyn/griddyn-go/pkg/status"
	"github.com/griddyn/griddyn-go/pkg/wire"
)

// Call is a native function that returns a griddyn_status code.
type Call func() int

// Config configures an Invoker. The zero value is usable.
type Config struct {
	// Logger receives one event per call. Defaults to log.NoopLogger.
	Logger log.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID returns a call identifier. Defaults to uuid.NewString.
	NewID func() string
}

// Invoker runs native calls and classifies their results.
// It is safe for concurrent use.
type Invoker struct {
	logger log.Logger
	now    func() time.Time
	newID  func() string
}

// NewInvoker creates an Invoker from cfg, filling in defaults.
func NewInvoker(cfg Config) *Invoker {
	inv := &Invoker{
		logger: cfg.Logger,
		now:    cfg.Now,
		newID:  cfg.NewID,
	}
	if inv.logger == nil {
		inv.logger = log.NoopLogger{}
	}
	if inv.now == nil {
		inv.now = time.Now
	}
	if inv.newID == nil {
		inv.newID = uuid.NewString
	}
	return inv
}

// Invoke runs fn unless ctx is already done and classifies the returned
// code. It returns nil for griddyn_ok, a *status.Error for a failure status
// and a *status.UnknownStatusCodeError for a code outside the table, each
// wrapped with the call name.
func (i *Invoker) Invoke(ctx context.Context, name string, fn Call) error {
	_, err := i.invoke(ctx, name, fn)
	return err
}

// Result runs fn like Invoke and reports a known status as a wire.Result.
// The error is non-nil only when the call was skipped or returned a code
// outside the table; failure statuses are carried in the Result.
func (i *Invoker) Result(ctx context.Context, name string, fn Call) (*wire.Result, error) {
	code, err := i.invoke(ctx, name, fn)
	if code == nil {
		return nil, err
	}
	return wire.NewResult(name, *code)
}

// invoke returns the raw code when fn ran.
func (i *Invoker) invoke(ctx context.Context, name string, fn Call) (*int, error) {
	event := log.Event{
		Timestamp: i.now(),
		CallID:    i.newID(),
		Call:      name,
	}

	if err := ctx.Err(); err != nil {
		event.Outcome = log.OutcomeSkipped
		event.Message = err.Error()
		i.logger.Log(event)
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	code := fn()

	event.Duration = i.now().Sub(event.Timestamp)
	event.Code = code
	event.Outcome = log.Classify(code)
	i.logger.Log(event)

	if err := status.Check(code); err != nil {
		return &code, fmt.Errorf("%s: %w", name, err)
	}
	return &code, nil
}
