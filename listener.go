package gobatch

import (
	"context"

	"github.com/auracore/gobatch/status"
)

//StatusEvent a status change of a batch run
type StatusEvent struct {
	BatchName string
	RunID     string
	From      status.BatchStatus
	To        status.BatchStatus
}

//StatusListener status listener. Listeners are called while the batch is locked,
//they may read Status but must not call Run or Abort.
type StatusListener interface {
	//BeforeChange execute before the new status is stored
	BeforeChange(event StatusEvent)
	//AfterChange execute after the new status is stored
	AfterChange(event StatusEvent)
}

//PhaseContext the phase a PhaseListener is notified about
type PhaseContext struct {
	BatchName string
	RunID     string
	Entry     Entry
	Cycle     int
	Index     int
	EOF       bool
}

//PhaseListener phase listener
type PhaseListener interface {
	//BeforePhase execute before a start, execute or finish handler is invoked
	BeforePhase(ctx context.Context, phase PhaseContext)
	//AfterPhase execute after a start or execute outcome is accepted, or after finish returned without error
	AfterPhase(ctx context.Context, phase PhaseContext)
	//OnError execute when a phase reported an error, before the fail handler
	OnError(ctx context.Context, phase PhaseContext, err error)
}
