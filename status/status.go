package status

import "fmt"

//BatchStatus status of a batch run
type BatchStatus string

const (
	//IDLE batch has never been run
	IDLE BatchStatus = "idle"
	//PREPARING a start handler of the batch is running
	PREPARING BatchStatus = "preparing"
	//PROCESSING an execute handler of the batch is running
	PROCESSING BatchStatus = "processing"
	//COMPLETED batch has finished successfully
	COMPLETED BatchStatus = "completed"
	//ABORTED batch has been aborted by caller
	ABORTED BatchStatus = "aborted"
	//FAILED batch has failed in one of its handlers
	FAILED BatchStatus = "failed"
)

var statuses = map[BatchStatus]int{
	IDLE:       0,
	PREPARING:  1,
	PROCESSING: 2,
	COMPLETED:  3,
	ABORTED:    4,
	FAILED:     5,
}

var transitions = map[BatchStatus][]BatchStatus{
	IDLE:       {PREPARING},
	PREPARING:  {PREPARING, PROCESSING, COMPLETED, ABORTED, FAILED},
	PROCESSING: {PREPARING, PROCESSING, COMPLETED, ABORTED, FAILED},
	COMPLETED:  {PREPARING, FAILED},
	ABORTED:    {PREPARING},
	FAILED:     {PREPARING},
}

// Parse returns the status with the given name
func Parse(name string) (BatchStatus, error) {
	s := BatchStatus(name)
	if _, ok := statuses[s]; !ok {
		return "", fmt.Errorf("unknown batch status:%v", name)
	}
	return s, nil
}

// IsRunning reports whether a handler of the batch may be in flight
func (s BatchStatus) IsRunning() bool {
	return s == PREPARING || s == PROCESSING
}

// IsTerminal reports whether the run has ended
func (s BatchStatus) IsTerminal() bool {
	return s == COMPLETED || s == ABORTED || s == FAILED
}

// CanTransit reports whether a run in status s may move to status to
func (s BatchStatus) CanTransit(to BatchStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BatchStatus) String() string {
	return string(s)
}
