package gobatch

import "fmt"

type batchBuilder struct {
	name            string
	host            Host
	statusListeners []StatusListener
	phaseListeners  []PhaseListener
}

//NewBatch new instance of batch builder
func NewBatch(name string) *batchBuilder {
	if name == "" {
		panic("batch name must not be empty")
	}
	return &batchBuilder{
		name: name,
		host: alwaysValid{},
	}
}

//Host set the component owning the batch
func (builder *batchBuilder) Host(host Host) *batchBuilder {
	if host == nil {
		panic("batch host must not be nil")
	}
	builder.host = host
	return builder
}

func (builder *batchBuilder) Listener(listener ...interface{}) *batchBuilder {
	for _, l := range listener {
		valid := false
		if sl, ok := l.(StatusListener); ok {
			builder.statusListeners = append(builder.statusListeners, sl)
			valid = true
		}
		if pl, ok := l.(PhaseListener); ok {
			builder.phaseListeners = append(builder.phaseListeners, pl)
			valid = true
		}
		if !valid {
			panic(fmt.Sprintf("not supported listener:%+v for batch:%v", l, builder.name))
		}
	}
	return builder
}

func (builder *batchBuilder) Build() *Batch {
	return newBatch(builder.name, builder.host, builder.statusListeners, builder.phaseListeners)
}
