package synth

// Port labels used by the built-in nodes.
const (
	PortIn    Consumer = "in"
	PortOut   Producer = "out"
	PortLeft  Producer = "left"
	PortRight Producer = "right"
)

// Mixer inputs.
const (
	PortIn0 Consumer = "in0"
	PortIn1 Consumer = "in1"
	PortIn2 Consumer = "in2"
	PortIn3 Consumer = "in3"
)

var (
	generatorOutputs = []Producer{PortOut}
	stereoOutputs    = []Producer{PortLeft, PortRight}
	effectInputs     = []Consumer{PortIn}
	mixerConsumers   = []Consumer{PortIn0, PortIn1, PortIn2, PortIn3}
)
