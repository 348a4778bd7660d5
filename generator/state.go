package generator

// State 单个生成请求所处的阶段
type State int

const (
	StateReceived State = iota
	StateInterpreted
	StateAssembling
	StateEncoding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "RECEIVED"
	case StateInterpreted:
		return "INTERPRETED"
	case StateAssembling:
		return "ASSEMBLING"
	case StateEncoding:
		return "ENCODING"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}
