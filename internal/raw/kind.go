package raw

// Kind identifies the memory layout of a buffer.
type Kind int

const (
	KindI420 Kind = iota
	KindI420A
	KindI422
	KindI444
	KindI010
	KindNV12
)

func (k Kind) String() string {
	switch k {
	case KindI420:
		return "I420"
	case KindI420A:
		return "I420A"
	case KindI422:
		return "I422"
	case KindI444:
		return "I444"
	case KindI010:
		return "I010"
	case KindNV12:
		return "NV12"
	default:
		return "Unknown"
	}
}
