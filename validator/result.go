package validator

// Kind tags the outcome of a verification. The zero value is KindFault, so an
// uninitialised Result never reads as verified.
type Kind int

const (
	KindFault Kind = iota
	KindVerified
	KindSignatureInvalid
)

func (k Kind) String() string {
	switch k {
	case KindVerified:
		return "verified"
	case KindSignatureInvalid:
		return "signature_invalid"
	default:
		return "fault"
	}
}

// Result is the tagged outcome of Validator.Verify. Claims is only set for
// KindVerified; Err is set for the other two kinds.
type Result struct {
	Kind   Kind
	Claims Claims
	Err    error
}

// Verified builds a KindVerified result.
func Verified(claims Claims) Result {
	return Result{Kind: KindVerified, Claims: claims}
}

// SignatureInvalid builds a KindSignatureInvalid result.
func SignatureInvalid(err error) Result {
	return Result{Kind: KindSignatureInvalid, Err: err}
}

// Fault builds a KindFault result.
func Fault(err error) Result {
	return Result{Kind: KindFault, Err: err}
}
