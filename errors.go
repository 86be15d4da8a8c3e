package cow

import "errors"

var (
	// ErrInvalidConfig signals an unparsable debug configuration.
	ErrInvalidConfig = errors.New("cow: invalid configuration")
	// ErrBrokenStructure is reported by structural checkers when an invariant
	// of a data structure does not hold.
	ErrBrokenStructure = errors.New("cow: broken structure")
)

// ContractError is the panic value for violations of an API contract, such as
// using a position index out of range or against a structure it was not
// derived from. Contract violations indicate programming errors and are not
// meant to be recovered from, except by tests.
type ContractError string

func (e ContractError) Error() string {
	return string(e)
}

// Assert panics with a ContractError carrying msg if condition does not hold.
func Assert(condition bool, msg string) {
	if !condition {
		panic(ContractError(msg))
	}
}
