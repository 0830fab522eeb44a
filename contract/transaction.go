package contract

import (
	"fmt"
	"strings"
)

// Argument encodings accepted by contract entry points.
const (
	ArgObject       = "object"
	ArgString       = "string"
	ArgU64          = "u64"
	ArgStringVector = "vector<string>"
)

// CallArg is a single argument to a Move call, tagged with its primitive
// encoding. Exactly one of the value fields is meaningful, per Kind.
type CallArg struct {
	Kind     string
	ObjectID string
	Str      string
	U64      uint64
	StrVec   []string
}

func ObjectArg(id string) CallArg {
	return CallArg{Kind: ArgObject, ObjectID: id}
}

func PureString(s string) CallArg {
	return CallArg{Kind: ArgString, Str: s}
}

func PureU64(n uint64) CallArg {
	return CallArg{Kind: ArgU64, U64: n}
}

func PureStringVector(v []string) CallArg {
	return CallArg{Kind: ArgStringVector, StrVec: v}
}

// MoveCall names a contract entry point and its ordered arguments. Target is
// the full "package::module::function" path.
type MoveCall struct {
	Target string
	Args   []CallArg
}

// Package returns the package object id component of the target.
func (mc *MoveCall) Package() string {
	return mc.targetPart(0)
}

// Module returns the module name component of the target.
func (mc *MoveCall) Module() string {
	return mc.targetPart(1)
}

// Function returns the entry point name component of the target.
func (mc *MoveCall) Function() string {
	return mc.targetPart(2)
}

func (mc *MoveCall) targetPart(i int) string {
	parts := strings.SplitN(mc.Target, "::", 3)
	if len(parts) != 3 {
		return ""
	}
	return parts[i]
}

// Transaction is an unsigned, unserialized transaction intent: a single Move
// call, plus the sender once bound. It is consumed exactly once by the
// sponsored execution pipeline and never persisted.
type Transaction struct {
	Sender string
	Call   MoveCall
}

// SetSender binds the transaction to the address that will sign it. A
// transaction with no sender cannot be serialized.
func (tx *Transaction) SetSender(addr string) {
	tx.Sender = addr
}

// Validate checks structural requirements before serialization: a bound
// sender and a well-formed entry point target.
func (tx *Transaction) Validate() error {
	if tx.Sender == "" {
		return fmt.Errorf("transaction has no sender bound")
	}
	if tx.Call.Package() == "" || tx.Call.Module() == "" || tx.Call.Function() == "" {
		return fmt.Errorf("malformed move call target: %q", tx.Call.Target)
	}
	return nil
}
