package sui

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/dolphinder-social/dolphinder/contract"
)

// DefaultGasBudget is passed to unsafe_moveCall when serializing. The sponsor
// relay re-budgets before submission, so this only needs to clear the node's
// dry-run checks.
const DefaultGasBudget = "10000000"

// BuildMoveCall serializes a bound transaction intent into BCS transaction
// bytes via the fullnode's unsafe_moveCall endpoint. The node resolves object
// versions and gas parameters server-side, so this fails if the node is
// unreachable or a referenced object does not exist or is stale.
func (c *Client) BuildMoveCall(ctx context.Context, tx *contract.Transaction) ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	args := make([]any, len(tx.Call.Args))
	for i, a := range tx.Call.Args {
		switch a.Kind {
		case contract.ArgObject:
			args[i] = a.ObjectID
		case contract.ArgString:
			args[i] = a.Str
		case contract.ArgU64:
			// u64 travels as a decimal string on the RPC wire
			args[i] = strconv.FormatUint(a.U64, 10)
		case contract.ArgStringVector:
			args[i] = a.StrVec
		default:
			return nil, fmt.Errorf("unsupported call argument kind: %q", a.Kind)
		}
	}

	params := []any{
		tx.Sender,
		tx.Call.Package(),
		tx.Call.Module(),
		tx.Call.Function(),
		[]string{}, // no type arguments in the contract interface
		args,
		nil, // let the node pick a gas object
		DefaultGasBudget,
	}

	var res struct {
		TxBytes string `json:"txBytes"`
	}
	if err := c.rpcCall(ctx, "unsafe_moveCall", params, &res); err != nil {
		return nil, fmt.Errorf("serializing transaction: %w", err)
	}
	if res.TxBytes == "" {
		return nil, fmt.Errorf("%w: node returned no transaction bytes", ErrRequestFailed)
	}

	raw, err := base64.StdEncoding.DecodeString(res.TxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding transaction bytes: %w", ErrRequestFailed, err)
	}
	return raw, nil
}
