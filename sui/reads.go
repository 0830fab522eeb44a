package sui

import (
	"context"
	"encoding/json"
	"errors"
)

// ObjectData is the decoded portion of an on-ledger object this layer cares
// about: identity, type, owner, and the raw Move field bag. Typed decoding of
// the field bag happens per entity in the appview package.
type ObjectData struct {
	ObjectID string
	Type     string
	Owner    string
	Fields   map[string]any
}

// wire shapes for sui_getObject / suix_getDynamicFieldObject results
type objectResult struct {
	Data  *objectWire      `json:"data"`
	Error *objectReadError `json:"error"`
}

type objectWire struct {
	ObjectID string          `json:"objectId"`
	Type     string          `json:"type"`
	Owner    json.RawMessage `json:"owner"`
	Content  *objectContent  `json:"content"`
}

type objectContent struct {
	DataType string         `json:"dataType"`
	Type     string         `json:"type"`
	Fields   map[string]any `json:"fields"`
}

type objectReadError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
}

var readOptions = map[string]bool{
	"showContent": true,
	"showType":    true,
	"showOwner":   true,
}

func (w *objectWire) toObjectData() *ObjectData {
	od := &ObjectData{
		ObjectID: w.ObjectID,
		Type:     w.Type,
	}
	// owner is a tagged union on the wire; only address ownership matters here
	var addrOwner struct {
		AddressOwner string `json:"AddressOwner"`
	}
	if len(w.Owner) > 0 {
		_ = json.Unmarshal(w.Owner, &addrOwner)
		od.Owner = addrOwner.AddressOwner
	}
	if w.Content != nil && w.Content.DataType == "moveObject" {
		od.Fields = w.Content.Fields
		if od.Type == "" {
			od.Type = w.Content.Type
		}
	}
	return od
}

// GetObject fetches a single object by id. A deleted or never-existing object
// returns (nil, nil); only transport and protocol failures return an error.
func (c *Client) GetObject(ctx context.Context, objectID string) (*ObjectData, error) {
	var res objectResult
	err := c.rpcCall(ctx, "sui_getObject", []any{objectID, readOptions}, &res)
	if err != nil {
		return nil, err
	}
	if res.Error != nil || res.Data == nil {
		return nil, nil
	}
	return res.Data.toObjectData(), nil
}

// GetOwnedObjects fetches all objects owned by an address, optionally
// filtered to a single Move struct type. Paginates until exhausted.
func (c *Client) GetOwnedObjects(ctx context.Context, owner string, structType string) ([]*ObjectData, error) {
	type page struct {
		Data []struct {
			Data *objectWire `json:"data"`
		} `json:"data"`
		HasNextPage bool    `json:"hasNextPage"`
		NextCursor  *string `json:"nextCursor"`
	}

	query := map[string]any{
		"options": readOptions,
	}
	if structType != "" {
		query["filter"] = map[string]string{"StructType": structType}
	}

	var out []*ObjectData
	var cursor *string
	for {
		var p page
		if err := c.rpcCall(ctx, "suix_getOwnedObjects", []any{owner, query, cursor, nil}, &p); err != nil {
			return nil, err
		}
		for _, item := range p.Data {
			if item.Data == nil {
				continue
			}
			out = append(out, item.Data.toObjectData())
		}
		if !p.HasNextPage || p.NextCursor == nil {
			return out, nil
		}
		cursor = p.NextCursor
	}
}

// GetDynamicFieldObject fetches the dynamic field attached to parentID under
// the given key. The key type is the Move type of the field name, eg "u64"
// for the integer-indexed collection entries. A missing field returns
// (nil, nil).
func (c *Client) GetDynamicFieldObject(ctx context.Context, parentID, name, nameType string) (*ObjectData, error) {
	fieldName := map[string]any{
		"type":  nameType,
		"value": name,
	}
	var res objectResult
	err := c.rpcCall(ctx, "suix_getDynamicFieldObject", []any{parentID, fieldName}, &res)
	if err != nil {
		// some fullnode versions report a missing field as an RPC error
		// rather than a result-level error code
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return nil, nil
		}
		return nil, err
	}
	if res.Error != nil || res.Data == nil {
		return nil, nil
	}
	return res.Data.toObjectData(), nil
}
