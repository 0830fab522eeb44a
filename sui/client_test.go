package sui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphinder-social/dolphinder/contract"
)

func rpcResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"result":  result,
	})
	require.NoError(t, err)
}

func decodeRPC(t *testing.T, r *http.Request) (string, []any) {
	t.Helper()
	var req struct {
		Method string `json:"method"`
		Params []any  `json:"params"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req.Method, req.Params
}

func TestGetObject(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, params := decodeRPC(t, r)
		require.Equal("sui_getObject", method)
		switch params[0].(string) {
		case "0xaaa":
			rpcResult(t, w, map[string]any{
				"data": map[string]any{
					"objectId": "0xaaa",
					"type":     "0xpkg::dolphinders::Profile",
					"owner":    map[string]any{"AddressOwner": "0xowner"},
					"content": map[string]any{
						"dataType": "moveObject",
						"fields":   map[string]any{"name": "Ann"},
					},
				},
			})
		default:
			rpcResult(t, w, map[string]any{
				"error": map[string]any{"code": "notExists", "object_id": params[0]},
			})
		}
	}))
	defer srv.Close()

	c := &Client{Host: srv.URL}

	obj, err := c.GetObject(ctx, "0xaaa")
	require.NoError(err)
	require.NotNil(obj)
	assert.Equal("0xaaa", obj.ObjectID)
	assert.Equal("0xowner", obj.Owner)
	assert.Equal("Ann", obj.Fields["name"])

	// not-found is a nil result, not an error
	missing, err := c.GetObject(ctx, "0xbbb")
	assert.NoError(err)
	assert.Nil(missing)
}

func TestGetDynamicFieldObjectMissing(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32000, "message": "dynamic field not found"},
		})
	}))
	defer srv.Close()

	c := &Client{Host: srv.URL}
	obj, err := c.GetDynamicFieldObject(context.Background(), "0xparent", "3", "u64")
	assert.NoError(err)
	assert.Nil(obj)
}

func TestGetOwnedObjectsPagination(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, params := decodeRPC(t, r)
		require.Equal("suix_getOwnedObjects", method)
		require.Equal("0xowner", params[0].(string))
		calls++
		if calls == 1 {
			rpcResult(t, w, map[string]any{
				"data": []any{
					map[string]any{"data": map[string]any{"objectId": "0x1"}},
				},
				"hasNextPage": true,
				"nextCursor":  "cursor-1",
			})
			return
		}
		require.Equal("cursor-1", params[2].(string))
		rpcResult(t, w, map[string]any{
			"data": []any{
				map[string]any{"data": map[string]any{"objectId": "0x2"}},
			},
			"hasNextPage": false,
		})
	}))
	defer srv.Close()

	c := &Client{Host: srv.URL}
	objs, err := c.GetOwnedObjects(context.Background(), "0xowner", "0xpkg::dolphinders::Profile")
	require.NoError(err)
	require.Len(objs, 2)
	assert.Equal("0x1", objs[0].ObjectID)
	assert.Equal("0x2", objs[1].ObjectID)
	assert.Equal(2, calls)
}

func TestBuildMoveCall(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	txBytes := []byte("serialized-tx")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, params := decodeRPC(t, r)
		require.Equal("unsafe_moveCall", method)
		assert.Equal("0xsender", params[0])
		assert.Equal("0xpkg", params[1])
		assert.Equal("dolphinders", params[2])
		assert.Equal("add_skill", params[3])
		args := params[5].([]any)
		require.Len(args, 2)
		assert.Equal("0xprofile", args[0])
		assert.Equal("Go", args[1])
		rpcResult(t, w, map[string]any{
			"txBytes": base64.StdEncoding.EncodeToString(txBytes),
		})
	}))
	defer srv.Close()

	b := contract.NewBuilder(contract.Config{PackageID: "0xpkg", RegistryID: "0xreg"})
	tx := b.AddSkill("0xprofile", "Go")
	tx.SetSender("0xsender")

	c := &Client{Host: srv.URL}
	got, err := c.BuildMoveCall(context.Background(), tx)
	require.NoError(err)
	assert.Equal(txBytes, got)
}

func TestBuildMoveCallRequiresSender(t *testing.T) {
	b := contract.NewBuilder(contract.TestnetConfig())
	tx := b.AddSkill("0xprofile", "Go")

	c := &Client{Host: "http://127.0.0.1:0"}
	_, err := c.BuildMoveCall(context.Background(), tx)
	assert.Error(t, err)
}

func TestU64WireEncoding(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, params := decodeRPC(t, r)
		args := params[5].([]any)
		// u64 must travel as a decimal string, not a JSON number
		require.Equal("9007199254740993", args[1])
		rpcResult(t, w, map[string]any{
			"txBytes": base64.StdEncoding.EncodeToString([]byte("x")),
		})
	}))
	defer srv.Close()

	b := contract.NewBuilder(contract.Config{PackageID: "0xpkg", RegistryID: "0xreg"})
	tx := b.RemoveSkill("0xprofile", 9007199254740993)
	tx.SetSender("0xsender")

	c := &Client{Host: srv.URL}
	_, err := c.BuildMoveCall(context.Background(), tx)
	require.NoError(err)
}
