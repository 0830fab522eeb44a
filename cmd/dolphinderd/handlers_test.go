package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphinder-social/dolphinder/appview"
	"github.com/dolphinder-social/dolphinder/sui"
)

const testPackageID = "0xabc"

type fakeLedger struct {
	owned  map[string][]*sui.ObjectData
	fields map[string]*sui.ObjectData
}

func (f *fakeLedger) GetObject(ctx context.Context, objectID string) (*sui.ObjectData, error) {
	return f.fields[objectID], nil
}

func (f *fakeLedger) GetOwnedObjects(ctx context.Context, owner string, structType string) ([]*sui.ObjectData, error) {
	return f.owned[owner+"/"+structType], nil
}

func (f *fakeLedger) GetDynamicFieldObject(ctx context.Context, parentID, name, nameType string) (*sui.ObjectData, error) {
	return f.fields[parentID+"/"+name], nil
}

func testProfileObject(id, owner string) *sui.ObjectData {
	return &sui.ObjectData{
		ObjectID: id,
		Type:     testPackageID + "::dolphinders::Profile",
		Owner:    owner,
		Fields: map[string]any{
			"owner":             owner,
			"name":              "Ada",
			"bio":               "systems",
			"avatar_url":        "",
			"banner_url":        "",
			"is_verified":       false,
			"created_at":        "1700000000000",
			"experience_count":  "0",
			"education_count":   "0",
			"certificate_count": "0",
		},
	}
}

func testServer(t *testing.T, ledger appview.Ledger) *echo.Echo {
	t.Helper()

	loader := appview.NewLoader(ledger, testPackageID)
	view := appview.NewCache(loader, 16, time.Minute)

	e := echo.New()
	srv := &Server{
		echo:           e,
		view:           view,
		logger:         slog.Default(),
		requestTimeout: 5 * time.Second,
	}
	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/api/profile/:address", srv.HandleGetProfile)
	e.GET("/api/profile/:address/experience", srv.HandleGetExperience)
	e.GET("/api/post/:id", srv.HandleGetPost)
	return e
}

func TestHandleHealthCheck(t *testing.T) {
	assert := assert.New(t)

	e := testServer(t, &fakeLedger{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/_health", nil))
	assert.Equal(http.StatusOK, rec.Code)
}

func TestHandleGetProfile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	owner := "0xa11ce"
	ledger := &fakeLedger{
		owned: map[string][]*sui.ObjectData{
			owner + "/" + testPackageID + "::dolphinders::Profile": {
				testProfileObject("0xp1", owner),
			},
		},
	}
	e := testServer(t, ledger)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/api/profile/"+owner, nil))
	require.Equal(http.StatusOK, rec.Code)

	var profile appview.Profile
	require.NoError(json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal("0xp1", profile.ID)
	assert.Equal("Ada", profile.Name)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/api/profile/0xnobody", nil))
	assert.Equal(http.StatusNotFound, rec.Code)
}

func TestHandleGetExperienceEmpty(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	owner := "0xa11ce"
	ledger := &fakeLedger{
		owned: map[string][]*sui.ObjectData{
			owner + "/" + testPackageID + "::dolphinders::Profile": {
				testProfileObject("0xp1", owner),
			},
		},
	}
	e := testServer(t, ledger)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/api/profile/"+owner+"/experience", nil))
	require.Equal(http.StatusOK, rec.Code)

	var entries []*appview.Experience
	require.NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Empty(entries)
}

func TestHandleGetPostNotFound(t *testing.T) {
	assert := assert.New(t)

	e := testServer(t, &fakeLedger{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/api/post/0xmissing", nil))
	assert.Equal(http.StatusNotFound, rec.Code)
}
