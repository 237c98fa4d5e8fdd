package api

import (
	"brawlstats-sync/internal/config"
	"brawlstats-sync/internal/dto"
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type capturedRequest struct {
	path   string
	auth   string
	accept string
}

// newTestClient serves handler on an in-memory listener and points a Client at it.
func newTestClient(t *testing.T, status int, body string) (*Client, func() capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var last capturedRequest

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			mu.Lock()
			last = capturedRequest{
				path:   string(ctx.Request.URI().PathOriginal()),
				auth:   string(ctx.Request.Header.Peek("Authorization")),
				accept: string(ctx.Request.Header.Peek("Accept")),
			}
			mu.Unlock()

			ctx.SetStatusCode(status)
			ctx.SetContentType("application/json")
			ctx.SetBodyString(body)
		},
	}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	c := NewClient(&config.Config{
		BrawlAPIKey:     "secret",
		BrawlAPIBaseURL: "http://api.test/v1/",
	}, zerolog.Nop())
	c.client.Dial = func(addr string) (net.Conn, error) {
		return ln.Dial()
	}

	return c, func() capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func TestGetBrawler(t *testing.T) {
	body := `{"id":16000000,"name":"SHELLY","gadgets":[{"id":1,"name":"Shell Shock"}],"starPowers":[{"id":2,"name":"Shell Shock"}]}`
	c, last := newTestClient(t, http.StatusOK, body)

	got, err := c.GetBrawler(context.Background(), 16000000)
	require.NoError(t, err)

	assert.Equal(t, dto.BrawlerDTO{
		ExtID:       16000000,
		Name:        "SHELLY",
		Accessories: []dto.AccessoryDTO{{ExtID: 1, Name: "Shell Shock"}},
		StarPowers:  []dto.StarPowerDTO{{ExtID: 2, Name: "Shell Shock"}},
	}, got)

	req := last()
	assert.Equal(t, "/v1/brawlers/16000000", req.path)
	assert.Equal(t, "Bearer secret", req.auth)
	assert.Equal(t, "application/json", req.accept)
}

func TestGetBrawlers(t *testing.T) {
	body := `{"items":[
		{"id":16000000,"name":"SHELLY","gadgets":[],"starPowers":[]},
		{"id":16000001,"name":"COLT","gadgets":[],"starPowers":[]}
	],"paging":{"cursors":{}}}`
	c, last := newTestClient(t, http.StatusOK, body)

	got, err := c.GetBrawlers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "COLT", got[1].Name)
	assert.Equal(t, "/v1/brawlers", last().path)
}

func TestGetEventsRotation(t *testing.T) {
	body := `[{"startTime":"20251225T133000.000Z","endTime":"20251226T133000.000Z","slotId":1,
		"event":{"id":15000005,"mode":"gemGrab","map":"Hard Rock Mine"}}]`
	c, _ := newTestClient(t, http.StatusOK, body)

	got, err := c.GetEventsRotation(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(15000005), got[0].Event.ExtID)
	assert.Equal(t, time.Date(2025, 12, 25, 13, 30, 0, 0, time.UTC), got[0].StartTime)
}

func TestGetClubEscapesTag(t *testing.T) {
	body := `{"tag":"#777","name":"Lucky","description":"d","type":"casual","badgeId":1,"requiredTrophies":0,"trophies":5,
		"members":[{"tag":"#P1","name":"p","nameColor":"0xff","role":"president","trophies":1,"icon":{"id":2}}]}`
	c, last := newTestClient(t, http.StatusOK, body)

	got, err := c.GetClub(context.Background(), "#777")
	require.NoError(t, err)
	assert.Equal(t, "#777", got.Tag)
	require.Len(t, got.Members, 1)
	assert.Equal(t, "/v1/clubs/%23777", last().path)
}

func TestGetPlayer(t *testing.T) {
	body := `{"tag":"#2PP","name":"Frank","nameColor":"0xff","icon":{"id":28000000},"trophies":100,"club":{}}`
	c, last := newTestClient(t, http.StatusOK, body)

	got, err := c.GetPlayer(context.Background(), "#2PP")
	require.NoError(t, err)
	assert.Equal(t, "Frank", got.Name)
	assert.Nil(t, got.Club)
	assert.Nil(t, got.Brawlers)
	assert.Equal(t, "/v1/players/%232PP", last().path)
}

func TestRequestFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   int
		wantStatus int
	}{
		{"not found", http.StatusNotFound, `{"reason":"notFound"}`, http.StatusInternalServerError, http.StatusNotFound},
		{"server error", http.StatusServiceUnavailable, `{}`, http.StatusInternalServerError, http.StatusServiceUnavailable},
		{"invalid json", http.StatusOK, `<html>maintenance</html>`, http.StatusBadRequest, 0},
		{"empty body", http.StatusOK, ``, http.StatusBadRequest, 0},
		{"trailing garbage", http.StatusOK, `{"id":1,"name":"X","gadgets":[],"starPowers":[]} not json at all`, http.StatusBadRequest, 0},
		{"two values", http.StatusOK, `{"id":1,"name":"X","gadgets":[],"starPowers":[]} {}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.status, tt.body)

			_, err := c.GetBrawler(context.Background(), 1)
			require.ErrorIs(t, err, ErrResponse)
			assert.NotErrorIs(t, err, dto.ErrInvalidDTO)

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.wantCode, respErr.Code)
			assert.Equal(t, tt.wantStatus, respErr.Status)
			assert.Equal(t, "http://api.test/v1/brawlers/1", respErr.URI)
			if tt.wantCode == http.StatusBadRequest {
				assert.Equal(t, InvalidJSONMessage, respErr.Message)
			}
		})
	}
}

func TestTrailingWhitespaceAccepted(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, "{\"id\":1,\"name\":\"X\",\"gadgets\":[],\"starPowers\":[]}\n\t ")

	b, err := c.GetBrawler(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ExtID)
}

func TestMalformedShapeIsValidationError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"invalid":"data"}`)

	_, err := c.GetBrawler(context.Background(), 16000000)
	require.ErrorIs(t, err, dto.ErrInvalidDTO)
	assert.NotErrorIs(t, err, ErrResponse)
}

func TestListEnvelopeMissingItems(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"paging":{}}`)

	_, err := c.GetBrawlers(context.Background())
	require.ErrorIs(t, err, dto.ErrInvalidDTO)
}

func TestTransportFailure(t *testing.T) {
	c := NewClient(&config.Config{BrawlAPIKey: "k", BrawlAPIBaseURL: "http://api.test/v1"}, zerolog.Nop())
	c.client.Dial = func(addr string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	}

	_, err := c.GetBrawlers(context.Background())

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusInternalServerError, respErr.Code)
	assert.Equal(t, 0, respErr.Status)
}
