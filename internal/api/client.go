package api

import (
	"brawlstats-sync/internal/config"
	"brawlstats-sync/internal/constants"
	"brawlstats-sync/internal/dto"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	EndpointBrawlers       = "/brawlers"
	EndpointBrawler        = "/brawlers/{brawler_id}"
	EndpointEventsRotation = "/events/rotation"
	EndpointClub           = "/clubs/{club_tag}"
	EndpointPlayer         = "/players/{player_tag}"
)

type Client struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
	logger  zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BrawlAPIBaseURL, "/"),
		apiKey:  cfg.BrawlAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.APIMaxConnsPerHost,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger.With().Str("component", "api").Logger(),
	}
}

func (c *Client) GetBrawler(ctx context.Context, extID int64) (dto.BrawlerDTO, error) {
	uri := c.uri(EndpointBrawler, map[string]string{"brawler_id": strconv.FormatInt(extID, 10)})
	return doRequest(ctx, c, uri, func(body any) (dto.BrawlerDTO, error) {
		return dto.BrawlerFromRecord(dto.ObjectFromResponse(body))
	})
}

func (c *Client) GetBrawlers(ctx context.Context) ([]dto.BrawlerDTO, error) {
	return doRequest(ctx, c, c.uri(EndpointBrawlers, nil), func(body any) ([]dto.BrawlerDTO, error) {
		items, err := dto.ListFromResponse("brawler", body)
		if err != nil {
			return nil, err
		}
		return dto.BrawlersFromList(items)
	})
}

func (c *Client) GetEventsRotation(ctx context.Context) ([]dto.EventRotationDTO, error) {
	return doRequest(ctx, c, c.uri(EndpointEventsRotation, nil), func(body any) ([]dto.EventRotationDTO, error) {
		items, err := dto.ListFromResponse("event rotation", body)
		if err != nil {
			return nil, err
		}
		return dto.EventRotationsFromList(items)
	})
}

func (c *Client) GetClub(ctx context.Context, tag string) (dto.ClubDTO, error) {
	uri := c.uri(EndpointClub, map[string]string{"club_tag": tag})
	return doRequest(ctx, c, uri, func(body any) (dto.ClubDTO, error) {
		return dto.ClubFromRecord(dto.ObjectFromResponse(body))
	})
}

func (c *Client) GetPlayer(ctx context.Context, tag string) (dto.PlayerDTO, error) {
	uri := c.uri(EndpointPlayer, map[string]string{"player_tag": tag})
	return doRequest(ctx, c, uri, func(body any) (dto.PlayerDTO, error) {
		return dto.PlayerFromRecord(dto.ObjectFromResponse(body))
	})
}

// uri fills the {name} placeholders of an endpoint template. Values are path
// escaped, so a tag like #2PP becomes %232PP.
func (c *Client) uri(endpoint string, params map[string]string) string {
	path := endpoint
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	return c.baseURL + path
}

func doRequest[T any](ctx context.Context, c *Client, uri string, build func(body any) (T, error)) (T, error) {
	var zero T

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return zero, c.fail(uri, &ResponseError{
			URI:     uri,
			Message: "API request failed",
			Code:    http.StatusInternalServerError,
			Err:     err,
		})
	}

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return zero, c.fail(uri, &ResponseError{
			URI:     uri,
			Message: "API request failed",
			Code:    http.StatusInternalServerError,
			Status:  status,
			Err:     fmt.Errorf("unexpected status %d", status),
		})
	}

	body, err := decodeBody(resp.Body())
	if err != nil {
		return zero, c.fail(uri, &ResponseError{
			URI:     uri,
			Message: InvalidJSONMessage,
			Code:    http.StatusBadRequest,
			Err:     err,
		})
	}

	result, err := build(body)
	if err != nil {
		return zero, c.fail(uri, err)
	}
	return result, nil
}

// decodeBody reads exactly one JSON value. Anything but whitespace after it
// makes the whole body invalid.
func decodeBody(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) fail(uri string, err error) error {
	c.logger.Error().Err(err).Str("uri", uri).Msg("upstream request failed")
	return err
}
