package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	derr "github.com/ozzus/brackets/internal/domain/errors"
	"github.com/ozzus/brackets/internal/domain/ports"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/dto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultResourceTimeout = 60 * time.Second

	tracerName = "github.com/ozzus/brackets/client"
)

// StaticBaseURL is a fixed ports.BaseURLProvider.
type StaticBaseURL string

func (s StaticBaseURL) BaseURL() string {
	return string(s)
}

type Client struct {
	log        *zap.Logger
	baseURL    ports.BaseURLProvider
	httpClient *http.Client
	tracer     trace.Tracer
}

func NewClient(log *zap.Logger, baseURL ports.BaseURLProvider, httpClient *http.Client) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultRequestTimeout, DefaultResourceTimeout)
	}

	return &Client{
		log:        log,
		baseURL:    baseURL,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}
}

// NewHTTPClient bounds connection setup and time to first byte by
// requestTimeout, and the whole exchange by resourceTimeout.
func NewHTTPClient(requestTimeout, resourceTimeout time.Duration) *http.Client {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	if resourceTimeout <= 0 {
		resourceTimeout = DefaultResourceTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   requestTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = requestTimeout
	transport.ResponseHeaderTimeout = requestTimeout

	return &http.Client{
		Timeout:   resourceTimeout,
		Transport: transport,
	}
}

// BaseURL returns the provider's current value with no trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.baseURL.BaseURL()), "/")
}

func (c *Client) GetTournaments(ctx context.Context) ([]dto.Tournament, error) {
	return fetch(ctx, c, "GetTournaments", "/tournaments.json", dto.UnmarshalTournaments)
}

func (c *Client) GetGamesResponse(ctx context.Context, tournamentID int64) (dto.GamesResponse, error) {
	return fetch(ctx, c, "GetGamesResponse", fmt.Sprintf("/tournaments/%d/games.json", tournamentID), dto.UnmarshalGamesResponse)
}

func (c *Client) GetGames(ctx context.Context, tournamentID int64) ([]dto.Game, error) {
	return fetch(ctx, c, "GetGames", fmt.Sprintf("/tournaments/%d/games.json", tournamentID), dto.UnmarshalGames)
}

func (c *Client) GetStandings(ctx context.Context, tournamentID int64) ([]dto.TeamStanding, error) {
	return fetch(ctx, c, "GetStandings", fmt.Sprintf("/tournaments/%d/standings.json", tournamentID), dto.UnmarshalStandings)
}

func (c *Client) GetTopStats(ctx context.Context, tournamentID int64) ([]dto.StatCategory, error) {
	return fetch(ctx, c, "GetTopStats", fmt.Sprintf("/tournaments/%d/top_stats.json", tournamentID), dto.UnmarshalTopStats)
}

func (c *Client) GetGameDetail(ctx context.Context, tournamentID, gameID int64) (dto.GameDetailResponse, error) {
	return fetch(ctx, c, "GetGameDetail", fmt.Sprintf("/tournaments/%d/games/%d.json", tournamentID, gameID), dto.UnmarshalGameDetail)
}

func (c *Client) GetPlayerSeason(ctx context.Context, playerSeasonID int64) (dto.PlayerSeasonDetailResponse, error) {
	return fetch(ctx, c, "GetPlayerSeason", fmt.Sprintf("/player_seasons/%d.json", playerSeasonID), dto.UnmarshalPlayerSeason)
}

func (c *Client) GetTeamSeason(ctx context.Context, teamSeasonID int64) (dto.TeamSeasonResponse, error) {
	return fetch(ctx, c, "GetTeamSeason", fmt.Sprintf("/team_seasons/%d.json", teamSeasonID), dto.UnmarshalTeamSeason)
}

// fetch issues one GET and hands the body to decode. Decoder errors are
// returned as is.
func fetch[T any](ctx context.Context, c *Client, op, path string, decode func([]byte) (T, error)) (T, error) {
	var zero T

	ctx, span := c.tracer.Start(ctx, "brackets."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	body, err := c.get(ctx, op, path, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}

	out, err := decode(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Debug("decode failed", zap.String("op", op), zap.Error(err))
		return zero, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string, span trace.Span) ([]byte, error) {
	reqURL, err := c.buildURL(path)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("http.url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", derr.ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &derr.NetworkError{Op: http.MethodGet, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("backend response",
		zap.String("op", op),
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &derr.ResponseError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &derr.NetworkError{Op: "read body", URL: reqURL, Err: err}
	}
	return body, nil
}

func (c *Client) buildURL(path string) (string, error) {
	base := c.BaseURL()
	u, err := url.Parse(base + "/api" + path)
	if err != nil {
		return "", fmt.Errorf("%w: parse base url %q: %v", derr.ErrInvalidURL, base, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: base url %q is not an absolute http(s) url", derr.ErrInvalidURL, base)
	}
	return u.String(), nil
}
