package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fitcomp/fitcomp/internal/competitions"
	"github.com/fitcomp/fitcomp/internal/goals"
	"github.com/fitcomp/fitcomp/internal/telemetry/metrics"
	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/users"
	"github.com/fitcomp/fitcomp/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour = 60 * 60

	workoutsCacheExpire = 12 * oneHour
	userCacheExpire     = 12 * oneHour
	goalsCacheExpire    = 12 * oneHour
	statsCacheExpire    = 3 * oneHour
)

var ErrNotFound = errors.New("not found")

// Client talks to the product backend API and caches its responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	metrics    *metrics.Manager
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	megabyte := 1024 * 1024
	cacheSize := 50 * megabyte

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
		metrics:    metricsManager,
	}
}

func (c *Client) Workouts(ctx context.Context, userID int) (ws []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.workouts")
	defer tracing.EndSpanWithErrCheck(span, err)

	cacheKey := fmt.Sprintf("workouts::%d", userID)
	var payloads []workoutPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/workouts/?user=%d", userID), cacheKey, workoutsCacheExpire, &payloads); err != nil {
		return nil, err
	}

	ws = make([]workouts.Workout, 0, len(payloads))
	for _, p := range payloads {
		ws = append(ws, p.toWorkout())
	}
	return ws, nil
}

func (c *Client) User(ctx context.Context, userID int) (user *users.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.user")
	defer tracing.EndSpanWithErrCheck(span, err)

	cacheKey := fmt.Sprintf("user::%d", userID)
	user = &users.User{}
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/", userID), cacheKey, userCacheExpire, user); err != nil {
		return nil, err
	}

	user.ApplyDefaults()
	return user, nil
}

func (c *Client) Goals(ctx context.Context, competitionID int) (gs []goals.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.goals")
	defer tracing.EndSpanWithErrCheck(span, err)

	cacheKey := fmt.Sprintf("goals::%d", competitionID)
	if err := c.getJSON(ctx, fmt.Sprintf("/goals/?competition=%d", competitionID), cacheKey, goalsCacheExpire, &gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func (c *Client) Stats(ctx context.Context, competitionID int) (stats *competitions.Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.stats")
	defer tracing.EndSpanWithErrCheck(span, err)

	cacheKey := fmt.Sprintf("stats::%d", competitionID)
	stats = &competitions.Stats{}
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d/stats/", competitionID), cacheKey, statsCacheExpire, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) Feed(ctx context.Context, competitionID int) (feed []competitions.FeedEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.feed")
	defer tracing.EndSpanWithErrCheck(span, err)

	cacheKey := fmt.Sprintf("feed::%d", competitionID)
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d/feed/", competitionID), cacheKey, statsCacheExpire, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// UpdateScalingFactors persists the equalization results to the user profile.
// Only the two scaling factors are ever sent, biometrics stay on the client.
func (c *Client) UpdateScalingFactors(ctx context.Context, userID int, factors ScalingFactors) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remoteClient.updateScalingFactors")
	defer tracing.EndSpanWithErrCheck(span, err)

	payload, err := json.Marshal(factors)
	if err != nil {
		return fmt.Errorf("marshal scaling factors: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPatch,
		fmt.Sprintf("%s/users/%d/", c.baseURL, userID),
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("update scaling factors: unexpected status %d", resp.StatusCode)
	}

	// the cached profile is now stale
	c.cache.Del([]byte(fmt.Sprintf("user::%d", userID)))

	return nil
}

// InvalidateWorkouts drops the cached workout list for the user, used after
// a fresh sync run.
func (c *Client) InvalidateWorkouts(userID int) {
	c.cache.Del([]byte(fmt.Sprintf("workouts::%d", userID)))
}

func (c *Client) getJSON(ctx context.Context, path, cacheKey string, cacheExpire int, dest any) error {
	if cached, err := c.cache.Get([]byte(cacheKey)); err == nil {
		if err = json.Unmarshal(cached, dest); err == nil {
			log.Tracef("remote client: %s served from cache", cacheKey)
			if c.metrics != nil {
				c.metrics.CounterCacheHits.Inc()
			}
			return nil
		}
		log.Errorf("remote client: unmarshal cached %s: %s", cacheKey, err)
	}
	if c.metrics != nil {
		c.metrics.CounterCacheMisses.Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}

	if err := c.cache.Set([]byte(cacheKey), respBytes, cacheExpire); err != nil {
		log.Errorf("remote client: write cache for %s: %s", cacheKey, err)
	}

	return nil
}
