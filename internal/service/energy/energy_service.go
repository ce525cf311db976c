package energy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/domain/dto"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/ougirez/energy-dashboard/internal/pkg/metrics"
)

const (
	dataPath     = "/energy/data"
	maxBodyBytes = 32 << 20
)

type Config struct {
	APIURL        string
	Timeout       time.Duration
	Retries       uint64
	RetryInterval time.Duration
}

type Result struct {
	Dataset  *domain.EnergyDataset
	Advisory *domain.Advisory
	// Cause is the recovered failure when Dataset is the synthetic fallback.
	Cause *FetchError
}

type Service struct {
	cfg     Config
	client  *http.Client
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) { s.client = client }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: cfg.Timeout}
	}
	return s
}

// FetchDataset resolves the dataset from the backend, falling back to the
// synthetic series on transport or status failures. A payload without the
// required columns is returned as a *FetchError of KindMissingField.
func (s *Service) FetchDataset(ctx context.Context) (*Result, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	body, err := s.fetch(ctx)
	s.observeDuration(time.Since(start))
	if err != nil {
		return s.fallback(ctx, err)
	}

	dataset, err := decodeDataset(body)
	if err != nil {
		return s.fallback(ctx, err)
	}

	logger.Debugf(ctx, "loaded %d samples from backend", dataset.Len())
	s.count(metrics.OutcomeBackend)
	return &Result{Dataset: dataset}, nil
}

func (s *Service) fallback(ctx context.Context, err error) (*Result, error) {
	var fe *FetchError
	if !errors.As(err, &fe) {
		fe = &FetchError{Kind: KindTransport, Err: err}
	}

	if !fe.Recoverable() {
		logger.Errorf(ctx, "energy data rejected: %s", fe.Error())
		s.count(metrics.OutcomeMissingField)
		return nil, fe
	}

	advisory := fe.Advisory()
	logger.Warnf(ctx, "%s (%s)", advisory.Message, fe.Error())
	s.count(string(advisory.Kind))

	return &Result{
		Dataset:  GenerateSyntheticDataset(),
		Advisory: advisory,
		Cause:    fe,
	}, nil
}

func (s *Service) fetch(ctx context.Context) ([]byte, error) {
	url := s.cfg.APIURL + dataPath

	var body []byte
	err := backoff.Retry(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return backoff.Permanent(&FetchError{Kind: KindTransport, Err: fmt.Errorf("http.NewRequest: %w", err)})
			}
			req.Header.Set("Accept", "application/json")

			resp, err := s.client.Do(req)
			if err != nil {
				return &FetchError{Kind: KindTransport, Err: fmt.Errorf("http.Do: %w", err)}
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
				return backoff.Permanent(&FetchError{
					Kind:       KindBackendStatus,
					StatusCode: resp.StatusCode,
					Err:        fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status),
				})
			}

			b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			if err != nil {
				return &FetchError{Kind: KindTransport, Err: fmt.Errorf("read body: %w", err)}
			}
			body = b
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryInterval), s.cfg.Retries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func decodeDataset(body []byte) (*domain.EnergyDataset, error) {
	var raw []map[string]interface{}
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return nil, &FetchError{Kind: KindBackendStatus, StatusCode: http.StatusOK, Err: fmt.Errorf("sonic.Unmarshal: %w", err)}
	}

	// an empty payload has no columns at all, timestamp included
	if len(raw) == 0 {
		return nil, &FetchError{Kind: KindMissingField, StatusCode: http.StatusOK, Field: dto.FieldTimestamp}
	}

	samples := make([]domain.EnergySample, 0, len(raw))
	for i, item := range raw {
		sample, err := dto.Normalize(item).ToSample()
		if err != nil {
			var missing *dto.MissingFieldError
			if errors.As(err, &missing) {
				return nil, &FetchError{Kind: KindMissingField, StatusCode: http.StatusOK, Field: missing.Field, Err: err}
			}
			return nil, &FetchError{Kind: KindBackendStatus, StatusCode: http.StatusOK, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		samples = append(samples, sample)
	}

	return &domain.EnergyDataset{
		Source:  domain.DatasetSourceBackend,
		Samples: sortByTimestamp(samples),
	}, nil
}

// sortByTimestamp buckets samples by calendar month and orders them
// ascending; for samples in the same month the record that came last in the
// payload wins.
func sortByTimestamp(samples []domain.EnergySample) []domain.EnergySample {
	for i := range samples {
		samples[i].Timestamp = monthStart(samples[i].Timestamp)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	out := samples[:0]
	for _, s := range samples {
		if n := len(out); n > 0 && out[n-1].Timestamp.Equal(s.Timestamp) {
			out[n-1] = s
			continue
		}
		out = append(out, s)
	}
	return out
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *Service) count(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.FetchTotal.WithLabelValues(outcome).Inc()
}

func (s *Service) observeDuration(d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.FetchDuration.Observe(d.Seconds())
}
