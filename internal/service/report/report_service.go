package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/pkg/metrics"
	"github.com/ougirez/energy-dashboard/internal/service/recommendation"
)

const (
	Title       = "Triphorium Energy Report"
	ContentType = "application/pdf"

	lineHeight = 10
)

type Config struct {
	FileName string
	// PaybackPlaceholder is printed when payback is absent. Empty means the
	// report cannot be rendered without a payback figure.
	PaybackPlaceholder string
	Compress           bool
}

type Service struct {
	cfg     Config
	now     func() time.Time
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(cfg Config, opts ...Option) *Service {
	if cfg.FileName == "" {
		cfg.FileName = constants.DefaultReportFileName
	}
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FileName() string {
	return s.cfg.FileName
}

func (s *Service) BuildReport(profile domain.BuildingProfile, zone domain.ClimateZone, financials domain.FinancialResult) domain.Report {
	if financials.PaybackYears != nil {
		payback := *financials.PaybackYears
		financials.PaybackYears = &payback
	}

	return domain.Report{
		ID:              uuid.New(),
		GeneratedAt:     s.now().UTC(),
		Profile:         profile,
		ClimateZone:     zone,
		Financials:      financials,
		Recommendations: recommendation.List(),
	}
}

// Lines returns the field lines of the report body in print order.
func (s *Service) Lines(r domain.Report) ([]string, error) {
	payback := s.cfg.PaybackPlaceholder
	if r.Financials.PaybackYears != nil {
		payback = fmt.Sprintf("%.1f years", *r.Financials.PaybackYears)
	} else if payback == "" {
		return nil, constants.ErrMissingFinancials
	}

	return []string{
		fmt.Sprintf("Building Type: %s", r.Profile.Type),
		fmt.Sprintf("Climate Zone: %s", r.ClimateZone),
		fmt.Sprintf("Annual Savings: $%.2f", r.Financials.AnnualSavings),
		fmt.Sprintf("ROI: %.1f%%", r.Financials.ROIPercent),
		fmt.Sprintf("Payback Period: %s", payback),
	}, nil
}

func recommendationsBlock(r domain.Report) string {
	var b strings.Builder
	b.WriteString("Recommendations:")
	for _, rec := range r.Recommendations {
		b.WriteString("\n- ")
		b.WriteString(rec.Label)
	}
	return b.String()
}

func (s *Service) RenderReport(r domain.Report) ([]byte, error) {
	out, err := s.render(r)
	if s.metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metrics.ExportsTotal.WithLabelValues(result).Inc()
	}
	return out, err
}

func (s *Service) render(r domain.Report) ([]byte, error) {
	lines, err := s.Lines(r)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(s.cfg.Compress)
	pdf.SetTitle(Title, false)
	pdf.SetCreator("energy-dashboard", false)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetModificationDate(r.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, lineHeight, Title, "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)
	for _, line := range lines {
		pdf.CellFormat(0, lineHeight, tr(line), "", 1, "", false, 0, "")
	}
	pdf.Ln(lineHeight)
	pdf.MultiCell(0, lineHeight, tr(recommendationsBlock(r)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Output: %w", err)
	}

	return buf.Bytes(), nil
}
