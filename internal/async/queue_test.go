package async

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/internal/classify"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/emission"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
	"github.com/ecotrack-app/carbon-tracker/internal/ocr"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
	"github.com/ecotrack-app/carbon-tracker/internal/pipeline"
)

type stubExtractor struct{}

func (stubExtractor) Extract(_ context.Context, _ []byte) (*ocr.Result, error) {
	return &ocr.Result{
		Text:       "Electricity consumption 120 kWh. Billing period 2024-03-01 to 2024-03-31.",
		Confidence: 0.9,
		Pages:      1,
	}, nil
}

type stubProfiles struct {
	profile *entity.Profile
}

func (s *stubProfiles) Create(_ context.Context, name, region string) (*entity.Profile, error) {
	return &entity.Profile{ID: uuid.New(), Name: name, Region: region}, nil
}

func (s *stubProfiles) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	if s.profile.ID != id {
		return nil, common.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubProfiles) GetByName(_ context.Context, _ string) (*entity.Profile, error) {
	return nil, common.ErrNotFound
}

func (s *stubProfiles) List(_ context.Context) ([]*entity.Profile, error) {
	return []*entity.Profile{s.profile}, nil
}

type memBills struct {
	mu      sync.Mutex
	created []*entity.UtilityBill
}

func (m *memBills) Create(_ context.Context, bill *entity.UtilityBill) (*entity.UtilityBill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := *bill
	rec.ID = uuid.New()
	m.created = append(m.created, &rec)
	return &rec, nil
}

func (m *memBills) GetByID(_ context.Context, _, _ uuid.UUID) (*entity.UtilityBill, error) {
	return nil, common.ErrNotFound
}

func (m *memBills) List(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.UtilityBill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.UtilityBill(nil), m.created...), nil
}

func (m *memBills) Delete(_ context.Context, _, _ uuid.UUID) error {
	return common.ErrNotFound
}

func (m *memBills) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

func TestScanQueueDrainsAllJobs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	profileID := uuid.New()
	bills := &memBills{}
	proc := pipeline.NewProcessor(
		logger,
		stubExtractor{},
		classify.NewClassifier(logger),
		parse.NewParser(logger),
		emission.NewCalculator(nil),
		&stubProfiles{profile: &entity.Profile{ID: profileID, Name: "Batch", Region: "SG"}},
		bills,
		nil,
	)

	dir := t.TempDir()
	const jobs = 6
	paths := make([]string, jobs)
	for i := range paths {
		paths[i] = filepath.Join(dir, uuid.NewString()+".jpg")
		if err := os.WriteFile(paths[i], []byte("fake image bytes"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	q := NewScanQueue(proc, logger, WithWorkers(3), WithQueueSize(2))
	for _, p := range paths {
		if err := q.Enqueue(context.Background(), Job{Path: p, ProfileID: profileID, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue(%s): %v", p, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := bills.count(); got != jobs {
		t.Fatalf("persisted %d bills, want %d", got, jobs)
	}
}

func TestScanQueueSkipsUnreadableFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	profileID := uuid.New()
	bills := &memBills{}
	proc := pipeline.NewProcessor(
		logger,
		stubExtractor{},
		classify.NewClassifier(logger),
		parse.NewParser(logger),
		emission.NewCalculator(nil),
		&stubProfiles{profile: &entity.Profile{ID: profileID, Name: "Batch", Region: "SG"}},
		bills,
		nil,
	)

	q := NewScanQueue(proc, logger, WithWorkers(1))
	_ = q.Enqueue(context.Background(), Job{Path: filepath.Join(t.TempDir(), "missing.jpg"), ProfileID: profileID})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := bills.count(); got != 0 {
		t.Fatalf("persisted %d bills from an unreadable file, want 0", got)
	}
}

func TestScanQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := pipeline.NewProcessor(
		logger,
		stubExtractor{},
		classify.NewClassifier(logger),
		parse.NewParser(logger),
		emission.NewCalculator(nil),
		&stubProfiles{profile: &entity.Profile{ID: uuid.New(), Name: "Batch", Region: "SG"}},
		&memBills{},
		nil,
	)

	q := NewScanQueue(proc, logger, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{Path: "late.jpg"}); err != nil {
		t.Fatalf("Enqueue after shutdown returned %v", err)
	}
}
