package service_test

import (
	"center-docs-server/config"
	"center-docs-server/internal/model"
	"center-docs-server/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReminderFanout struct{ mock.Mock }

func (m *MockReminderFanout) FireReminder(ctx context.Context, exec sqlx.ExtContext, doc *model.Document, daysLeft int) (int, error) {
	args := m.Called(ctx, exec, doc, daysLeft)
	return args.Int(0), args.Error(1)
}

func (m *MockReminderFanout) FireExpired(ctx context.Context, exec sqlx.ExtContext, doc *model.Document) (int, error) {
	args := m.Called(ctx, exec, doc)
	return args.Int(0), args.Error(1)
}

func newTestScheduler() (*service.SchedulerService, *MockDocumentRepository, *MockReminderFanout, *config.Database) {
	docRepo := new(MockDocumentRepository)
	fanout := new(MockReminderFanout)
	db := &config.Database{}

	svc := service.NewSchedulerService(db, docRepo, fanout, &config.SchedulerConfig{IntervalHours: 6})
	return svc, docRepo, fanout, db
}

func TestSweep_ExpiredFiresOnceAndLatches(t *testing.T) {
	svc, docRepo, fanout, db := newTestScheduler()
	ctx := context.Background()

	expiration := time.Now().Add(-24 * time.Hour)
	expired := model.Document{
		UUID:           "doc1",
		Name:           "Licencia sanitaria",
		Type:           "licencia",
		CenterUUID:     "centro1",
		ExpirationDate: &expiration,
	}

	docRepo.On("ListExpiredPending", ctx, db).Return([]model.Document{expired}, nil)
	docRepo.On("ListExpiringWithin", ctx, db, 30).Return([]model.Document{}, nil)
	fanout.On("FireExpired", ctx, db, mock.Anything).Return(2, nil)
	docRepo.On("SetReminderFlag", ctx, db, "doc1", "expired").Return(nil)

	reviewed, sent, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, reviewed)
	assert.Equal(t, 2, sent)
	docRepo.AssertExpectations(t)
	fanout.AssertExpectations(t)
}

func TestSweep_ExpiredAlreadyLatched(t *testing.T) {
	svc, docRepo, fanout, db := newTestScheduler()
	ctx := context.Background()

	expiration := time.Now().Add(-24 * time.Hour)
	expired := model.Document{
		UUID:            "doc1",
		ExpirationDate:  &expiration,
		ReminderExpired: true,
	}

	docRepo.On("ListExpiredPending", ctx, db).Return([]model.Document{expired}, nil)
	docRepo.On("ListExpiringWithin", ctx, db, 30).Return([]model.Document{}, nil)

	reviewed, sent, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, reviewed)
	assert.Equal(t, 0, sent)
	fanout.AssertNotCalled(t, "FireExpired", mock.Anything, mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "SetReminderFlag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweep_TierFlags(t *testing.T) {
	tests := []struct {
		name         string
		daysFromNow  int
		doc          model.Document
		expectedFlag string
		expectFire   bool
	}{
		{
			name:         "5 días dispara el aviso crítico",
			daysFromNow:  5,
			expectedFlag: "7",
			expectFire:   true,
		},
		{
			name:         "10 días dispara el aviso urgente",
			daysFromNow:  10,
			expectedFlag: "15",
			expectFire:   true,
		},
		{
			name:         "25 días dispara la advertencia",
			daysFromNow:  25,
			expectedFlag: "30",
			expectFire:   true,
		},
		{
			name:        "5 días con el latch crítico ya marcado",
			daysFromNow: 5,
			doc:         model.Document{ReminderSent7: true},
			expectFire:  false,
		},
		{
			name:        "10 días con el latch urgente ya marcado",
			daysFromNow: 10,
			doc:         model.Document{ReminderSent15: true},
			expectFire:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, docRepo, fanout, db := newTestScheduler()
			ctx := context.Background()

			expiration := time.Now().Add(time.Duration(tt.daysFromNow)*24*time.Hour - time.Hour)
			doc := tt.doc
			doc.UUID = "doc1"
			doc.ExpirationDate = &expiration

			docRepo.On("ListExpiredPending", ctx, db).Return([]model.Document{}, nil)
			docRepo.On("ListExpiringWithin", ctx, db, 30).Return([]model.Document{doc}, nil)

			if tt.expectFire {
				fanout.On("FireReminder", ctx, db, mock.Anything, tt.daysFromNow).Return(1, nil)
				docRepo.On("SetReminderFlag", ctx, db, "doc1", tt.expectedFlag).Return(nil)
			}

			reviewed, sent, err := svc.Sweep(ctx)

			require.NoError(t, err)
			assert.Equal(t, 1, reviewed)
			if tt.expectFire {
				assert.Equal(t, 1, sent)
				docRepo.AssertExpectations(t)
				fanout.AssertExpectations(t)
			} else {
				assert.Equal(t, 0, sent)
				fanout.AssertNotCalled(t, "FireReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSweep_DocumentErrorDoesNotAbortTheRest(t *testing.T) {
	svc, docRepo, fanout, db := newTestScheduler()
	ctx := context.Background()

	expiration := time.Now().Add(5*24*time.Hour - time.Hour)
	broken := model.Document{UUID: "doc1", ExpirationDate: &expiration}
	healthy := model.Document{UUID: "doc2", ExpirationDate: &expiration}

	docRepo.On("ListExpiredPending", ctx, db).Return([]model.Document{}, nil)
	docRepo.On("ListExpiringWithin", ctx, db, 30).Return([]model.Document{broken, healthy}, nil)
	fanout.On("FireReminder", ctx, db, mock.MatchedBy(func(d *model.Document) bool { return d.UUID == "doc1" }), 5).
		Return(0, errors.New("fallo de notificación"))
	fanout.On("FireReminder", ctx, db, mock.MatchedBy(func(d *model.Document) bool { return d.UUID == "doc2" }), 5).
		Return(3, nil)
	docRepo.On("SetReminderFlag", ctx, db, "doc2", "7").Return(nil)

	reviewed, sent, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, reviewed)
	assert.Equal(t, 3, sent)
	docRepo.AssertNotCalled(t, "SetReminderFlag", ctx, db, "doc1", "7")
}

func TestRun_SweepsImmediatelyOnStart(t *testing.T) {
	svc, docRepo, _, db := newTestScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	swept := make(chan struct{}, 1)
	docRepo.On("ListExpiredPending", mock.Anything, db).Return([]model.Document{}, nil)
	docRepo.On("ListExpiringWithin", mock.Anything, db, 30).Return([]model.Document{}, nil).
		Run(func(mock.Arguments) {
			select {
			case swept <- struct{}{}:
			default:
			}
		})

	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	// la primera pasada no espera al tick del intervalo (6h)
	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("el planificador no ejecutó la pasada inicial al arrancar")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("el planificador no se detuvo al cancelar el contexto")
	}
}

func TestSweep_ListError(t *testing.T) {
	svc, docRepo, _, db := newTestScheduler()
	ctx := context.Background()

	docRepo.On("ListExpiredPending", ctx, db).Return(nil, errors.New("db error"))

	_, _, err := svc.Sweep(ctx)

	require.Error(t, err)
}
