package service_test

import (
	"center-docs-server/internal/model"
	"center-docs-server/internal/service"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListActiveAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error) {
	args := m.Called(ctx, exec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Create(ctx context.Context, exec sqlx.ExtContext, notification *model.Notification) error {
	return m.Called(ctx, exec, notification).Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.Notification, error) {
	args := m.Called(ctx, exec, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, exec sqlx.ExtContext, notificationUUID string, userUUID string) (bool, error) {
	args := m.Called(ctx, exec, notificationUUID, userUUID)
	return args.Bool(0), args.Error(1)
}

type MockIncidentRepository struct{ mock.Mock }

func (m *MockIncidentRepository) Create(ctx context.Context, exec sqlx.ExtContext, incident *model.Incident) error {
	return m.Called(ctx, exec, incident).Error(0)
}

func (m *MockIncidentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, incidentUUID string) (*model.Incident, error) {
	args := m.Called(ctx, exec, incidentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) List(ctx context.Context, exec sqlx.ExtContext, status string) ([]model.Incident, error) {
	args := m.Called(ctx, exec, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) Resolve(ctx context.Context, exec sqlx.ExtContext, incidentUUID string, status string, comment string) (bool, error) {
	args := m.Called(ctx, exec, incidentUUID, status, comment)
	return args.Bool(0), args.Error(1)
}

func newTestReminderService() (*service.ReminderService, *MockUserRepository, *MockNotificationRepository, *MockIncidentRepository, *MockAuditRecorder) {
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	incidentRepo := new(MockIncidentRepository)
	audit := new(MockAuditRecorder)

	svc := service.NewReminderService(userRepo, notificationRepo, incidentRepo, audit)
	return svc, userRepo, notificationRepo, incidentRepo, audit
}

func expiringDocument(daysFromNow int) *model.Document {
	expiration := time.Now().Add(time.Duration(daysFromNow) * 24 * time.Hour)
	return &model.Document{
		UUID:           "doc1",
		Name:           "Reglamento interno",
		Type:           "reglamento",
		CenterUUID:     "centro1",
		DepartmentUUID: "depto1",
		ExpirationDate: &expiration,
	}
}

// ===== Clasificación por urgencia =====

func TestDaysLeft(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration time.Time
		expected   int
	}{
		{"Vence en una hora", now.Add(time.Hour), 1},
		{"Vence en 5 días exactos", now.Add(5 * 24 * time.Hour), 5},
		{"Vence en 4 días y medio", now.Add(4*24*time.Hour + 12*time.Hour), 5},
		{"Vence exactamente ahora", now, 0},
		{"Vencido hace dos días", now.Add(-2 * 24 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.DaysLeft(tt.expiration, now))
		})
	}
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		daysLeft int
		expected service.Tier
	}{
		{-1, service.TierExpired},
		{0, service.TierExpired},
		{1, service.TierCritical},
		{7, service.TierCritical}, // el límite pertenece al nivel más urgente
		{8, service.TierUrgent},
		{15, service.TierUrgent},
		{16, service.TierWarning},
		{30, service.TierWarning},
		{31, service.TierNone},
		{90, service.TierNone},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d días", tt.daysLeft), func(t *testing.T) {
			assert.Equal(t, tt.expected, service.TierFor(tt.daysLeft))
		})
	}
}

// ===== Plantillas =====

func TestReminderTemplates(t *testing.T) {
	expiration := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	doc := &model.Document{
		Name:           "Plan de emergencias",
		Type:           "protocolo",
		ExpirationDate: &expiration,
	}

	title := service.ExpiringTitle(service.TierCritical, doc)
	assert.Equal(t, `CRÍTICO: el documento "Plan de emergencias" está próximo a vencer`, title)

	message := service.ExpiringMessage(doc, 5)
	assert.Contains(t, message, "15/09/2025")
	assert.Contains(t, message, "Quedan 5 días")

	expiredTitle := service.ExpiredTitle(doc)
	assert.Contains(t, expiredTitle, "VENCIDO")

	expiredMessage := service.ExpiredMessage(doc)
	assert.Contains(t, expiredMessage, "venció el 15/09/2025")
	assert.Contains(t, expiredMessage, "renovación inmediata")
}

// ===== FireReminder =====

func TestFireReminder_OneNotificationPerActiveAdmin(t *testing.T) {
	svc, userRepo, notificationRepo, _, audit := newTestReminderService()
	ctx := context.Background()
	exec := &fakeTx{}
	doc := expiringDocument(5)

	admins := []model.User{
		{UUID: "admin1", Role: model.RoleAdmin, Active: true},
		{UUID: "admin2", Role: model.RoleSuperAdmin, Active: true},
	}
	userRepo.On("ListActiveAdmins", ctx, exec).Return(admins, nil)

	var created []*model.Notification
	notificationRepo.On("Create", ctx, exec, mock.Anything).Run(func(args mock.Arguments) {
		created = append(created, args.Get(2).(*model.Notification))
	}).Return(nil)
	audit.On("Record", ctx, exec, mock.Anything).Return(nil)

	sent, err := svc.FireReminder(ctx, exec, doc, 5)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, created, 2)
	assert.Equal(t, "admin1", created[0].UserUUID)
	assert.Equal(t, "admin2", created[1].UserUUID)
	for _, n := range created {
		assert.Equal(t, model.NotificationTypeExpiring, n.Type)
		assert.Contains(t, n.Title, "CRÍTICO")
		assert.Contains(t, n.Message, "Quedan 5 días")
		require.NotNil(t, n.DocumentUUID)
		assert.Equal(t, "doc1", *n.DocumentUUID)
	}
}

func TestFireReminder_RecipientsError(t *testing.T) {
	svc, userRepo, _, _, _ := newTestReminderService()
	ctx := context.Background()
	exec := &fakeTx{}

	userRepo.On("ListActiveAdmins", ctx, exec).Return(nil, errors.New("db error"))

	sent, err := svc.FireReminder(ctx, exec, expiringDocument(10), 10)

	require.Error(t, err)
	assert.Equal(t, 0, sent)
}

// ===== FireExpired =====

func TestFireExpired_NotificationAndIncident(t *testing.T) {
	svc, userRepo, notificationRepo, incidentRepo, audit := newTestReminderService()
	ctx := context.Background()
	exec := &fakeTx{}
	doc := expiringDocument(-1)

	admins := []model.User{{UUID: "admin1", Role: model.RoleAdmin, Active: true}}
	userRepo.On("ListActiveAdmins", ctx, exec).Return(admins, nil)
	notificationRepo.On("Create", ctx, exec, mock.Anything).Return(nil)

	var incident *model.Incident
	incidentRepo.On("Create", ctx, exec, mock.Anything).Run(func(args mock.Arguments) {
		incident = args.Get(2).(*model.Incident)
	}).Return(nil)
	audit.On("Record", ctx, exec, mock.Anything).Return(nil)

	sent, err := svc.FireExpired(ctx, exec, doc)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.NotNil(t, incident)
	assert.Equal(t, model.IncidentTypeObserved, incident.Type)
	assert.Equal(t, service.SystemActorName, incident.CreatedByName)
	require.NotNil(t, incident.DocumentUUID)
	assert.Equal(t, "doc1", *incident.DocumentUUID)
	require.NotNil(t, incident.CenterUUID)
	assert.Equal(t, "centro1", *incident.CenterUUID)
	incidentRepo.AssertExpectations(t)
}

func TestFireExpired_IncidentError(t *testing.T) {
	svc, userRepo, notificationRepo, incidentRepo, _ := newTestReminderService()
	ctx := context.Background()
	exec := &fakeTx{}

	userRepo.On("ListActiveAdmins", ctx, exec).Return([]model.User{}, nil)
	notificationRepo.On("Create", ctx, exec, mock.Anything).Return(nil).Maybe()
	incidentRepo.On("Create", ctx, exec, mock.Anything).Return(errors.New("db error"))

	_, err := svc.FireExpired(ctx, exec, expiringDocument(-3))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "incidencia")
}
