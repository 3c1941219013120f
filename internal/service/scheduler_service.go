package service

import (
	"center-docs-server/config"
	"center-docs-server/internal/metrics"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Ventana de aviso previo al vencimiento, en días
const reminderWindowDays = 30

// SchedulerService : barrido periódico de vencimientos. Es una tarea de larga
// vida propiedad del proceso: una pasada inmediata al arrancar y luego una por
// intervalo, hasta que se cancela el contexto. Un guard interno evita que dos
// barridos se solapen si una pasada tarda más que el intervalo.
type SchedulerService struct {
	database           *config.Database
	documentRepository ports.DocumentRepository
	fanout             ports.ReminderFanout
	interval           time.Duration
	sweeping           atomic.Bool
}

func NewSchedulerService(
	database *config.Database,
	documentRepository ports.DocumentRepository,
	fanout ports.ReminderFanout,
	cfg *config.SchedulerConfig,
) *SchedulerService {
	return &SchedulerService{
		database:           database,
		documentRepository: documentRepository,
		fanout:             fanout,
		interval:           time.Duration(cfg.IntervalHours) * time.Hour,
	}
}

// Run : bucle del planificador; bloquea hasta que se cancela el contexto.
// La primera pasada se ejecuta al arrancar, sin esperar al primer tick.
func (s *SchedulerService) Run(ctx context.Context) {
	log.Printf("[Scheduler] planificador de vencimientos iniciado (intervalo %s)", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] planificador detenido")
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

// runSweep : ejecuta una pasada; un error nunca detiene el ticker
func (s *SchedulerService) runSweep(ctx context.Context) {
	if !s.sweeping.CompareAndSwap(false, true) {
		log.Println("[Scheduler] barrido anterior todavía en curso, se omite esta pasada")
		return
	}
	defer s.sweeping.Store(false)

	start := time.Now()
	reviewed, sent, err := s.Sweep(ctx)
	if err != nil {
		log.Printf("[Scheduler] error en el barrido de vencimientos: %v", err)
		return
	}

	metrics.SweepsTotal.Inc()
	metrics.SweepDuration.Observe(time.Since(start).Seconds())
	log.Printf("[Scheduler] Revisados %d documentos, %d recordatorios enviados", reviewed, sent)
}

// Sweep : una pasada completa. Primero los vencidos, después los próximos a
// vencer. El fallo de un documento se registra y no aborta el resto.
func (s *SchedulerService) Sweep(ctx context.Context) (int, int, error) {
	reviewed := 0
	sent := 0

	expired, err := s.documentRepository.ListExpiredPending(ctx, s.database)
	if err != nil {
		return reviewed, sent, err
	}

	for i := range expired {
		doc := &expired[i]
		reviewed++
		n, err := s.processExpired(ctx, doc)
		if err != nil {
			log.Printf("[Scheduler] documento %s: %v", doc.UUID, err)
			continue
		}
		sent += n
	}

	expiring, err := s.documentRepository.ListExpiringWithin(ctx, s.database, reminderWindowDays)
	if err != nil {
		return reviewed, sent, err
	}

	for i := range expiring {
		doc := &expiring[i]
		reviewed++
		n, err := s.processExpiring(ctx, doc)
		if err != nil {
			log.Printf("[Scheduler] documento %s: %v", doc.UUID, err)
			continue
		}
		sent += n
	}

	return reviewed, sent, nil
}

// processExpired : aviso de vencido más incidencia automática, una sola vez
func (s *SchedulerService) processExpired(ctx context.Context, doc *model.Document) (int, error) {
	if doc.ReminderExpired {
		return 0, nil
	}

	sent, err := s.fanout.FireExpired(ctx, s.database, doc)
	if err != nil {
		return sent, err
	}

	if err := s.documentRepository.SetReminderFlag(ctx, s.database, doc.UUID, "expired"); err != nil {
		return sent, err
	}
	return sent, nil
}

// processExpiring : dispara como mucho un recordatorio por pasada: el del
// nivel de urgencia vigente, y solo si su latch sigue sin marcar. Los latches
// son independientes entre sí y nunca se reinician, ni siquiera si después se
// edita la fecha de vencimiento.
func (s *SchedulerService) processExpiring(ctx context.Context, doc *model.Document) (int, error) {
	if doc.ExpirationDate == nil {
		return 0, nil
	}

	days := DaysLeft(*doc.ExpirationDate, time.Now())

	var flag string
	switch {
	case days <= 7:
		if doc.ReminderSent7 {
			return 0, nil
		}
		flag = "7"
	case days <= 15:
		if doc.ReminderSent15 {
			return 0, nil
		}
		flag = "15"
	case days <= 30:
		if doc.ReminderSent30 {
			return 0, nil
		}
		flag = "30"
	default:
		return 0, nil
	}

	sent, err := s.fanout.FireReminder(ctx, s.database, doc, days)
	if err != nil {
		return sent, err
	}

	if err := s.documentRepository.SetReminderFlag(ctx, s.database, doc.UUID, flag); err != nil {
		return sent, err
	}
	return sent, nil
}
