package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/domain/attendance"
	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/pkg/utils"
)

// Reminder hours in UTC. The workforce is on WIB (UTC+7): 01:00 UTC is
// 08:00 WIB, 10:00 UTC is 17:00 WIB.
const (
	checkInReminderHourUTC  = 1
	checkOutReminderHourUTC = 10
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	patternRepo     pattern.WorkPatternRepository
	userRepo        user.UserRepository
	notificationSvc notification.Service

	sweepInterval  time.Duration
	staleThreshold time.Duration
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	patternRepo pattern.WorkPatternRepository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
	sweepInterval time.Duration,
	staleThreshold time.Duration,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		patternRepo:     patternRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		sweepInterval:   sweepInterval,
		staleThreshold:  staleThreshold,
		now:             time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout", j.sweepInterval, j.AutoCheckout)
	scheduler.AddJob("check_in_reminder", time.Hour, j.SendCheckInReminder)
	scheduler.AddJob("check_out_reminder", time.Hour, j.SendCheckOutReminder)
}

// AutoCheckout closes attendance records still open past the staleness
// threshold. The checkout timestamp is the check-in's calendar date combined
// with the employee's default work pattern end hour. Employees without a
// pattern are skipped; per-record failures do not stop the sweep.
func (j *AttendanceJobs) AutoCheckout(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.staleThreshold)

	sessions, err := j.attendanceRepo.GetStaleOpenSessions(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale open sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil
	}

	slog.Info("Cron: Found stale attendance sessions to auto-checkout", "count", len(sessions))

	closed := 0
	for _, session := range sessions {
		emp, err := j.employeeRepo.GetByID(ctx, session.EmployeeID)
		if err != nil {
			slog.Error("Cron: Failed to load employee for auto-checkout",
				"attendance_id", session.ID, "employee_id", session.EmployeeID, "error", err)
			continue
		}

		if emp.WorkPatternID == nil {
			slog.Warn("Cron: Employee has no work pattern, auto-checkout skipped",
				"attendance_id", session.ID, "employee_id", emp.ID)
			continue
		}

		workPattern, err := j.patternRepo.GetByID(ctx, *emp.WorkPatternID)
		if err != nil {
			slog.Error("Cron: Failed to load work pattern for auto-checkout",
				"attendance_id", session.ID, "work_pattern_id", *emp.WorkPatternID, "error", err)
			continue
		}

		checkOut := utils.CombineDateAndFloatHour(session.CheckIn.UTC(), workPattern.WorkTo)

		if err := j.attendanceRepo.SetCheckOut(ctx, session.ID, checkOut); err != nil {
			slog.Error("Cron: Failed to auto-checkout attendance",
				"attendance_id", session.ID, "employee_id", emp.ID, "error", err)
			continue
		}
		closed++

		j.notifyAutoCheckout(ctx, emp, session, checkOut)
	}

	slog.Info("Cron: Auto-checkout sweep finished", "closed", closed, "total", len(sessions))
	return nil
}

func (j *AttendanceJobs) notifyAutoCheckout(ctx context.Context, emp employee.Employee, session attendance.Attendance, checkOut time.Time) {
	if j.notificationSvc == nil || emp.UserID == nil {
		return
	}

	err := j.notificationSvc.Queue(ctx, notification.QueueRequest{
		UserID: *emp.UserID,
		Type:   notification.TypeAutoCheckout,
		Title:  "Check-Out Otomatis",
		Body: fmt.Sprintf("Anda belum melakukan check-out. Sistem mencatat check-out Anda pada %s.",
			checkOut.Format("2006-01-02 15:04")),
		Data: map[string]interface{}{"attendance_id": session.ID},
	})
	if err != nil {
		slog.Warn("Cron: Failed to queue auto-checkout notification",
			"attendance_id", session.ID, "error", err)
	}
}

// SendCheckInReminder broadcasts a transient push at the start of the
// workday. Nothing is written to the inbox.
func (j *AttendanceJobs) SendCheckInReminder(ctx context.Context) error {
	if j.now().UTC().Hour() != checkInReminderHourUTC {
		return nil
	}

	return j.broadcastReminder(ctx,
		"Jangan Lupa Check-in!",
		"Selamat pagi! Jangan lupa untuk melakukan check-in hari ini.",
		notification.TypeCheckInReminder)
}

// SendCheckOutReminder broadcasts a transient push near the end of the
// workday.
func (j *AttendanceJobs) SendCheckOutReminder(ctx context.Context) error {
	if j.now().UTC().Hour() != checkOutReminderHourUTC {
		return nil
	}

	return j.broadcastReminder(ctx,
		"Waktunya Check-out",
		"Waktu kerja akan segera berakhir. Jangan lupa untuk melakukan check-out.",
		notification.TypeCheckOutReminder)
}

func (j *AttendanceJobs) broadcastReminder(ctx context.Context, title, body string, typ notification.NotificationType) error {
	if j.notificationSvc == nil {
		return nil
	}

	// Tokens are already distinct; users sharing a device get one push.
	tokens, err := j.userRepo.GetDistinctPushTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list push tokens: %w", err)
	}

	if len(tokens) == 0 {
		slog.Warn("Cron: No users with a push token, reminder skipped", "type", typ)
		return nil
	}

	sent := 0
	for _, token := range tokens {
		if j.notificationSvc.SendTransient(ctx, token, title, body, map[string]string{"type": string(typ)}) {
			sent++
		}
	}

	slog.Info("Cron: Reminder broadcast finished", "type", typ, "sent", sent, "tokens", len(tokens))
	return nil
}
