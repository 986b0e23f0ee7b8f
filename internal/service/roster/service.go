package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
	"github.com/kerjahub/roster-backend-go/internal/repository/postgresql"
)

type RosterServiceImpl struct {
	roster.RosterRepository
	roster.BatchRepository
	employee.EmployeeRepository
	notificationService notification.Service

	// runTx wraps a function in one storage transaction.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

const dateLayout = "2006-01-02"

// SubmitRoster implements roster.RosterService. The whole submission runs in
// one transaction; the per-date upsert rules are:
//   - no existing entry      -> create as requested
//   - existing rejected      -> overwrite, back to requested, clear decision
//   - existing requested     -> skip, leave untouched
//   - existing approved      -> skip, leave untouched
//   - existing draft (other) -> overwrite, move to requested
func (s *RosterServiceImpl) SubmitRoster(ctx context.Context, req roster.SubmitRosterRequest) (roster.SubmitRosterResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.SubmitRosterResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return roster.SubmitRosterResponse{}, err
	}

	var resp roster.SubmitRosterResponse

	err := s.runTx(ctx, func(txCtx context.Context) error {
		batch, err := s.BatchRepository.Create(txCtx, roster.SubmissionBatch{
			EmployeeID:      req.EmployeeID,
			SubmissionMonth: req.MonthLabel,
			State:           roster.BatchRequested,
		})
		if err != nil {
			return err
		}
		resp.BatchID = batch.ID

		for _, item := range req.Schedules {
			date, err := time.Parse(dateLayout, item.Date)
			if err != nil {
				return fmt.Errorf("invalid schedule date %q: %w", item.Date, err)
			}

			existing, err := s.RosterRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date)
			if err != nil {
				return err
			}

			if existing == nil {
				created, err := s.RosterRepository.Create(txCtx, roster.RosterEntry{
					EmployeeID:    req.EmployeeID,
					Date:          date,
					WorkPatternID: item.WorkPatternID,
					State:         roster.StateRequested,
					BatchID:       &batch.ID,
				})
				if err != nil {
					return err
				}
				resp.CreatedIDs = append(resp.CreatedIDs, created.ID)
				continue
			}

			switch existing.State {
			case roster.StateRequested, roster.StateApproved:
				resp.SkippedDates = append(resp.SkippedDates, item.Date)
			default:
				existing.WorkPatternID = item.WorkPatternID
				existing.State = roster.StateRequested
				existing.RejectionReason = nil
				existing.ApproverID = nil
				existing.BatchID = &batch.ID
				if err := s.RosterRepository.Update(txCtx, *existing); err != nil {
					return err
				}
				resp.UpdatedIDs = append(resp.UpdatedIDs, existing.ID)
			}
		}

		return nil
	})
	if err != nil {
		return roster.SubmitRosterResponse{}, err
	}

	return resp, nil
}

// Approve implements roster.RosterService.
func (s *RosterServiceImpl) Approve(ctx context.Context, rosterID string, approverID string) error {
	entry, err := s.RosterRepository.GetByID(ctx, rosterID)
	if err != nil {
		return err
	}

	entry.State = roster.StateApproved
	entry.ApproverID = &approverID
	entry.RejectionReason = nil

	if err := s.RosterRepository.Update(ctx, entry); err != nil {
		return err
	}

	s.notifyStateChange(ctx, entry, "Jadwal Disetujui",
		fmt.Sprintf("Jadwal Anda untuk tanggal %s telah disetujui.", entry.Date.Format(dateLayout)))

	return nil
}

// Reject implements roster.RosterService.
func (s *RosterServiceImpl) Reject(ctx context.Context, req roster.RejectRosterRequest, approverID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entry, err := s.RosterRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	entry.State = roster.StateRejected
	entry.ApproverID = &approverID
	entry.RejectionReason = &req.Reason

	if err := s.RosterRepository.Update(ctx, entry); err != nil {
		return err
	}

	s.notifyStateChange(ctx, entry, "Jadwal Ditolak",
		fmt.Sprintf("Jadwal Anda untuk tanggal %s ditolak: %s", entry.Date.Format(dateLayout), req.Reason))

	return nil
}

// ResetToDraft implements roster.RosterService.
func (s *RosterServiceImpl) ResetToDraft(ctx context.Context, rosterID string) error {
	entry, err := s.RosterRepository.GetByID(ctx, rosterID)
	if err != nil {
		return err
	}

	entry.State = roster.StateDraft
	entry.ApproverID = nil
	entry.RejectionReason = nil

	return s.RosterRepository.Update(ctx, entry)
}

// CancelByEmployee implements roster.RosterService.
func (s *RosterServiceImpl) CancelByEmployee(ctx context.Context, rosterID string, employeeID string) error {
	entry, err := s.RosterRepository.GetByID(ctx, rosterID)
	if err != nil {
		return err
	}

	if entry.EmployeeID != employeeID {
		return roster.ErrNotRosterOwner
	}

	if entry.State != roster.StateRequested {
		return &roster.CancelNotAllowedError{State: entry.State}
	}

	return s.RosterRepository.Delete(ctx, rosterID)
}

// CancelBatchByEmployee implements roster.RosterService. The batch owns its
// member entries, so deleting it cascades to them at the storage layer.
func (s *RosterServiceImpl) CancelBatchByEmployee(ctx context.Context, batchID string, employeeID string) error {
	batch, err := s.BatchRepository.GetByID(ctx, batchID)
	if err != nil {
		return err
	}

	if batch.EmployeeID != employeeID {
		return roster.ErrNotBatchOwner
	}

	if batch.State != roster.BatchRequested {
		return roster.ErrBatchNotCancellable
	}

	return s.BatchRepository.Delete(ctx, batchID)
}

// ApproveBatch implements roster.RosterService. Entry updates and the batch
// rollup commit together; notifications fan out only after the commit.
func (s *RosterServiceImpl) ApproveBatch(ctx context.Context, batchID string, approverID string) error {
	if _, err := s.BatchRepository.GetByID(ctx, batchID); err != nil {
		return err
	}

	var approved []roster.RosterEntry

	err := s.runTx(ctx, func(txCtx context.Context) error {
		entries, err := s.RosterRepository.ListByBatchID(txCtx, batchID)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entry.State = roster.StateApproved
			entry.ApproverID = &approverID
			entry.RejectionReason = nil
			if err := s.RosterRepository.Update(txCtx, entry); err != nil {
				return err
			}
			approved = append(approved, entry)
		}

		return s.BatchRepository.UpdateState(txCtx, batchID, roster.BatchApproved)
	})
	if err != nil {
		return err
	}

	for _, entry := range approved {
		s.notifyStateChange(ctx, entry, "Jadwal Disetujui",
			fmt.Sprintf("Jadwal Anda untuk tanggal %s telah disetujui.", entry.Date.Format(dateLayout)))
	}

	return nil
}

// RejectBatch implements roster.RosterService. Only the batch rollup state
// changes; member entries keep whatever state they are in.
func (s *RosterServiceImpl) RejectBatch(ctx context.Context, batchID string) error {
	if _, err := s.BatchRepository.GetByID(ctx, batchID); err != nil {
		return err
	}

	return s.BatchRepository.UpdateState(ctx, batchID, roster.BatchRejected)
}

// GetBookedDates implements roster.RosterService. A date counts as booked
// while its entry is requested or approved; draft and rejected entries are
// open for resubmission and are not reported.
func (s *RosterServiceImpl) GetBookedDates(ctx context.Context, employeeID string, start, end string) ([]roster.BookedDateResponse, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	entries, err := s.RosterRepository.ListByEmployeeAndRange(ctx, employeeID, startDate, endDate,
		[]roster.RosterState{roster.StateRequested, roster.StateApproved})
	if err != nil {
		return nil, err
	}

	booked := make([]roster.BookedDateResponse, 0, len(entries))
	for _, entry := range entries {
		booked = append(booked, roster.BookedDateResponse{
			Date:  entry.Date.Format(dateLayout),
			State: string(entry.State),
		})
	}

	return booked, nil
}

// GetRosterHistory implements roster.RosterService.
func (s *RosterServiceImpl) GetRosterHistory(ctx context.Context, employeeID string) ([]roster.RosterResponse, error) {
	entries, err := s.RosterRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	history := make([]roster.RosterResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, roster.RosterResponse{
			ID:              entry.ID,
			Date:            entry.Date.Format(dateLayout),
			State:           string(entry.State),
			WorkPatternID:   entry.WorkPatternID,
			WorkPatternName: entry.PatternName,
			WorkFrom:        entry.WorkFrom,
			WorkTo:          entry.WorkTo,
			RejectionReason: entry.RejectionReason,
			CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return history, nil
}

// notifyStateChange queues a push to the entry's employee. The employee may
// have no linked user account; that and any queue failure only logs a
// warning because notification delivery never gates a roster decision.
func (s *RosterServiceImpl) notifyStateChange(ctx context.Context, entry roster.RosterEntry, title, body string) {
	if s.notificationService == nil {
		return
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		slog.Warn("Failed to load employee for roster notification", "roster_id", entry.ID, "error", err)
		return
	}
	if emp.UserID == nil {
		return
	}

	err = s.notificationService.Queue(ctx, notification.QueueRequest{
		UserID: *emp.UserID,
		Type:   notification.TypeScheduleStatusChange,
		Title:  title,
		Body:   body,
		Data: map[string]interface{}{
			"roster_id": entry.ID,
			"date":      entry.Date.Format(dateLayout),
			"status":    string(entry.State),
		},
	})
	if err != nil {
		slog.Warn("Failed to queue roster notification", "roster_id", entry.ID, "error", err)
	}
}

func NewRosterService(
	db *database.DB,
	rosterRepo roster.RosterRepository,
	batchRepo roster.BatchRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
) roster.RosterService {
	return &RosterServiceImpl{
		RosterRepository:    rosterRepo,
		BatchRepository:     batchRepo,
		EmployeeRepository:  employeeRepo,
		notificationService: notificationService,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}
