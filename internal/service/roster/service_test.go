package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
)

var errStorageDown = errors.New("storage unavailable")

type memoryRosterRepo struct {
	entries map[string]roster.RosterEntry

	// failCreateOn makes the n-th Create call fail (1-based, 0 disables).
	createCalls  int
	failCreateOn int
}

func newMemoryRosterRepo() *memoryRosterRepo {
	return &memoryRosterRepo{entries: make(map[string]roster.RosterEntry)}
}

func (m *memoryRosterRepo) Create(_ context.Context, entry roster.RosterEntry) (roster.RosterEntry, error) {
	m.createCalls++
	if m.failCreateOn != 0 && m.createCalls == m.failCreateOn {
		return roster.RosterEntry{}, errStorageDown
	}
	for _, e := range m.entries {
		if e.EmployeeID == entry.EmployeeID && e.Date.Equal(entry.Date) {
			return roster.RosterEntry{}, roster.ErrDuplicateRosterDate
		}
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *memoryRosterRepo) GetByID(_ context.Context, id string) (roster.RosterEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return roster.RosterEntry{}, roster.ErrRosterNotFound
	}
	return entry, nil
}

func (m *memoryRosterRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*roster.RosterEntry, error) {
	for _, e := range m.entries {
		if e.EmployeeID == employeeID && e.Date.Equal(date) {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *memoryRosterRepo) GetApprovedForDate(_ context.Context, employeeID string, date time.Time) (*roster.RosterEntry, error) {
	for _, e := range m.entries {
		if e.EmployeeID == employeeID && e.Date.Equal(date) && e.State == roster.StateApproved {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *memoryRosterRepo) Update(_ context.Context, entry roster.RosterEntry) error {
	if _, ok := m.entries[entry.ID]; !ok {
		return roster.ErrRosterNotFound
	}
	entry.UpdatedAt = time.Now()
	m.entries[entry.ID] = entry
	return nil
}

func (m *memoryRosterRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return roster.ErrRosterNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memoryRosterRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time, states []roster.RosterState) ([]roster.RosterEntry, error) {
	var out []roster.RosterEntry
	for _, e := range m.entries {
		if e.EmployeeID != employeeID || e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		for _, s := range states {
			if e.State == s {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (m *memoryRosterRepo) ListByEmployee(_ context.Context, employeeID string) ([]roster.RosterEntry, error) {
	var out []roster.RosterEntry
	for _, e := range m.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryRosterRepo) ListByBatchID(_ context.Context, batchID string) ([]roster.RosterEntry, error) {
	var out []roster.RosterEntry
	for _, e := range m.entries {
		if e.BatchID != nil && *e.BatchID == batchID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memoryBatchRepo struct {
	batches map[string]roster.SubmissionBatch
}

func newMemoryBatchRepo() *memoryBatchRepo {
	return &memoryBatchRepo{batches: make(map[string]roster.SubmissionBatch)}
}

func (m *memoryBatchRepo) Create(_ context.Context, batch roster.SubmissionBatch) (roster.SubmissionBatch, error) {
	batch.ID = uuid.NewString()
	m.batches[batch.ID] = batch
	return batch, nil
}

func (m *memoryBatchRepo) GetByID(_ context.Context, id string) (roster.SubmissionBatch, error) {
	batch, ok := m.batches[id]
	if !ok {
		return roster.SubmissionBatch{}, roster.ErrBatchNotFound
	}
	return batch, nil
}

func (m *memoryBatchRepo) UpdateState(_ context.Context, id string, state roster.BatchState) error {
	batch, ok := m.batches[id]
	if !ok {
		return roster.ErrBatchNotFound
	}
	batch.State = state
	m.batches[id] = batch
	return nil
}

func (m *memoryBatchRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.batches[id]; !ok {
		return roster.ErrBatchNotFound
	}
	delete(m.batches, id)
	return nil
}

type memoryEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memoryEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memoryEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, emp := range m.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotLinked
}

type recordingNotifier struct {
	queued []notification.QueueRequest
}

func (r *recordingNotifier) Queue(_ context.Context, req notification.QueueRequest) error {
	r.queued = append(r.queued, req)
	return nil
}

func (r *recordingNotifier) SendTransient(context.Context, string, string, string, map[string]string) bool {
	return true
}

func (r *recordingNotifier) List(context.Context, string, bool, int, int) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}

func (r *recordingNotifier) MarkAsRead(context.Context, string, string) error { return nil }
func (r *recordingNotifier) Delete(context.Context, string, string) error     { return nil }
func (r *recordingNotifier) Stop()                                            {}

type fixture struct {
	svc      *RosterServiceImpl
	rosters  *memoryRosterRepo
	batches  *memoryBatchRepo
	notifier *recordingNotifier
}

func newFixture() *fixture {
	userID := "user-1"
	rosters := newMemoryRosterRepo()
	batches := newMemoryBatchRepo()
	notifier := &recordingNotifier{}
	employees := &memoryEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", UserID: &userID, FullName: "Budi Santoso"},
	}}

	return &fixture{
		svc: &RosterServiceImpl{
			RosterRepository:    rosters,
			BatchRepository:     batches,
			EmployeeRepository:  employees,
			notificationService: notifier,
			runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
		rosters:  rosters,
		batches:  batches,
		notifier: notifier,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestSubmitRoster_CreatesRequestedEntries(t *testing.T) {
	t.Parallel()
	f := newFixture()

	resp, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules: []roster.ScheduleItem{
			{Date: "2026-09-01", WorkPatternID: "pat-1"},
			{Date: "2026-09-02", WorkPatternID: "pat-2"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BatchID)
	assert.Len(t, resp.CreatedIDs, 2)
	assert.Empty(t, resp.UpdatedIDs)
	assert.Empty(t, resp.SkippedDates)

	for _, id := range resp.CreatedIDs {
		entry, err := f.rosters.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, roster.StateRequested, entry.State)
		require.NotNil(t, entry.BatchID)
		assert.Equal(t, resp.BatchID, *entry.BatchID)
	}
}

func TestSubmitRoster_RejectedEntryIsOverwritten(t *testing.T) {
	t.Parallel()
	f := newFixture()

	reason := "store is closed"
	approver := "supervisor-1"
	existing, err := f.rosters.Create(context.Background(), roster.RosterEntry{
		EmployeeID:      "emp-1",
		Date:            mustDate(t, "2026-09-01"),
		WorkPatternID:   "pat-old",
		State:           roster.StateRejected,
		RejectionReason: &reason,
		ApproverID:      &approver,
	})
	require.NoError(t, err)

	resp, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules:  []roster.ScheduleItem{{Date: "2026-09-01", WorkPatternID: "pat-new"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{existing.ID}, resp.UpdatedIDs)
	assert.Empty(t, resp.CreatedIDs)

	updated, err := f.rosters.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.StateRequested, updated.State)
	assert.Equal(t, "pat-new", updated.WorkPatternID)
	assert.Nil(t, updated.RejectionReason)
	assert.Nil(t, updated.ApproverID)
}

func TestSubmitRoster_SkipsRequestedAndApprovedDates(t *testing.T) {
	t.Parallel()
	f := newFixture()

	for date, state := range map[string]roster.RosterState{
		"2026-09-01": roster.StateRequested,
		"2026-09-02": roster.StateApproved,
	} {
		_, err := f.rosters.Create(context.Background(), roster.RosterEntry{
			EmployeeID:    "emp-1",
			Date:          mustDate(t, date),
			WorkPatternID: "pat-old",
			State:         state,
		})
		require.NoError(t, err)
	}

	resp, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules: []roster.ScheduleItem{
			{Date: "2026-09-01", WorkPatternID: "pat-new"},
			{Date: "2026-09-02", WorkPatternID: "pat-new"},
			{Date: "2026-09-03", WorkPatternID: "pat-new"},
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"2026-09-01", "2026-09-02"}, resp.SkippedDates)
	assert.Len(t, resp.CreatedIDs, 1)
	assert.Empty(t, resp.UpdatedIDs)

	// Skipped entries keep their original pattern.
	for _, e := range f.rosters.entries {
		if e.Date.Equal(mustDate(t, "2026-09-01")) || e.Date.Equal(mustDate(t, "2026-09-02")) {
			assert.Equal(t, "pat-old", e.WorkPatternID)
		}
	}
}

func TestSubmitRoster_RequiresSchedules(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{EmployeeID: "emp-1"})
	require.Error(t, err)
}

func TestApprove_StampsApproverAndNotifies(t *testing.T) {
	t.Parallel()
	f := newFixture()

	entry, err := f.rosters.Create(context.Background(), roster.RosterEntry{
		EmployeeID:    "emp-1",
		Date:          mustDate(t, "2026-09-05"),
		WorkPatternID: "pat-1",
		State:         roster.StateRequested,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(context.Background(), entry.ID, "supervisor-1"))

	approved, err := f.rosters.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.StateApproved, approved.State)
	require.NotNil(t, approved.ApproverID)
	assert.Equal(t, "supervisor-1", *approved.ApproverID)

	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "user-1", f.notifier.queued[0].UserID)
	assert.Equal(t, notification.TypeScheduleStatusChange, f.notifier.queued[0].Type)
	assert.Equal(t, "approved", f.notifier.queued[0].Data["status"])
	assert.Equal(t, "2026-09-05", f.notifier.queued[0].Data["date"])
}

func TestReject_RequiresReason(t *testing.T) {
	t.Parallel()
	f := newFixture()

	err := f.svc.Reject(context.Background(), roster.RejectRosterRequest{ID: "any"}, "supervisor-1")
	require.Error(t, err)
}

func TestReject_StoresReason(t *testing.T) {
	t.Parallel()
	f := newFixture()

	entry, err := f.rosters.Create(context.Background(), roster.RosterEntry{
		EmployeeID:    "emp-1",
		Date:          mustDate(t, "2026-09-05"),
		WorkPatternID: "pat-1",
		State:         roster.StateRequested,
	})
	require.NoError(t, err)

	err = f.svc.Reject(context.Background(), roster.RejectRosterRequest{
		ID:     entry.ID,
		Reason: "understaffed that day",
	}, "supervisor-1")
	require.NoError(t, err)

	rejected, err := f.rosters.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.StateRejected, rejected.State)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "understaffed that day", *rejected.RejectionReason)
}

func TestResetToDraft_ClearsDecision(t *testing.T) {
	t.Parallel()
	f := newFixture()

	reason := "typo"
	approver := "supervisor-1"
	entry, err := f.rosters.Create(context.Background(), roster.RosterEntry{
		EmployeeID:      "emp-1",
		Date:            mustDate(t, "2026-09-05"),
		WorkPatternID:   "pat-1",
		State:           roster.StateRejected,
		RejectionReason: &reason,
		ApproverID:      &approver,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetToDraft(context.Background(), entry.ID))

	reset, err := f.rosters.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.StateDraft, reset.State)
	assert.Nil(t, reset.RejectionReason)
	assert.Nil(t, reset.ApproverID)
}

func TestCancelByEmployee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		state      roster.RosterState
		callerID   string
		wantErr    error
		wantPolicy bool
		deleted    bool
	}{
		{name: "requested entry by owner is deleted", state: roster.StateRequested, callerID: "emp-1", deleted: true},
		{name: "other employee is rejected", state: roster.StateRequested, callerID: "emp-2", wantErr: roster.ErrNotRosterOwner},
		{name: "approved entry cannot be cancelled", state: roster.StateApproved, callerID: "emp-1", wantPolicy: true},
		{name: "rejected entry cannot be cancelled", state: roster.StateRejected, callerID: "emp-1", wantPolicy: true},
		{name: "draft entry cannot be cancelled", state: roster.StateDraft, callerID: "emp-1", wantPolicy: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()

			entry, err := f.rosters.Create(context.Background(), roster.RosterEntry{
				EmployeeID:    "emp-1",
				Date:          mustDate(t, "2026-09-05"),
				WorkPatternID: "pat-1",
				State:         tt.state,
			})
			require.NoError(t, err)

			err = f.svc.CancelByEmployee(context.Background(), entry.ID, tt.callerID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantPolicy:
				var policyErr *roster.CancelNotAllowedError
				require.True(t, errors.As(err, &policyErr))
				assert.Equal(t, tt.state, policyErr.State)
			default:
				require.NoError(t, err)
			}

			_, getErr := f.rosters.GetByID(context.Background(), entry.ID)
			if tt.deleted {
				assert.ErrorIs(t, getErr, roster.ErrRosterNotFound)
			} else {
				assert.NoError(t, getErr, "entry must be left unchanged")
			}
		})
	}
}

func TestApproveBatch_ApprovesMembersAndBatch(t *testing.T) {
	t.Parallel()
	f := newFixture()

	resp, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules: []roster.ScheduleItem{
			{Date: "2026-09-01", WorkPatternID: "pat-1"},
			{Date: "2026-09-02", WorkPatternID: "pat-1"},
			{Date: "2026-09-03", WorkPatternID: "pat-1"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ApproveBatch(context.Background(), resp.BatchID, "supervisor-1"))

	batch, err := f.batches.GetByID(context.Background(), resp.BatchID)
	require.NoError(t, err)
	assert.Equal(t, roster.BatchApproved, batch.State)

	members, err := f.rosters.ListByBatchID(context.Background(), resp.BatchID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	for _, entry := range members {
		assert.Equal(t, roster.StateApproved, entry.State)
	}

	// One notification per member entry.
	assert.Len(t, f.notifier.queued, 3)
}

func TestRejectBatch_LeavesMembersUntouched(t *testing.T) {
	t.Parallel()
	f := newFixture()

	resp, err := f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules: []roster.ScheduleItem{
			{Date: "2026-09-01", WorkPatternID: "pat-1"},
			{Date: "2026-09-02", WorkPatternID: "pat-1"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RejectBatch(context.Background(), resp.BatchID))

	batch, err := f.batches.GetByID(context.Background(), resp.BatchID)
	require.NoError(t, err)
	assert.Equal(t, roster.BatchRejected, batch.State)

	members, err := f.rosters.ListByBatchID(context.Background(), resp.BatchID)
	require.NoError(t, err)
	for _, entry := range members {
		assert.Equal(t, roster.StateRequested, entry.State, "batch reject must not cascade to members")
	}
}

func TestGetBookedDates_FiltersToRequestedAndApproved(t *testing.T) {
	t.Parallel()
	f := newFixture()

	for date, state := range map[string]roster.RosterState{
		"2026-09-01": roster.StateRequested,
		"2026-09-02": roster.StateApproved,
		"2026-09-03": roster.StateDraft,
		"2026-09-04": roster.StateRejected,
	} {
		_, err := f.rosters.Create(context.Background(), roster.RosterEntry{
			EmployeeID:    "emp-1",
			Date:          mustDate(t, date),
			WorkPatternID: "pat-1",
			State:         state,
		})
		require.NoError(t, err)
	}

	booked, err := f.svc.GetBookedDates(context.Background(), "emp-1", "2026-09-01", "2026-09-30")
	require.NoError(t, err)

	dates := make([]string, 0, len(booked))
	for _, b := range booked {
		dates = append(dates, b.Date)
	}
	assert.ElementsMatch(t, []string{"2026-09-01", "2026-09-02"}, dates)
}

// useRollbackTx swaps the pass-through runTx for one that snapshots both
// stores and restores them when the wrapped function fails, mirroring a
// database rollback.
func (f *fixture) useRollbackTx() {
	f.svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		rosterSnap := make(map[string]roster.RosterEntry, len(f.rosters.entries))
		for id, e := range f.rosters.entries {
			rosterSnap[id] = e
		}
		batchSnap := make(map[string]roster.SubmissionBatch, len(f.batches.batches))
		for id, b := range f.batches.batches {
			batchSnap[id] = b
		}

		if err := fn(ctx); err != nil {
			f.rosters.entries = rosterSnap
			f.batches.batches = batchSnap
			return err
		}
		return nil
	}
}

func TestSubmitRoster_MidBatchFailureLeavesNoPartialWrites(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.useRollbackTx()

	reason := "Toko tutup"
	rejected, err := f.rosters.Create(context.Background(), roster.RosterEntry{
		EmployeeID:      "emp-1",
		Date:            mustDate(t, "2026-09-02"),
		WorkPatternID:   "pat-old",
		State:           roster.StateRejected,
		RejectionReason: &reason,
	})
	require.NoError(t, err)

	// Day 1 and day 3 need inserts; the second insert fails mid-batch.
	f.rosters.failCreateOn = f.rosters.createCalls + 2

	_, err = f.svc.SubmitRoster(context.Background(), roster.SubmitRosterRequest{
		EmployeeID: "emp-1",
		Schedules: []roster.ScheduleItem{
			{Date: "2026-09-01", WorkPatternID: "pat-1"},
			{Date: "2026-09-02", WorkPatternID: "pat-1"},
			{Date: "2026-09-03", WorkPatternID: "pat-1"},
		},
	})
	require.ErrorIs(t, err, errStorageDown)

	assert.Empty(t, f.batches.batches, "no batch row may survive a failed submission")
	require.Len(t, f.rosters.entries, 1, "only the pre-existing entry may remain")

	kept := f.rosters.entries[rejected.ID]
	assert.Equal(t, roster.StateRejected, kept.State)
	assert.Equal(t, "pat-old", kept.WorkPatternID)
	require.NotNil(t, kept.RejectionReason)
	assert.Equal(t, reason, *kept.RejectionReason)
	assert.Nil(t, kept.BatchID)
}

func TestCancelBatchByEmployee(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		employeeID string
		state      roster.BatchState
		wantErr    error
	}{
		{"owner cancels requested batch", "emp-1", roster.BatchRequested, nil},
		{"not the owner", "emp-2", roster.BatchRequested, roster.ErrNotBatchOwner},
		{"approved batch", "emp-1", roster.BatchApproved, roster.ErrBatchNotCancellable},
		{"rejected batch", "emp-1", roster.BatchRejected, roster.ErrBatchNotCancellable},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()

			batch, err := f.batches.Create(context.Background(), roster.SubmissionBatch{
				EmployeeID: "emp-1",
				State:      c.state,
			})
			require.NoError(t, err)

			err = f.svc.CancelBatchByEmployee(context.Background(), batch.ID, c.employeeID)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				_, getErr := f.batches.GetByID(context.Background(), batch.ID)
				assert.NoError(t, getErr, "a refused cancellation must leave the batch in place")
				return
			}

			require.NoError(t, err)
			_, getErr := f.batches.GetByID(context.Background(), batch.ID)
			assert.ErrorIs(t, getErr, roster.ErrBatchNotFound)
		})
	}
}
