package session

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dugiahuy/session-billing/billing/repository/accounts"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// memStore is a transactional in-memory stand-in for Postgres. Row locks taken by
// GetSessionForUpdate are held until the owning transaction ends, and a rollback undoes every write
// made through that transaction.
type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]sessions.Session
	accounts map[string]int64
	charges  []charges.SessionCharge
	rowLocks map[uuid.UUID]*sync.Mutex
	nextID   int64

	// failCreateCharge, when set, is returned by the next CreateCharge calls.
	failCreateCharge error
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[uuid.UUID]sessions.Session),
		accounts: make(map[string]int64),
		rowLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{store: s}, nil
}

func (s *memStore) fund(id string, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[id] += amount
}

func (s *memStore) balance(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id]
}

func (s *memStore) session(id uuid.UUID) sessions.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *memStore) chargesFor(id uuid.UUID) []charges.SessionCharge {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []charges.SessionCharge
	for _, c := range s.charges {
		if c.SessionID == id {
			out = append(out, c)
		}
	}
	return out
}

func (s *memStore) setFailCreateCharge(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCreateCharge = err
}

func (s *memStore) rowLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	return l
}

type memTx struct {
	pgx.Tx
	store *memStore
	undo  []func()
	locks []*sync.Mutex
	done  bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish(false)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish(true)
	return nil
}

func (t *memTx) finish(rollback bool) {
	t.done = true
	if rollback {
		t.store.mu.Lock()
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
		t.store.mu.Unlock()
	}
	t.undo = nil
	for _, l := range t.locks {
		l.Unlock()
	}
	t.locks = nil
}

// onUndo registers a compensating write; the caller holds store.mu.
func onUndo(tx *memTx, fn func()) {
	if tx != nil {
		tx.undo = append(tx.undo, fn)
	}
}

func asMemTx(tx pgx.Tx) *memTx {
	m, _ := tx.(*memTx)
	return m
}

type memSessions struct {
	store *memStore
	tx    *memTx
}

var _ sessions.Querier = memSessions{}

func (q memSessions) WithTx(tx pgx.Tx) sessions.Querier {
	return memSessions{store: q.store, tx: asMemTx(tx)}
}

func (q memSessions) AdvanceBilledMinutes(ctx context.Context, arg sessions.AdvanceBilledMinutesParams) (int64, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.sessions[arg.ID]
	if !ok || row.State != "ACTIVE" || row.BilledMinutes != arg.ExpectedBilledMinutes || arg.BilledMinutes < row.BilledMinutes {
		return 0, nil
	}
	prev := row
	row.BilledMinutes = arg.BilledMinutes
	row.TotalCharged = arg.TotalCharged
	s.sessions[arg.ID] = row
	onUndo(q.tx, func() { s.sessions[arg.ID] = prev })
	return 1, nil
}

func (q memSessions) CountSessionsByPayer(ctx context.Context, payerAccountID string) (int64, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, row := range s.sessions {
		if row.PayerAccountID == payerAccountID {
			n++
		}
	}
	return n, nil
}

func (q memSessions) CreateSession(ctx context.Context, arg sessions.CreateSessionParams) (sessions.Session, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.sessions {
		if row.IdempotencyKey == arg.IdempotencyKey {
			return sessions.Session{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		}
	}
	if _, ok := s.accounts[arg.PayerAccountID]; !ok {
		return sessions.Session{}, &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	}

	row := sessions.Session{
		ID:                arg.ID,
		PayerAccountID:    arg.PayerAccountID,
		EarnerAccountID:   arg.EarnerAccountID,
		PlatformAccountID: arg.PlatformAccountID,
		Kind:              arg.Kind,
		Tier:              arg.Tier,
		PricePerMinute:    arg.PricePerMinute,
		SplitContext:      arg.SplitContext,
		EarnerShareBps:    arg.EarnerShareBps,
		RateVersion:       arg.RateVersion,
		State:             arg.State,
		StartedAt:         arg.StartedAt,
		EndedAt:           arg.EndedAt,
		EndReason:         arg.EndReason,
		IdempotencyKey:    arg.IdempotencyKey,
		WorkflowID:        arg.WorkflowID,
	}
	s.sessions[arg.ID] = row
	onUndo(q.tx, func() { delete(s.sessions, arg.ID) })
	return row, nil
}

func (q memSessions) EndSession(ctx context.Context, arg sessions.EndSessionParams) (int64, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.sessions[arg.ID]
	if !ok || row.State != "ACTIVE" {
		return 0, nil
	}
	prev := row
	row.State = arg.State
	row.EndReason = arg.EndReason
	row.EndedAt = arg.EndedAt
	s.sessions[arg.ID] = row
	onUndo(q.tx, func() { s.sessions[arg.ID] = prev })
	return 1, nil
}

func (q memSessions) GetSession(ctx context.Context, id uuid.UUID) (sessions.Session, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.sessions[id]
	if !ok {
		return sessions.Session{}, pgx.ErrNoRows
	}
	return row, nil
}

func (q memSessions) GetSessionByIdempotencyKey(ctx context.Context, idempotencyKey string) (sessions.Session, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.sessions {
		if row.IdempotencyKey == idempotencyKey {
			return row, nil
		}
	}
	return sessions.Session{}, pgx.ErrNoRows
}

func (q memSessions) GetSessionForUpdate(ctx context.Context, id uuid.UUID) (sessions.Session, error) {
	if _, err := q.GetSession(ctx, id); err != nil {
		return sessions.Session{}, err
	}
	l := q.store.rowLock(id)
	l.Lock()
	if q.tx != nil {
		q.tx.locks = append(q.tx.locks, l)
	}
	return q.GetSession(ctx, id)
}

func (q memSessions) ListSessionsByPayer(ctx context.Context, arg sessions.ListSessionsByPayerParams) ([]sessions.Session, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []sessions.Session
	for _, row := range s.sessions {
		if row.PayerAccountID == arg.PayerAccountID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	if int(arg.Offset) >= len(out) {
		return nil, nil
	}
	out = out[arg.Offset:]
	if int(arg.Limit) < len(out) {
		out = out[:arg.Limit]
	}
	return out, nil
}

type memAccounts struct {
	store *memStore
	tx    *memTx
}

var _ accounts.Querier = memAccounts{}

func (q memAccounts) WithTx(tx pgx.Tx) accounts.Querier {
	return memAccounts{store: q.store, tx: asMemTx(tx)}
}

func (q memAccounts) CreditAccount(ctx context.Context, arg accounts.CreditAccountParams) (accounts.Account, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// balances are undone by delta; other transactions may have touched the account meanwhile
	s.accounts[arg.ID] += arg.Amount
	onUndo(q.tx, func() { s.accounts[arg.ID] -= arg.Amount })
	return accounts.Account{ID: arg.ID, Balance: s.accounts[arg.ID]}, nil
}

func (q memAccounts) DebitAccountIfSufficient(ctx context.Context, arg accounts.DebitAccountIfSufficientParams) (accounts.Account, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.accounts[arg.ID]
	if !ok || prev < arg.Amount {
		return accounts.Account{}, pgx.ErrNoRows
	}
	s.accounts[arg.ID] = prev - arg.Amount
	onUndo(q.tx, func() { s.accounts[arg.ID] += arg.Amount })
	return accounts.Account{ID: arg.ID, Balance: prev - arg.Amount}, nil
}

func (q memAccounts) GetAccount(ctx context.Context, id string) (accounts.Account, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()
	bal, ok := s.accounts[id]
	if !ok {
		return accounts.Account{}, pgx.ErrNoRows
	}
	return accounts.Account{ID: id, Balance: bal}, nil
}

type memCharges struct {
	store *memStore
	tx    *memTx
}

var _ charges.Querier = memCharges{}

func (q memCharges) WithTx(tx pgx.Tx) charges.Querier {
	return memCharges{store: q.store, tx: asMemTx(tx)}
}

func (q memCharges) CreateCharge(ctx context.Context, arg charges.CreateChargeParams) (charges.SessionCharge, error) {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCreateCharge != nil {
		return charges.SessionCharge{}, s.failCreateCharge
	}
	for _, c := range s.charges {
		if c.SessionID == arg.SessionID && c.FromMinute == arg.FromMinute {
			return charges.SessionCharge{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		}
	}

	s.nextID++
	row := charges.SessionCharge{
		ID:                s.nextID,
		SessionID:         arg.SessionID,
		FromMinute:        arg.FromMinute,
		Minutes:           arg.Minutes,
		Amount:            arg.Amount,
		PayerAccountID:    arg.PayerAccountID,
		PlatformAccountID: arg.PlatformAccountID,
		PlatformAmount:    arg.PlatformAmount,
		EarnerAccountID:   arg.EarnerAccountID,
		EarnerAmount:      arg.EarnerAmount,
		CreatedAt:         pgtype.Timestamptz{Valid: true},
	}
	s.charges = append(s.charges, row)
	onUndo(q.tx, func() {
		for i, c := range s.charges {
			if c.ID == row.ID {
				s.charges = append(s.charges[:i], s.charges[i+1:]...)
				return
			}
		}
	})
	return row, nil
}

func (q memCharges) ListChargesBySession(ctx context.Context, sessionID uuid.UUID) ([]charges.SessionCharge, error) {
	out := q.store.chargesFor(sessionID)
	sort.Slice(out, func(i, j int) bool { return out[i].FromMinute < out[j].FromMinute })
	return out, nil
}
