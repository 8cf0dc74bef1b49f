package session

import (
	"context"
	"errors"
	"testing"

	"github.com/facebookgo/clock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/mocks/business/wallet_business"
	"github.com/dugiahuy/session-billing/billing/mocks/repository/session_repo"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/pricing"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
	"github.com/dugiahuy/session-billing/billing/safety"
)

func stringPtr(s string) *string {
	return &s
}

func errCodeOf(err error) errs.ErrCode {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errs.Unknown
}

// startedRow is a stored session created by the same request as validParams.
func startedRow(state model.SessionState) sessions.Session {
	return sessions.Session{
		PayerAccountID:  "payer-1",
		EarnerAccountID: pgtype.Text{String: "earner-1", Valid: true},
		Kind:            string(model.SessionKindVoice),
		Tier:            string(model.TierStandard),
		State:           string(state),
		PricePerMinute:  10,
		IdempotencyKey:  "start-key-1",
	}
}

func defaultCatalog(t *testing.T) *pricing.Catalog {
	t.Helper()
	snapshot, err := pricing.Default()
	require.NoError(t, err)
	return pricing.NewCatalog(snapshot)
}

func TestStartSession(t *testing.T) {
	validParams := func() *model.StartSessionParams {
		return &model.StartSessionParams{
			PayerAccountID:  "payer-1",
			EarnerAccountID: stringPtr("earner-1"),
			Kind:            model.SessionKindVoice,
			Tier:            model.TierStandard,
			IdempotencyKey:  "start-key-1",
		}
	}

	testCases := []struct {
		name           string
		params         func() *model.StartSessionParams
		emptyCatalog   bool
		setup          func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness)
		gate           safety.GateFunc
		expectedCode   errs.ErrCode
		expectedError  string
		expectGateCall bool
		check          func(t *testing.T, s *model.Session)
	}{
		{
			name:          "missing_payer",
			params:        func() *model.StartSessionParams { p := validParams(); p.PayerAccountID = ""; return p },
			expectedCode:  errs.InvalidArgument,
			expectedError: "payer account id is required",
		},
		{
			name:          "payer_is_earner",
			params:        func() *model.StartSessionParams { p := validParams(); p.EarnerAccountID = stringPtr("payer-1"); return p },
			expectedCode:  errs.InvalidArgument,
			expectedError: "payer cannot be the earner",
		},
		{
			name:          "unknown_kind",
			params:        func() *model.StartSessionParams { p := validParams(); p.Kind = "CHAT"; return p },
			expectedCode:  errs.InvalidArgument,
			expectedError: "unknown session kind",
		},
		{
			name:          "unknown_tier",
			params:        func() *model.StartSessionParams { p := validParams(); p.Tier = "GOLD"; return p },
			expectedCode:  errs.InvalidArgument,
			expectedError: "unknown tier",
		},
		{
			name:   "repeated_key_returns_existing_session",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(startedRow(model.SessionStateActive), nil)
			},
			check: func(t *testing.T, s *model.Session) {
				assert.Equal(t, model.SessionStateActive, s.State)
				assert.Equal(t, int64(10), s.PricePerMinute)
			},
		},
		{
			name:   "repeated_key_for_another_payer_is_refused",
			params: func() *model.StartSessionParams { p := validParams(); p.PayerAccountID = "payer-2"; return p },
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(startedRow(model.SessionStateActive), nil)
			},
			expectedCode:  errs.AlreadyExists,
			expectedError: "idempotency key reused with different parameters",
		},
		{
			name:   "repeated_key_with_other_tier_is_refused",
			params: func() *model.StartSessionParams { p := validParams(); p.Tier = model.TierVIP; return p },
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(startedRow(model.SessionStateActive), nil)
			},
			expectedCode:  errs.AlreadyExists,
			expectedError: "idempotency key reused with different parameters",
		},
		{
			name:   "repeated_key_without_earner_is_refused",
			params: func() *model.StartSessionParams { p := validParams(); p.EarnerAccountID = nil; return p },
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(startedRow(model.SessionStateActive), nil)
			},
			expectedCode:  errs.AlreadyExists,
			expectedError: "idempotency key reused with different parameters",
		},
		{
			name:   "repeated_key_of_rejected_start_stays_rejected",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				row := startedRow(model.SessionStateCancelled)
				row.EndReason = pgtype.Text{String: string(model.EndReasonSafetyViolation), Valid: true}
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(row, nil)
			},
			expectedCode:  errs.PermissionDenied,
			expectedError: "rejected by safety check",
		},
		{
			name:   "idempotency_lookup_fails",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, errors.New("io"))
			},
			expectedCode: errs.Unavailable,
		},
		{
			name:   "payer_not_found",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").
					Return(nil, &errs.Error{Code: errs.NotFound, Message: "account not found"})
			},
			expectedCode:  errs.NotFound,
			expectedError: "account not found",
		},
		{
			name:         "rate_not_configured_creates_nothing",
			params:       validParams,
			emptyCatalog: true,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1"}, nil)
			},
			expectedCode:  errs.FailedPrecondition,
			expectedError: "rate not configured",
		},
		{
			name:   "gate_unavailable",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1"}, nil)
			},
			gate: func(ctx context.Context, payer, counterparty string, kind model.SessionKind) (safety.Verdict, error) {
				return safety.Verdict{}, errors.New("timeout")
			},
			expectGateCall: true,
			expectedCode:   errs.Unavailable,
		},
		{
			name:   "gate_rejects_records_cancelled_session",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1"}, nil)
				repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg sessions.CreateSessionParams) (sessions.Session, error) {
						assert.Equal(t, string(model.SessionStateCancelled), arg.State)
						assert.Equal(t, string(model.EndReasonSafetyViolation), arg.EndReason.String)
						assert.False(t, arg.StartedAt.Valid)
						assert.True(t, arg.EndedAt.Valid)
						return sessions.Session{ID: arg.ID, State: arg.State}, nil
					})
			},
			gate: func(ctx context.Context, payer, counterparty string, kind model.SessionKind) (safety.Verdict, error) {
				return safety.Verdict{Allowed: false, Reason: "counterparty blocked"}, nil
			},
			expectGateCall: true,
			expectedCode:   errs.PermissionDenied,
			expectedError:  "counterparty blocked",
		},
		{
			name:   "starts_active_session_with_frozen_pricing",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1", Balance: 100}, nil)
				repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg sessions.CreateSessionParams) (sessions.Session, error) {
						assert.Equal(t, string(model.SessionStateActive), arg.State)
						assert.Equal(t, int64(10), arg.PricePerMinute)
						assert.Equal(t, string(model.SplitContextEarnerSession), arg.SplitContext)
						assert.Equal(t, int32(6500), arg.EarnerShareBps)
						assert.Equal(t, "platform", arg.PlatformAccountID)
						assert.Equal(t, "2026-10-01", arg.RateVersion)
						assert.Equal(t, "earner-1", arg.EarnerAccountID.String)
						assert.Equal(t, WorkflowID(arg.ID), arg.WorkflowID.String)
						assert.True(t, arg.StartedAt.Valid)
						return sessions.Session{
							ID:             arg.ID,
							State:          arg.State,
							PricePerMinute: arg.PricePerMinute,
							StartedAt:      arg.StartedAt,
							WorkflowID:     arg.WorkflowID,
						}, nil
					})
			},
			gate: func(ctx context.Context, payer, counterparty string, kind model.SessionKind) (safety.Verdict, error) {
				assert.Equal(t, "payer-1", payer)
				assert.Equal(t, "earner-1", counterparty)
				return safety.Verdict{Allowed: true}, nil
			},
			expectGateCall: true,
			check: func(t *testing.T, s *model.Session) {
				assert.Equal(t, model.SessionStateActive, s.State)
				assert.Equal(t, int64(0), s.BilledMinutes)
				assert.Equal(t, int64(0), s.TotalCharged)
				require.NotNil(t, s.StartedAt)
				require.NotNil(t, s.WorkflowID)
			},
		},
		{
			name:   "concurrent_start_with_same_key_returns_winner",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				gomock.InOrder(
					repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows),
					repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
						Return(sessions.Session{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
					repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(startedRow(model.SessionStateActive), nil),
				)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1"}, nil)
			},
			expectGateCall: true,
			check: func(t *testing.T, s *model.Session) {
				assert.Equal(t, "start-key-1", s.IdempotencyKey)
			},
		},
		{
			name:   "create_fails",
			params: validParams,
			setup: func(repo *session_repo.MockQuerier, wallet *wallet_business.MockBusiness) {
				repo.EXPECT().GetSessionByIdempotencyKey(gomock.Any(), "start-key-1").Return(sessions.Session{}, pgx.ErrNoRows)
				wallet.EXPECT().GetAccount(gomock.Any(), "payer-1").Return(&model.Account{ID: "payer-1"}, nil)
				repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(sessions.Session{}, errors.New("io"))
			},
			expectGateCall: true,
			expectedCode:   errs.Unavailable,
			expectedError:  "failed to create session",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := session_repo.NewMockQuerier(ctrl)
			mockWallet := wallet_business.NewMockBusiness(ctrl)
			if tc.setup != nil {
				tc.setup(mockRepo, mockWallet)
			}

			gateCalls := 0
			gate := tc.gate
			if gate == nil {
				gate = func(context.Context, string, string, model.SessionKind) (safety.Verdict, error) {
					return safety.Verdict{Allowed: true}, nil
				}
			}

			catalog := defaultCatalog(t)
			if tc.emptyCatalog {
				catalog = pricing.NewCatalog(&pricing.Snapshot{})
			}

			b := &business{
				sessionRepo: mockRepo,
				wallet:      mockWallet,
				catalog:     catalog,
				clock:       clock.NewMock(),
				gate: safety.GateFunc(func(ctx context.Context, payer, counterparty string, kind model.SessionKind) (safety.Verdict, error) {
					gateCalls++
					return gate(ctx, payer, counterparty, kind)
				}),
			}

			result, err := b.StartSession(context.Background(), tc.params())

			if tc.expectGateCall {
				assert.Equal(t, 1, gateCalls)
			} else {
				assert.Zero(t, gateCalls)
			}

			if tc.expectedCode != errs.OK {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errCodeOf(err))
				if tc.expectedError != "" {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			if tc.check != nil {
				tc.check(t, result)
			}
		})
	}
}
