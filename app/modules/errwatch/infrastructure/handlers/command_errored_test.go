package errwatchhandlers

import (
	"context"
	"log/slog"
	"testing"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

func newTestHandlers(service *FakeErrwatchService) *ErrwatchHandlers {
	return NewErrwatchHandlers(service, slog.New(slog.DiscardHandler))
}

func TestErrwatchHandlers_HandleCommandErrored(t *testing.T) {
	tests := []struct {
		name       string
		payload    *errwatchevents.CommandErroredPayloadV1
		setupFake  func(*FakeErrwatchService)
		wantErr    bool
		wantTopics []string
	}{
		{
			name:    "skipped verdict produces no messages",
			payload: &errwatchevents.CommandErroredPayloadV1{UserID: "user-1", CommandName: "ping"},
			setupFake: func(f *FakeErrwatchService) {
				f.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
					return shared.SuccessResult(&errwatchtypes.ErrorVerdict{
						Skipped:    true,
						SkipReason: "watcher disabled",
					}), nil
				}
			},
			wantTopics: nil,
		},
		{
			name:    "counted error warns",
			payload: &errwatchevents.CommandErroredPayloadV1{UserID: "user-1", ChannelID: "chan-1", CommandName: "ping"},
			setupFake: func(f *FakeErrwatchService) {
				f.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
					return shared.SuccessResult(&errwatchtypes.ErrorVerdict{
						UserID:      "user-1",
						ChannelID:   "chan-1",
						CommandName: "ping",
						Count:       1,
						Warn:        true,
						WarnMessage: "stop",
					}), nil
				}
			},
			wantTopics: []string{errwatchevents.UserWarnedV1},
		},
		{
			name:    "threshold reached warns and blacklists",
			payload: &errwatchevents.CommandErroredPayloadV1{UserID: "user-1", ChannelID: "chan-1", CommandName: "ping"},
			setupFake: func(f *FakeErrwatchService) {
				f.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
					return shared.SuccessResult(&errwatchtypes.ErrorVerdict{
						UserID:      "user-1",
						ChannelID:   "chan-1",
						CommandName: "ping",
						Count:       5,
						Warn:        true,
						WarnMessage: "stop",
						Blacklisted: true,
					}), nil
				}
			},
			wantTopics: []string{errwatchevents.UserWarnedV1, errwatchevents.UserBlacklistedV1},
		},
		{
			name:    "blacklist without warning",
			payload: &errwatchevents.CommandErroredPayloadV1{UserID: "user-1", CommandName: "ping"},
			setupFake: func(f *FakeErrwatchService) {
				f.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
					return shared.SuccessResult(&errwatchtypes.ErrorVerdict{
						UserID:      "user-1",
						CommandName: "ping",
						Count:       5,
						Blacklisted: true,
					}), nil
				}
			},
			wantTopics: []string{errwatchevents.UserBlacklistedV1},
		},
		{
			name:    "nil payload",
			payload: nil,
			wantErr: true,
		},
		{
			name:    "service error",
			payload: &errwatchevents.CommandErroredPayloadV1{UserID: "user-1", CommandName: "ping"},
			setupFake: func(f *FakeErrwatchService) {
				f.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
					return shared.OperationResult{}, context.DeadlineExceeded
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeService := NewFakeErrwatchService()
			if tt.setupFake != nil {
				tt.setupFake(fakeService)
			}

			h := newTestHandlers(fakeService)
			res, err := h.HandleCommandErrored(context.Background(), tt.payload)

			if (err != nil) != tt.wantErr {
				t.Errorf("got error %v, want error %v", err, tt.wantErr)
			}
			if len(res) != len(tt.wantTopics) {
				t.Fatalf("got %d results, want %d", len(res), len(tt.wantTopics))
			}
			for i, topic := range tt.wantTopics {
				if res[i].Topic != topic {
					t.Errorf("result %d: got topic %s, want %s", i, res[i].Topic, topic)
				}
			}
		})
	}
}

func TestErrwatchHandlers_HandleCommandErrored_ConvertsPayload(t *testing.T) {
	fakeService := NewFakeErrwatchService()
	var gotReport *errwatchtypes.CommandErrorReport
	fakeService.RecordCommandErrorFunc = func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
		gotReport = report
		return shared.SuccessResult(&errwatchtypes.ErrorVerdict{Skipped: true}), nil
	}

	h := newTestHandlers(fakeService)
	_, err := h.HandleCommandErrored(context.Background(), &errwatchevents.CommandErroredPayloadV1{
		UserID:           "user-1",
		GuildID:          "guild-1",
		ChannelID:        "chan-1",
		CommandName:      "ping",
		CogName:          "Utility",
		InvokeError:      true,
		HandledElsewhere: false,
		InvokerIsOwner:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotReport == nil {
		t.Fatal("expected service call")
	}
	if gotReport.UserID != "user-1" || gotReport.GuildID != "guild-1" ||
		gotReport.ChannelID != "chan-1" || gotReport.CommandName != "ping" ||
		gotReport.CogName != "Utility" || !gotReport.InvokeError || !gotReport.InvokerIsOwner {
		t.Errorf("unexpected report: %+v", gotReport)
	}
}
