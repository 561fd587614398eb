package kernel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"actionkernel/internal/kernel/mocks"
	"actionkernel/internal/kernel/sink"
	"actionkernel/internal/routing"
	dErrors "actionkernel/pkg/domain-errors"
	"actionkernel/pkg/platform/sentinel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRouteBatch(t *testing.T) {
	transcripts := []string{"call mom", "open settings", "search the web for cats", "play music", "turn on wifi"}
	req := RouteRequest{
		Profile: phoneProfile(),
		Options: routing.Options{ConsentToken: explicitToken()},
	}

	t.Run("results keep input order and every attempt is audited", func(t *testing.T) {
		mem := sink.NewInMemorySink()
		svc := New(append(newDeterministicOptions(), WithAuditSink(mem), WithBatchConcurrency(2))...)

		got, err := svc.RouteBatch(context.Background(), transcripts, req)

		require.NoError(t, err)
		require.Len(t, got, len(transcripts))
		for i, sug := range got {
			assert.Equal(t, transcripts[i], sug.Command.Text)
			assert.Equal(t, routing.ModeSymbolic, sug.Route.Mode)
		}
		assert.Len(t, mem.PrivacyEvents(), len(transcripts))
		assert.Len(t, mem.RouteEvents(), len(transcripts))
	})

	t.Run("batch matches routing one by one", func(t *testing.T) {
		svc := New(newDeterministicOptions()...)

		got, err := svc.RouteBatch(context.Background(), transcripts, req)
		require.NoError(t, err)

		for i, transcript := range transcripts {
			single, err := svc.RouteTranscript(context.Background(), transcript, req)
			require.NoError(t, err)
			assert.Equal(t, single.Accepted, got[i].Accepted, transcript)
			assert.Equal(t, single.Reason, got[i].Reason, transcript)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		got, err := New().RouteBatch(context.Background(), nil, req)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := New().RouteBatch(ctx, transcripts, req)

		assert.Nil(t, got)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout), "got %v", err)
	})

	t.Run("sink failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		failing := mocks.NewMockAuditSink(ctrl)
		failing.EXPECT().RecordPrivacy(gomock.Any(), gomock.Any()).Return(sentinel.ErrUnavailable).AnyTimes()
		svc := New(append(newDeterministicOptions(), WithAuditSink(failing), WithBatchConcurrency(1))...)

		got, err := svc.RouteBatch(context.Background(), transcripts, req)

		assert.Nil(t, got)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal), "got %v", err)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}
