package approving

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestResolveRef(t *testing.T) {
	id := int64(42)

	tests := []struct {
		name    string
		kind    domain.ApprovalKind
		input   string
		want    domain.ApprovalRef
		wantErr bool
	}{
		{name: "oferta por id", kind: domain.ApprovalKindOffer, input: "42", want: domain.ApprovalRef{ID: &id, Key: "42"}},
		{name: "oferta com chave não numérica", kind: domain.ApprovalKindOffer, input: "abc", wantErr: true},
		{name: "notificação vazia", kind: domain.ApprovalKindNotification, input: " ", wantErr: true},
		{name: "publisher por nome", kind: domain.ApprovalKindPublisher, input: "gamezone", want: domain.ApprovalRef{Key: "gamezone"}},
		{name: "publisher por id", kind: domain.ApprovalKindPublisher, input: "42", want: domain.ApprovalRef{ID: &id, Key: "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ResolveRef(tt.kind, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("status fora do conjunto não chega ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockApprovalRepository(ctrl))

		_, err := service.SetStatus(ctx, "offers", "42", &domain.StatusRequest{Status: "maybe"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
		var apiErr *apiErrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apiErrors.ErrInvalidStatus, apiErr.Code)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockApprovalRepository(ctrl))

		_, err := service.SetStatus(ctx, "campaigns", "42", &domain.StatusRequest{Status: "approved"})

		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("aprova oferta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		approvalRepo := mocks.NewMockApprovalRepository(ctrl)
		service := NewService(approvalRepo)
		id := int64(42)
		note := "ok"

		approvalRepo.EXPECT().
			SetStatus(ctx, domain.ApprovalKindOffer, domain.ApprovalRef{ID: &id, Key: "42"}, domain.ApprovalStatusApproved, &note).
			Return(&domain.Approval{ID: 5, Kind: domain.ApprovalKindOffer, SubjectKey: "42", Status: domain.ApprovalStatusApproved}, nil)

		approval, err := service.SetStatus(ctx, "Offers", "42", &domain.StatusRequest{Status: "APPROVED", Note: &note})
		require.NoError(t, err)
		assert.Equal(t, int64(5), approval.ID)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	approvalRepo := mocks.NewMockApprovalRepository(ctrl)
	service := NewService(approvalRepo)
	page := domain.NewPageRequest(1, 20, "")
	pending := domain.ApprovalStatusPending

	approvalRepo.EXPECT().
		List(ctx, domain.ApprovalKindPublisher, domain.ApprovalFilter{PageRequest: page, Status: &pending}).
		Return(domain.NewPage[domain.Approval](page, 0, nil), nil)

	result, err := service.List(ctx, "publishers", page, "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
}
