package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	repomocks "github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/approving"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestApprovals_SetStatus(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(repo *repomocks.MockApprovalRepository)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "tipo desconhecido não toca o banco",
			target:     "/v1/admin/approvals/campaigns/3/status",
			body:       `{"status":"approved"}`,
			setup:      func(repo *repomocks.MockApprovalRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "status fora do conjunto não toca o banco",
			target:     "/v1/admin/approvals/offers/3/status",
			body:       `{"status":"maybe"}`,
			setup:      func(repo *repomocks.MockApprovalRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidStatus,
		},
		{
			name:       "oferta exige identificador numérico",
			target:     "/v1/admin/approvals/offers/abc/status",
			body:       `{"status":"approved"}`,
			setup:      func(repo *repomocks.MockApprovalRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "aprovação inexistente",
			target: "/v1/admin/approvals/offers/99/status",
			body:   `{"status":"approved"}`,
			setup: func(repo *repomocks.MockApprovalRepository) {
				repo.EXPECT().SetStatus(gomock.Any(), domain.ApprovalKindOffer, gomock.Any(), domain.ApprovalStatusApproved, nil).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
		{
			name:   "oferta inexistente não cria aprovação",
			target: "/v1/admin/approvals/offers/99999/status",
			body:   `{"status":"approved"}`,
			setup: func(repo *repomocks.MockApprovalRepository) {
				repo.EXPECT().SetStatus(gomock.Any(), domain.ApprovalKindOffer, gomock.Any(), domain.ApprovalStatusApproved, nil).
					Return(nil, repository.ErrSubjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockApprovalRepository(ctrl)
			tt.setup(repo)

			h := newTestRouter(adminClaims(), Approvals(approving.NewService(repo))...)
			rec := doRequest(t, h, http.MethodPatch, tt.target, []byte(tt.body))

			assertAPIError(t, rec, tt.wantStatus, tt.wantCode)
		})
	}

	t.Run("publisher pelo nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockApprovalRepository(ctrl)

		repo.EXPECT().
			SetStatus(gomock.Any(), domain.ApprovalKindPublisher, domain.ApprovalRef{Key: "acme-apps"}, domain.ApprovalStatusRejected, gomock.Any()).
			Return(&domain.Approval{ID: 8, Kind: domain.ApprovalKindPublisher, SubjectKey: "acme-apps", Status: domain.ApprovalStatusRejected}, nil)

		h := newTestRouter(adminClaims(), Approvals(approving.NewService(repo))...)
		rec := doRequest(t, h, http.MethodPatch, "/v1/admin/approvals/publishers/acme-apps/status", []byte(`{"status":"REJECTED","note":"dados bancários incompletos"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		approval := decodeResponse[dataResponse[domain.Approval]](t, rec).Data
		assert.Equal(t, domain.ApprovalStatusRejected, approval.Status)
		assert.Equal(t, "acme-apps", approval.SubjectKey)
	})

	t.Run("anunciante não acessa rotas administrativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockApprovalRepository(ctrl)

		h := newTestRouter(advertiserClaims(7), Approvals(approving.NewService(repo))...)
		rec := doRequest(t, h, http.MethodGet, "/v1/admin/approvals/offers", nil)

		assertAPIError(t, rec, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege)
	})
}
